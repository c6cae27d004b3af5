package service

import (
	"context"
	"errors"
	"fmt"

	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/repository/memory"
	"maverik-copilot-be/internal/repository/unitofwork"
)

var (
	ErrCatalogNotFound = errors.New("catalog not found")
	ErrUnknownLookup   = errors.New("unknown catalog value")
)

// LookupRef names one catalog answer, e.g. {nivel_educativo, 2}.
type LookupRef struct {
	Catalog string
	Id      int16
}

type ICatalogService interface {
	ListCatalogs() []string
	GetCatalog(ctx context.Context, name string) ([]*entity.Lookup, error)
	ValidateRefs(ctx context.Context, refs ...LookupRef) error
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.LookupCache
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, cache *memory.LookupCache) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *catalogService) ListCatalogs() []string {
	out := make([]string, len(entity.Catalogs))
	copy(out, entity.Catalogs)
	return out
}

func (s *catalogService) GetCatalog(ctx context.Context, name string) ([]*entity.Lookup, error) {
	if !entity.IsCatalog(name) {
		return nil, ErrCatalogNotFound
	}
	if rows, ok := s.cache.Get(name); ok {
		return rows, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.LookupRepository().FindAll(ctx, name)
	if err != nil {
		return nil, err
	}
	// an unseeded table is not cached so a later migration is picked up
	if len(rows) > 0 {
		s.cache.Set(name, rows)
	}
	return rows, nil
}

// ValidateRefs checks that every referenced id exists in its catalog.
func (s *catalogService) ValidateRefs(ctx context.Context, refs ...LookupRef) error {
	for _, ref := range refs {
		rows, err := s.GetCatalog(ctx, ref.Catalog)
		if err != nil {
			return err
		}
		if !containsLookup(rows, ref.Id) {
			return fmt.Errorf("%w: %s_id=%d", ErrUnknownLookup, ref.Catalog, ref.Id)
		}
	}
	return nil
}

func containsLookup(rows []*entity.Lookup, id int16) bool {
	for _, r := range rows {
		if r.Id == id {
			return true
		}
	}
	return false
}
