package service

import (
	"context"
	"testing"

	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/repository/memory"
	"maverik-copilot-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFactory struct {
	unitofwork.RepositoryFactory
	calls int
}

func (c *countingFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	c.calls++
	return c.RepositoryFactory.NewUnitOfWork(ctx)
}

func TestGetCatalogIsCached(t *testing.T) {
	factory := &countingFactory{RepositoryFactory: memory.NewRepositoryFactory(memory.NewStore())}
	svc := NewCatalogService(factory, memory.NewLookupCache())
	ctx := context.Background()

	rows, err := svc.GetCatalog(ctx, entity.CatalogRiskTolerance)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "baja", rows[0].Desc)

	_, err = svc.GetCatalog(ctx, entity.CatalogRiskTolerance)
	require.NoError(t, err)
	assert.Equal(t, 1, factory.calls)
}

func TestGetCatalogUnknown(t *testing.T) {
	svc := newFixture().catalog
	_, err := svc.GetCatalog(context.Background(), "usuario")
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}

func TestListCatalogsIsACopy(t *testing.T) {
	svc := newFixture().catalog
	names := svc.ListCatalogs()
	require.Len(t, names, 11)
	names[0] = "changed"
	assert.Equal(t, entity.CatalogEducationLevel, svc.ListCatalogs()[0])
}

func TestValidateRefs(t *testing.T) {
	svc := newFixture().catalog
	ctx := context.Background()

	assert.NoError(t, svc.ValidateRefs(ctx,
		LookupRef{entity.CatalogObjective, 7},
		LookupRef{entity.CatalogSessionPurpose, 1},
	))
	err := svc.ValidateRefs(ctx, LookupRef{entity.CatalogObjective, 8})
	assert.ErrorIs(t, err, ErrUnknownLookup)
	assert.Contains(t, err.Error(), "objetivo_id=8")
}
