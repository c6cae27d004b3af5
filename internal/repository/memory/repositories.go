package memory

import (
	"context"
	"fmt"
	"time"

	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type userRepository struct{ store *Store }

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	s.nextUserID++
	now := time.Now()
	row := *user
	row.Id = s.nextUserID
	row.CreatedAt, row.UpdatedAt = now, now
	row.EducationLevel, row.AltInvestmentKnowledge, row.InvestingExperience, row.MonthlySavingsShare = nil, nil, nil, nil
	row.SavingsToInvestShare, row.HoldingPeriod, row.InvestmentGoal, row.DrawdownReaction = nil, nil, nil, nil
	s.users = append(s.users, &row)

	*user = row
	return nil
}

func (r *userRepository) match(specs []specification.Specification) []*entity.User {
	q := parseSpecs(specs)
	var out []*entity.User
	for _, u := range r.store.users {
		if q.id != nil && u.Id != *q.id {
			continue
		}
		if q.email != nil && u.Email != *q.email {
			continue
		}
		if q.password != nil && u.Password != *q.password {
			continue
		}
		c := *u
		if q.preload {
			r.store.hydrateUser(&c)
		}
		out = append(out, &c)
	}
	return page(out, q, func(u *entity.User) int64 { return u.Id })
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if found := r.match(specs); len(found) > 0 {
		return found[0], nil
	}
	return nil, nil
}

func (r *userRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.match(specs))), nil
}

type advisorySessionRepository struct{ store *Store }

func (r *advisorySessionRepository) Create(ctx context.Context, session *entity.AdvisorySession) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSessionID++
	row := *session
	row.Id = s.nextSessionID
	row.CreatedAt = time.Now()
	row.User, row.Purpose, row.Objective, row.RiskTolerance = nil, nil, nil, nil
	s.sessions = append(s.sessions, &row)

	*session = row
	return nil
}

func (r *advisorySessionRepository) match(specs []specification.Specification) []*entity.AdvisorySession {
	q := parseSpecs(specs)
	var out []*entity.AdvisorySession
	for _, sess := range r.store.sessions {
		if q.id != nil && sess.Id != *q.id {
			continue
		}
		if q.ownerID != nil && sess.UserId != *q.ownerID {
			continue
		}
		c := *sess
		if q.preload {
			r.store.hydrateSession(&c)
		}
		out = append(out, &c)
	}
	return page(out, q, func(s *entity.AdvisorySession) int64 { return s.Id })
}

func (r *advisorySessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdvisorySession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if found := r.match(specs); len(found) > 0 {
		return found[0], nil
	}
	return nil, nil
}

func (r *advisorySessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdvisorySession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.match(specs), nil
}

type sessionDetailRepository struct{ store *Store }

func (r *sessionDetailRepository) Create(ctx context.Context, detail *entity.SessionDetail) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	exists := false
	for _, sess := range s.sessions {
		if sess.Id == detail.SessionId {
			exists = true
			break
		}
	}
	if !exists {
		return fmt.Errorf("%w: sesion_asesoria %d", gorm.ErrForeignKeyViolated, detail.SessionId)
	}

	s.nextDetailID++
	row := *detail
	row.Id = s.nextDetailID
	s.details = append(s.details, &row)

	*detail = row
	return nil
}

func (r *sessionDetailRepository) match(specs []specification.Specification) []*entity.SessionDetail {
	q := parseSpecs(specs)
	var out []*entity.SessionDetail
	for _, d := range r.store.details {
		if q.id != nil && d.Id != *q.id {
			continue
		}
		if q.sessionID != nil && d.SessionId != *q.sessionID {
			continue
		}
		c := *d
		out = append(out, &c)
	}
	return page(out, q, func(d *entity.SessionDetail) int64 { return d.Id })
}

func (r *sessionDetailRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionDetail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.match(specs), nil
}

func (r *sessionDetailRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.match(specs))), nil
}

type lookupRepository struct{ store *Store }

func (r *lookupRepository) FindAll(ctx context.Context, catalog string) ([]*entity.Lookup, error) {
	if !entity.IsCatalog(catalog) {
		return nil, fmt.Errorf("unknown catalog %q", catalog)
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := r.store.lookups[catalog]
	out := make([]*entity.Lookup, 0, len(rows))
	for _, l := range rows {
		c := *l
		out = append(out, &c)
	}
	return out, nil
}
