package memory

import (
	"sort"
	"sync"

	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/model"
	"maverik-copilot-be/internal/repository/specification"
)

// Store keeps every table in process memory. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	users    []*entity.User
	sessions []*entity.AdvisorySession
	details  []*entity.SessionDetail
	lookups  map[string][]*entity.Lookup

	nextUserID    int64
	nextSessionID int64
	nextDetailID  int64
}

// NewStore returns an empty store with the catalogs already seeded.
func NewStore() *Store {
	s := &Store{lookups: make(map[string][]*entity.Lookup)}
	for _, seed := range model.LookupSeeds {
		for _, row := range seed.SeedRows() {
			s.lookups[seed.Table] = append(s.lookups[seed.Table], &entity.Lookup{Id: row.Id, Desc: row.Desc})
		}
	}
	return s
}

func (s *Store) lookup(catalog string, id int16) *entity.Lookup {
	for _, l := range s.lookups[catalog] {
		if l.Id == id {
			c := *l
			return &c
		}
	}
	return nil
}

func (s *Store) optionalLookup(catalog string, id *int16) *entity.Lookup {
	if id == nil {
		return nil
	}
	return s.lookup(catalog, *id)
}

// hydrateUser fills the lookup associations the way a GORM preload would.
func (s *Store) hydrateUser(u *entity.User) {
	u.EducationLevel = s.lookup(entity.CatalogEducationLevel, u.EducationLevelId)
	u.AltInvestmentKnowledge = s.lookup(entity.CatalogAltInvestmentKnowledge, u.AltInvestmentKnowledgeId)
	u.InvestingExperience = s.lookup(entity.CatalogInvestingExperience, u.InvestingExperienceId)
	u.MonthlySavingsShare = s.lookup(entity.CatalogMonthlySavingsShare, u.MonthlySavingsShareId)
	u.SavingsToInvestShare = s.lookup(entity.CatalogSavingsToInvestShare, u.SavingsToInvestShareId)
	u.HoldingPeriod = s.lookup(entity.CatalogHoldingPeriod, u.HoldingPeriodId)
	u.InvestmentGoal = s.lookup(entity.CatalogInvestmentGoal, u.InvestmentGoalId)
	u.DrawdownReaction = s.lookup(entity.CatalogDrawdownReaction, u.DrawdownReactionId)
}

func (s *Store) hydrateSession(sess *entity.AdvisorySession) {
	sess.Purpose = s.lookup(entity.CatalogSessionPurpose, sess.PurposeId)
	sess.Objective = s.optionalLookup(entity.CatalogObjective, sess.ObjectiveId)
	sess.RiskTolerance = s.optionalLookup(entity.CatalogRiskTolerance, sess.RiskToleranceId)
	for _, u := range s.users {
		if u.Id == sess.UserId {
			owner := *u
			s.hydrateUser(&owner)
			sess.User = &owner
		}
	}
}

// query is the subset of specification values the store understands.
type query struct {
	id        *int64
	email     *string
	password  *string
	ownerID   *int64
	sessionID *int64
	preload   bool
	desc      bool
	limit     int
	offset    int
}

func parseSpecs(specs []specification.Specification) query {
	var q query
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			id := s.ID
			q.id = &id
		case specification.ByEmail:
			email := s.Email
			q.email = &email
		case specification.ByCredentials:
			email, password := s.Email, s.Password
			q.email, q.password = &email, &password
		case specification.UserOwnedBy:
			owner := s.UserID
			q.ownerID = &owner
		case specification.BySessionID:
			sid := s.SessionID
			q.sessionID = &sid
		case specification.Preload:
			q.preload = true
		case specification.OrderBy:
			// ids grow with creation time, so every ordering reduces to id order
			q.desc = s.Desc
		case specification.Pagination:
			q.limit, q.offset = s.Limit, s.Offset
		}
	}
	return q
}

func page[T any](rows []T, q query, id func(T) int64) []T {
	sort.SliceStable(rows, func(i, j int) bool {
		if q.desc {
			return id(rows[i]) > id(rows[j])
		}
		return id(rows[i]) < id(rows[j])
	})
	if q.offset > 0 {
		if q.offset >= len(rows) {
			return rows[:0]
		}
		rows = rows[q.offset:]
	}
	if q.limit > 0 && q.limit < len(rows) {
		rows = rows[:q.limit]
	}
	return rows
}
