package memory

import (
	"context"
	"testing"

	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStoreSeedsCatalogs(t *testing.T) {
	uow := NewRepositoryFactory(NewStore()).NewUnitOfWork(context.Background())

	purposes, err := uow.LookupRepository().FindAll(context.Background(), entity.CatalogSessionPurpose)
	require.NoError(t, err)
	require.Len(t, purposes, 3)
	assert.Equal(t, entity.PurposeGoalAssistance, purposes[1].Id)
	assert.Equal(t, "Buscar asistencia para lograr un objetivo personal", purposes[1].Desc)

	_, err = uow.LookupRepository().FindAll(context.Background(), "usuario")
	assert.Error(t, err)
}

func TestUserRepositoryCredentialsAndDuplicates(t *testing.T) {
	ctx := context.Background()
	uow := NewRepositoryFactory(NewStore()).NewUnitOfWork(ctx)
	users := uow.UserRepository()

	u := &entity.User{Email: "Ana@example.com", Password: "pw", EducationLevelId: 3,
		AltInvestmentKnowledgeId: 1, InvestingExperienceId: 1, MonthlySavingsShareId: 1,
		SavingsToInvestShareId: 1, HoldingPeriodId: 1, InvestmentGoalId: 1, DrawdownReactionId: 1}
	require.NoError(t, users.Create(ctx, u))
	assert.Equal(t, int64(1), u.Id)
	assert.False(t, u.CreatedAt.IsZero())

	err := users.Create(ctx, &entity.User{Email: "Ana@example.com"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	found, err := users.FindOne(ctx, specification.ByCredentials{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Nil(t, found, "email comparison is case-sensitive")

	found, err = users.FindOne(ctx, specification.ByCredentials{Email: "Ana@example.com", Password: "pw"}, specification.Preload{})
	require.NoError(t, err)
	require.NotNil(t, found)
	require.NotNil(t, found.EducationLevel)
	assert.Equal(t, "Superior", found.EducationLevel.Desc)
}

func TestSessionsAndDetails(t *testing.T) {
	ctx := context.Background()
	uow := NewRepositoryFactory(NewStore()).NewUnitOfWork(ctx)

	owner := &entity.User{Email: "a@b.c", Password: "x", EducationLevelId: 1,
		AltInvestmentKnowledgeId: 1, InvestingExperienceId: 1, MonthlySavingsShareId: 1,
		SavingsToInvestShareId: 1, HoldingPeriodId: 1, InvestmentGoalId: 1, DrawdownReactionId: 1}
	require.NoError(t, uow.UserRepository().Create(ctx, owner))

	first := &entity.AdvisorySession{UserId: owner.Id, PurposeId: 1}
	second := &entity.AdvisorySession{UserId: owner.Id, PurposeId: 1}
	require.NoError(t, uow.AdvisorySessionRepository().Create(ctx, first))
	require.NoError(t, uow.AdvisorySessionRepository().Create(ctx, second))

	newest, err := uow.AdvisorySessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: owner.Id},
		specification.OrderBy{Field: "id", Desc: true},
	)
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, second.Id, newest[0].Id)

	foreign, err := uow.AdvisorySessionRepository().FindOne(ctx, specification.ByID{ID: first.Id}, specification.UserOwnedBy{UserID: 99})
	require.NoError(t, err)
	assert.Nil(t, foreign)

	loaded, err := uow.AdvisorySessionRepository().FindOne(ctx, specification.ByID{ID: first.Id}, specification.Preload{})
	require.NoError(t, err)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "Fortalecer mis conocimientos financieros", loaded.Purpose.Desc)
	assert.Nil(t, loaded.Objective)

	details := uow.SessionDetailRepository()
	require.NoError(t, details.Create(ctx, &entity.SessionDetail{SessionId: first.Id, UserText: "u1", SystemText: "s1"}))
	require.NoError(t, details.Create(ctx, &entity.SessionDetail{SessionId: second.Id, UserText: "x", SystemText: "y"}))
	require.NoError(t, details.Create(ctx, &entity.SessionDetail{SessionId: first.Id, UserText: "u2", SystemText: "s2"}))
	assert.ErrorIs(t, details.Create(ctx, &entity.SessionDetail{SessionId: 404}), gorm.ErrForeignKeyViolated)

	rows, err := details.FindAll(ctx, specification.BySessionID{SessionID: first.Id}, specification.OrderBy{Field: "id"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "u1", rows[0].UserText)
	assert.Equal(t, "u2", rows[1].UserText)
}

func TestLookupCache(t *testing.T) {
	c := NewLookupCache()
	_, ok := c.Get(entity.CatalogObjective)
	assert.False(t, ok)

	c.Set(entity.CatalogObjective, []*entity.Lookup{{Id: 1, Desc: "Comprar un vehículo"}})
	rows, ok := c.Get(entity.CatalogObjective)
	require.True(t, ok)
	assert.Len(t, rows, 1)

	c.Flush()
	_, ok = c.Get(entity.CatalogObjective)
	assert.False(t, ok)
}
