package implementation

import (
	"context"
	"testing"

	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/repository/specification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestUserFindOneByCredentials(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "email", "clave", "nivel_educativo_id"}).
		AddRow(3, "ana@example.com", "s3cret", 2)
	mock.ExpectQuery(`SELECT \* FROM "usuario" WHERE email = \$1 AND clave = \$2`).
		WillReturnRows(rows)

	user, err := repo.FindOne(context.Background(), specification.ByCredentials{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(3), user.Id)
	assert.Equal(t, int16(2), user.EducationLevelId)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindOneNotFoundIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "usuario" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindOne(context.Background(), specification.ByEmail{Email: "nobody@example.com"})
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionFindOneScopedToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdvisorySessionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sesion_asesoria" WHERE id = \$1 AND usuario_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	session, err := repo.FindOne(context.Background(), specification.ByID{ID: 9}, specification.UserOwnedBy{UserID: 4})
	assert.NoError(t, err)
	assert.Nil(t, session)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionFindOneMapsCapital(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdvisorySessionRepository(db)

	rows := sqlmock.NewRows([]string{"id", "usuario_id", "proposito_sesion_id", "objetivo_id", "capital_inicial", "horizonte_temporal"}).
		AddRow(9, 4, 2, 1, "15000.50", nil)
	mock.ExpectQuery(`SELECT \* FROM "sesion_asesoria" WHERE id = \$1`).WillReturnRows(rows)

	session, err := repo.FindOne(context.Background(), specification.ByID{ID: 9})
	require.NoError(t, err)
	require.NotNil(t, session)
	require.NotNil(t, session.InitialCapital)
	assert.Equal(t, "15000.5", session.InitialCapital.String())
	require.NotNil(t, session.ObjectiveId)
	assert.Equal(t, int16(1), *session.ObjectiveId)
	assert.Nil(t, session.HorizonMonths)
	assert.Nil(t, session.RiskToleranceId)
}

func TestSessionDetailCreateReturnsId(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionDetailRepository(db)

	mock.ExpectQuery(`INSERT INTO "sesion_asesoria_detalle"`).
		WithArgs(int64(9), "hola", "respuesta").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))

	detail := &entity.SessionDetail{SessionId: 9, UserText: "hola", SystemText: "respuesta"}
	require.NoError(t, repo.Create(context.Background(), detail))
	assert.Equal(t, int64(21), detail.Id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionDetailFindAllOrdered(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionDetailRepository(db)

	rows := sqlmock.NewRows([]string{"id", "sesion_asesoria_id", "texto_usuario", "texto_sistema"}).
		AddRow(1, 9, "u1", "s1").
		AddRow(2, 9, "u2", "s2")
	mock.ExpectQuery(`SELECT \* FROM "sesion_asesoria_detalle" WHERE sesion_asesoria_id = \$1 ORDER BY id ASC`).
		WillReturnRows(rows)

	details, err := repo.FindAll(context.Background(),
		specification.BySessionID{SessionID: 9},
		specification.OrderBy{Field: "id"},
	)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "u1", details[0].UserText)
	assert.Equal(t, "s2", details[1].SystemText)
}

func TestLookupFindAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLookupRepository(db)

	rows := sqlmock.NewRows([]string{"id", "desc"}).
		AddRow(1, "baja").
		AddRow(2, "media").
		AddRow(3, "alta")
	mock.ExpectQuery(`SELECT \* FROM "tolerancia_al_riesgo" ORDER BY id ASC`).WillReturnRows(rows)

	lookups, err := repo.FindAll(context.Background(), entity.CatalogRiskTolerance)
	require.NoError(t, err)
	require.Len(t, lookups, 3)
	assert.Equal(t, "media", lookups[1].Desc)

	_, err = repo.FindAll(context.Background(), "usuario")
	assert.Error(t, err)
}
