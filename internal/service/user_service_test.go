package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"maverik-copilot-be/internal/dto"
	"maverik-copilot-be/internal/pkg/token"
	"maverik-copilot-be/internal/repository/specification"
	"maverik-copilot-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	*fixture
	svc       IUserService
	publisher *recordingPublisher
	issuer    *token.Issuer
	logs      *syncBuffer
}

func newUserFixture(t *testing.T, isProd bool) *userFixture {
	t.Helper()
	f := newFixture()
	issuer, err := token.NewIssuer("test-secret", 24*time.Hour)
	require.NoError(t, err)
	log, buf := newCaptureLogger()
	pub := &recordingPublisher{}
	return &userFixture{
		fixture:   f,
		svc:       NewUserService(f.uow, f.catalog, pub, f.emitter, issuer, log, isProd),
		publisher: pub,
		issuer:    issuer,
		logs:      buf,
	}
}

func TestGeneratePassword(t *testing.T) {
	p, err := GeneratePassword()
	require.NoError(t, err)
	raw, err := base64.RawURLEncoding.DecodeString(p)
	require.NoError(t, err)
	assert.Len(t, raw, 20)

	q, err := GeneratePassword()
	require.NoError(t, err)
	assert.NotEqual(t, p, q)
}

func TestCreateUserDefaultsAndSideEffects(t *testing.T) {
	f := newUserFixture(t, false)
	ctx := context.Background()

	resp, err := f.svc.CreateUser(ctx, &dto.SignUpRequest{Email: "ana@example.com", EducationLevelId: 3})
	require.NoError(t, err)

	assert.NotZero(t, resp.Id)
	assert.EqualValues(t, 3, resp.EducationLevelId)
	assert.EqualValues(t, 1, resp.DrawdownReactionId)
	assert.Nil(t, resp.BirthDate)

	require.Len(t, f.publisher.payloads, 1)
	var msg dto.WelcomeEmailMessage
	require.NoError(t, json.Unmarshal(f.publisher.payloads[0], &msg))
	assert.Equal(t, "ana@example.com", msg.Email)
	assert.NotEmpty(t, msg.Password)

	assert.Equal(t, []string{events.UserCreated}, f.emitter.types())

	stored, err := f.uow.NewUnitOfWork(ctx).UserRepository().FindOne(ctx, specification.ByEmail{Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, msg.Password, stored.Password)

	var sawPassword bool
	for _, rec := range f.logs.records(t) {
		if rec["password"] == msg.Password {
			sawPassword = true
			assert.Equal(t, "DEBUG", rec["level"])
		}
	}
	assert.True(t, sawPassword)
}

func TestCreateUserHidesPasswordInProduction(t *testing.T) {
	f := newUserFixture(t, true)
	_, err := f.svc.CreateUser(context.Background(), &dto.SignUpRequest{Email: "p@example.com"})
	require.NoError(t, err)

	for _, rec := range f.logs.records(t) {
		assert.NotContains(t, rec, "password")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := newUserFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.CreateUser(ctx, &dto.SignUpRequest{Email: "dup@example.com"})
	require.NoError(t, err)
	_, err = f.svc.CreateUser(ctx, &dto.SignUpRequest{Email: "dup@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestCreateUserUnknownLookup(t *testing.T) {
	f := newUserFixture(t, false)
	_, err := f.svc.CreateUser(context.Background(), &dto.SignUpRequest{Email: "u@example.com", EducationLevelId: 9})
	assert.ErrorIs(t, err, ErrUnknownLookup)
	assert.Empty(t, f.publisher.payloads)
}

func TestCreateUserSurvivesPublishFailure(t *testing.T) {
	f := newUserFixture(t, false)
	f.publisher.err = errors.New("bus closed")

	resp, err := f.svc.CreateUser(context.Background(), &dto.SignUpRequest{Email: "m@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, resp.Id)
}

func TestVerifyLoginIsExact(t *testing.T) {
	f := newUserFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.CreateUser(ctx, &dto.SignUpRequest{Email: "case@example.com"})
	require.NoError(t, err)
	var msg dto.WelcomeEmailMessage
	require.NoError(t, json.Unmarshal(f.publisher.payloads[0], &msg))

	u, err := f.svc.VerifyLogin(ctx, "case@example.com", msg.Password)
	require.NoError(t, err)
	require.NotNil(t, u)

	for _, tc := range []struct{ email, password string }{
		{"CASE@example.com", msg.Password},
		{"case@example.com", msg.Password + "x"},
		{"case@example.com", ""},
		{"other@example.com", msg.Password},
	} {
		u, err := f.svc.VerifyLogin(ctx, tc.email, tc.password)
		require.NoError(t, err)
		assert.Nil(t, u, tc)
	}
}

func TestLogin(t *testing.T) {
	f := newUserFixture(t, false)
	ctx := context.Background()

	created, err := f.svc.CreateUser(ctx, &dto.SignUpRequest{Email: "luis@example.com"})
	require.NoError(t, err)
	var msg dto.WelcomeEmailMessage
	require.NoError(t, json.Unmarshal(f.publisher.payloads[0], &msg))

	resp, err := f.svc.Login(ctx, &dto.LoginRequest{Email: "luis@example.com", Password: msg.Password})
	require.NoError(t, err)

	claims, err := f.issuer.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.Id, claims.UserID)
	assert.Equal(t, "luis", claims.UserName)

	_, err = f.svc.Login(ctx, &dto.LoginRequest{Email: "luis@example.com", Password: "nope"})
	assert.ErrorIs(t, err, ErrWrongCredentials)

	assert.Equal(t, []string{events.UserCreated, events.AuthLogin, events.AuthLogin}, f.emitter.types())
}
