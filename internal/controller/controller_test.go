package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"maverik-copilot-be/internal/dto"
	"maverik-copilot-be/internal/entity"
	"maverik-copilot-be/internal/pkg/logger"
	"maverik-copilot-be/internal/pkg/serverutils"
	"maverik-copilot-be/internal/pkg/token"
	"maverik-copilot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	createErr error
	loginErr  error
	lastEmail string
}

func (f *fakeUserService) CreateUser(ctx context.Context, req *dto.SignUpRequest) (*dto.UserResponse, error) {
	f.lastEmail = req.Email
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dto.UserResponse{Id: 1, Email: req.Email, EducationLevelId: 1}, nil
}

func (f *fakeUserService) VerifyLogin(ctx context.Context, email, password string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &dto.LoginResponse{AccessToken: "v4.local.x"}, nil
}

type fakeRelay struct {
	result *service.RelayResult
	err    error
	input  *string
}

func (f *fakeRelay) SendTurn(ctx context.Context, userID, sessionID int64, input *string) (*service.RelayResult, error) {
	f.input = input
	return f.result, f.err
}

type fakeAdvisory struct {
	service.IAdvisoryService
	detailsErr error
}

func (f *fakeAdvisory) ListSessionDetails(ctx context.Context, userID, sessionID int64) ([]*dto.TurnResponse, error) {
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	return []*dto.TurnResponse{}, nil
}

func newApp() *fiber.App {
	log := logger.NewNop()
	app := fiber.New(fiber.Config{ErrorHandler: serverutils.FiberErrorHandler(log)})
	app.Use(serverutils.ErrorHandlerMiddleware(log))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) (int, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestSignUp(t *testing.T) {
	svc := &fakeUserService{}
	app := newApp()
	NewUserController(svc).RegisterRoutes(app)

	status, body := do(t, app, http.MethodPost, "/user/signup", `{"email":"ana@example.com","nivel_educativo_id":1}`, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"email":"ana@example.com"`)
	assert.NotContains(t, body, "clave")

	status, body = do(t, app, http.MethodPost, "/user/signup", `{"email":"not-an-email"}`, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "email must be a valid email")

	status, _ = do(t, app, http.MethodPost, "/user/signup", `{"email":`, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodPost, "/user/signup", `{"email":"a@b.com","nivel_educativo_id":-1}`, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSignUpErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{service.ErrEmailAlreadyRegistered, http.StatusConflict},
		{service.ErrUnknownLookup, http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		app := newApp()
		NewUserController(&fakeUserService{createErr: tc.err}).RegisterRoutes(app)
		status, body := do(t, app, http.MethodPost, "/user/signup", `{"email":"a@b.com"}`, nil)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.NotContains(t, body, "db down")
	}
}

func TestLogin(t *testing.T) {
	app := newApp()
	NewUserController(&fakeUserService{}).RegisterRoutes(app)
	status, body := do(t, app, http.MethodPost, "/user/login", `{"email":"a@b.com","clave":"pw"}`, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"access_token":"v4.local.x"}`, body)

	app = newApp()
	NewUserController(&fakeUserService{loginErr: service.ErrWrongCredentials}).RegisterRoutes(app)
	status, body = do(t, app, http.MethodPost, "/user/login", `{"email":"a@b.com","clave":"bad"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":"wrong credentials"}`, body)
}

func copilotApp(t *testing.T, relay *fakeRelay, advisory service.IAdvisoryService) (*fiber.App, string) {
	t.Helper()
	issuer, err := token.NewIssuer("controller-test", time.Hour)
	require.NoError(t, err)
	tok, err := issuer.Sign(7, "ana@example.com")
	require.NoError(t, err)

	app := newApp()
	NewCopilotController(advisory, relay).RegisterRoutes(app, serverutils.BearerAuth(issuer, logger.NewNop()))
	return app, "Bearer " + tok
}

func TestSendTurnStatusMapping(t *testing.T) {
	detail := &entity.SessionDetail{Id: 5, SessionId: 3, UserText: "hola", SystemText: "respuesta"}
	cases := []struct {
		name   string
		result *service.RelayResult
		status int
		body   string
	}{
		{"delivered", &service.RelayResult{State: service.TurnDelivered, Detail: detail}, 200,
			`{"id":5,"sesion_asesoria_id":3,"input":"hola","output":"respuesta"}`},
		{"fallback", &service.RelayResult{State: service.TurnFallbackDelivered, Detail: detail}, 200,
			`{"id":5,"sesion_asesoria_id":3,"input":"hola","output":"respuesta"}`},
		{"rag unavailable", &service.RelayResult{State: service.TurnRejected, Reason: service.RejectRagUnavailable}, 200, `null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, auth := copilotApp(t, &fakeRelay{result: tc.result}, &fakeAdvisory{})
			status, body := do(t, app, http.MethodPost, "/copilot/sessions/3", `{"input":"hola"}`, map[string]string{"Authorization": auth})
			assert.Equal(t, tc.status, status)
			assert.JSONEq(t, tc.body, body)
		})
	}

	for reason, status := range map[service.RejectReason]int{
		service.RejectNotFound:         http.StatusNotFound,
		service.RejectMalformedSession: http.StatusBadRequest,
	} {
		app, auth := copilotApp(t, &fakeRelay{result: &service.RelayResult{State: service.TurnRejected, Reason: reason}}, &fakeAdvisory{})
		got, body := do(t, app, http.MethodPost, "/copilot/sessions/3", `{"input":"hola"}`, map[string]string{"Authorization": auth})
		assert.Equal(t, status, got, string(reason))
		assert.Contains(t, body, `"success":false`)
	}

	app, auth := copilotApp(t, &fakeRelay{err: errors.New("db down")}, &fakeAdvisory{})
	status, body := do(t, app, http.MethodPost, "/copilot/sessions/3", `{"input":"hola"}`, map[string]string{"Authorization": auth})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "Internal server error")
}

func TestSendTurnNullAndEmptyBody(t *testing.T) {
	detail := &entity.SessionDetail{Id: 1, SessionId: 3}
	relay := &fakeRelay{result: &service.RelayResult{State: service.TurnDelivered, Detail: detail}}
	app, auth := copilotApp(t, relay, &fakeAdvisory{})

	status, _ := do(t, app, http.MethodPost, "/copilot/sessions/3", `{"input":null}`, map[string]string{"Authorization": auth})
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, relay.input)

	status, _ = do(t, app, http.MethodPost, "/copilot/sessions/3", "", map[string]string{"Authorization": auth})
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, relay.input)

	status, _ = do(t, app, http.MethodPost, "/copilot/sessions/abc", `{}`, map[string]string{"Authorization": auth})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCopilotRequiresBearer(t *testing.T) {
	app, auth := copilotApp(t, &fakeRelay{}, &fakeAdvisory{})

	cases := []struct {
		header string
		msg    string
	}{
		{"", "Invalid authorization code"},
		{"Bearer ", "Invalid authorization code"},
		{"Basic abc", "Invalid authentication scheme"},
		{"Bearer v4.local.garbage", "Invalid token or expired token"},
		{strings.Replace(auth, "v4", "v2", 1), "Invalid token or expired token"},
	}
	for _, tc := range cases {
		headers := map[string]string{}
		if tc.header != "" {
			headers["Authorization"] = tc.header
		}
		status, body := do(t, app, http.MethodGet, "/copilot/sessions/3", "", headers)
		assert.Equal(t, http.StatusForbidden, status, tc.header)
		assert.Contains(t, body, tc.msg)
	}
}

func TestListTurns(t *testing.T) {
	app, auth := copilotApp(t, &fakeRelay{}, &fakeAdvisory{})
	status, body := do(t, app, http.MethodGet, "/copilot/sessions/3", "", map[string]string{"Authorization": auth})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "[]", body)

	app, auth = copilotApp(t, &fakeRelay{}, &fakeAdvisory{detailsErr: service.ErrSessionNotFound})
	status, _ = do(t, app, http.MethodGet, "/copilot/sessions/3", "", map[string]string{"Authorization": auth})
	assert.Equal(t, http.StatusNotFound, status)
}

type fakeCatalog struct{}

func (fakeCatalog) ListCatalogs() []string { return []string{entity.CatalogObjective} }

func (fakeCatalog) GetCatalog(ctx context.Context, name string) ([]*entity.Lookup, error) {
	if name != entity.CatalogObjective {
		return nil, service.ErrCatalogNotFound
	}
	return []*entity.Lookup{{Id: 1, Desc: "Comprar una casa o un departamento"}}, nil
}

func (fakeCatalog) ValidateRefs(ctx context.Context, refs ...service.LookupRef) error { return nil }

func TestCatalog(t *testing.T) {
	app := newApp()
	NewCatalogController(fakeCatalog{}).RegisterRoutes(app)

	status, body := do(t, app, http.MethodGet, "/catalog/objetivo", "", nil)
	assert.Equal(t, http.StatusOK, status)
	var resp serverutils.BaseResponse[[]dto.CatalogEntry]
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Comprar una casa o un departamento", resp.Data[0].Desc)

	status, _ = do(t, app, http.MethodGet, "/catalog/usuario", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = do(t, app, http.MethodGet, "/catalog", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"catalogs":["objetivo"]`)
}

type recordingCatalog struct {
	fakeCatalog
	names []string
}

func (r *recordingCatalog) GetCatalog(ctx context.Context, name string) ([]*entity.Lookup, error) {
	r.names = append(r.names, name)
	return r.fakeCatalog.GetCatalog(ctx, name)
}

func TestCatalogNameOutlivesRequest(t *testing.T) {
	app := newApp()
	catalog := &recordingCatalog{}
	NewCatalogController(catalog).RegisterRoutes(app)

	status, _ := do(t, app, http.MethodGet, "/catalog/objetivo", "", nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = do(t, app, http.MethodGet, "/catalog/zzzzzzzz", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	assert.Equal(t, []string{"objetivo", "zzzzzzzz"}, catalog.names)
}

func TestHealth(t *testing.T) {
	app := newApp()
	NewHealthController("2.1.0").RegisterRoutes(app)

	status, body := do(t, app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"service":"maverik_backend"}`, body)

	status, body = do(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"healthy","service":"maverik_backend","version":"2.1.0"}`, body)
}
