package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pzawadzki/filmoteka-auth/internal/logger"
	"github.com/pzawadzki/filmoteka-auth/internal/service"
	"github.com/pzawadzki/filmoteka-auth/internal/store"
	"github.com/pzawadzki/filmoteka-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuthService lets each test plug in exactly the behavior it needs.
type mockAuthService struct {
	loginFunc       func(ctx context.Context, username, password string) (models.User, error)
	createUserFunc  func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	createTokenFunc func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFunc  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFunc(ctx, username, password)
}

func (m *mockAuthService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return m.createUserFunc(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFunc(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFunc(ctx, tokenString)
}

func newTestHandler(svc *mockAuthService) *Handler {
	return NewHandler(&service.Services{AuthService: svc}, logger.Nop())
}

func adminParseToken(username string) func(ctx context.Context, tokenString string) (models.Token, error) {
	return func(ctx context.Context, tokenString string) (models.Token, error) {
		return models.Token{Username: username, Roles: []string{models.RoleUser, models.RoleAdmin}}, nil
	}
}

func decodeDetail(t *testing.T, body *bytes.Buffer) string {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Detail
}

func TestLogin_Success(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (models.User, error) {
			assert.Equal(t, "michal", username)
			assert.Equal(t, "zaq1@WSX", password)
			return models.User{UserID: 1, Username: username, Roles: models.DefaultRoles()}, nil
		},
		createTokenFunc: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token", Username: user.Username, Roles: user.Roles}, nil
		},
	}
	router := newTestHandler(svc).Init()

	body, _ := json.Marshal(models.LoginRequest{Username: "michal", Password: "zaq1@WSX"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	router := newTestHandler(svc).Init()

	body, _ := json.Marshal(models.LoginRequest{Username: "ghost", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, detailInvalidCredentials, decodeDetail(t, rec.Body))
}

func TestLogin_InvalidJSON(t *testing.T) {
	svc := &mockAuthService{}
	router := newTestHandler(svc).Init()

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, detailInvalidJSON, decodeDetail(t, rec.Body))
}

func TestLogin_TokenCreationFailure(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, username, password string) (models.User, error) {
			return models.User{Username: username}, nil
		},
		createTokenFunc: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing failed")
		},
	}
	router := newTestHandler(svc).Init()

	body, _ := json.Marshal(models.LoginRequest{Username: "michal", Password: "zaq1@WSX"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateUser_Success(t *testing.T) {
	svc := &mockAuthService{
		parseTokenFunc: adminParseToken("admin"),
		createUserFunc: func(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
			return models.User{UserID: 2, Username: req.Username, Roles: models.DefaultRoles()}, nil
		},
	}
	router := newTestHandler(svc).Init()

	body, _ := json.Marshal(models.CreateUserRequest{Username: "nowy", Password: "zaq1@WSX"})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer admin.jwt.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.UserDisplay
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "nowy", resp.Username)
	assert.Equal(t, []string{models.RoleUser}, resp.Roles)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	svc := &mockAuthService{
		parseTokenFunc: adminParseToken("admin"),
		createUserFunc: func(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	router := newTestHandler(svc).Init()

	body, _ := json.Marshal(models.CreateUserRequest{Username: "nowy", Password: "zaq1@WSX"})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer admin.jwt.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, detailDuplicateUser, decodeDetail(t, rec.Body))
}

func TestCreateUser_InvalidData(t *testing.T) {
	svc := &mockAuthService{
		parseTokenFunc: adminParseToken("admin"),
		createUserFunc: func(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	router := newTestHandler(svc).Init()

	body, _ := json.Marshal(models.CreateUserRequest{Username: "", Password: ""})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer admin.jwt.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, detailInvalidData, decodeDetail(t, rec.Body))
}

// The response is built entirely from the token claims: no repository call,
// so the roles reflect the snapshot taken at issuance time.
func TestUserDetails_FromClaims(t *testing.T) {
	svc := &mockAuthService{
		parseTokenFunc: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{Username: "michal", Roles: []string{models.RoleUser}}, nil
		},
	}
	router := newTestHandler(svc).Init()

	req := httptest.NewRequest(http.MethodGet, "/user_details", nil)
	req.Header.Set("Authorization", "Bearer user.jwt.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserDisplay
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "michal", resp.Username)
	assert.Equal(t, []string{models.RoleUser}, resp.Roles)
}

func TestProtectedResource_Greeting(t *testing.T) {
	svc := &mockAuthService{
		parseTokenFunc: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{Username: "michal", Roles: []string{models.RoleUser}}, nil
		},
	}
	router := newTestHandler(svc).Init()

	req := httptest.NewRequest(http.MethodGet, "/protected_resource", nil)
	req.Header.Set("Authorization", "Bearer user.jwt.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Witaj michal, masz dostęp do tego zasobu!", resp.Message)
}
