package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pzawadzki/filmoteka-auth/internal/config"
	"github.com/pzawadzki/filmoteka-auth/internal/logger"
	"github.com/pzawadzki/filmoteka-auth/internal/service"
	"github.com/pzawadzki/filmoteka-auth/internal/store"
	"github.com/pzawadzki/filmoteka-auth/internal/utils"
	"github.com/pzawadzki/filmoteka-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUserRepository is an in-memory [store.UserRepository] used to
// exercise the full middleware and handler chain without a database.
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{nextID: 1, users: make(map[string]models.User)}
}

func (m *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return models.User{}, store.ErrUsernameAlreadyExists
	}

	user.UserID = m.nextID
	user.CreatedAt = time.Now()
	m.nextID++
	m.users[user.Username] = user

	return user, nil
}

func (m *memoryUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func newEndToEndRouter(t *testing.T) (*chi.Mux, *memoryUserRepository) {
	t.Helper()

	repo := newMemoryUserRepository()
	authCfg := config.Auth{
		TokenSignKey:   "end-to-end-key",
		TokenAlgorithm: "HS256",
		TokenIssuer:    "filmoteka-auth",
		TokenDuration:  time.Hour,
		BcryptCost:     4,
	}

	hash, err := utils.HashPassword("admin123", 4)
	require.NoError(t, err)
	_, err = repo.CreateUser(context.Background(), models.User{
		Username:     "admin",
		PasswordHash: hash,
		Roles:        []string{models.RoleUser, models.RoleAdmin},
	})
	require.NoError(t, err)

	svc := service.NewAuthService(repo, authCfg, logger.Nop())
	handler := NewHandler(&service.Services{AuthService: svc}, logger.Nop())

	return handler.Init(), repo
}

func loginFor(t *testing.T, router *chi.Mux, username, password string) string {
	t.Helper()

	body, _ := json.Marshal(models.LoginRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.AccessToken)

	return resp.AccessToken
}

func TestEndToEnd_AdminCreatesUserWhoLogsIn(t *testing.T) {
	router, _ := newEndToEndRouter(t)

	adminToken := loginFor(t, router, "admin", "admin123")

	// admin creates a regular account
	body, _ := json.Marshal(models.CreateUserRequest{Username: "michal", Password: "zaq1@WSX"})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.UserDisplay
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "michal", created.Username)
	assert.Equal(t, []string{models.RoleUser}, created.Roles)

	// the new account can log in and see its own details
	userToken := loginFor(t, router, "michal", "zaq1@WSX")

	req = httptest.NewRequest(http.MethodGet, "/user_details", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var details models.UserDisplay
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&details))
	assert.Equal(t, "michal", details.Username)
	assert.Equal(t, []string{models.RoleUser}, details.Roles)
}

func TestEndToEnd_RegularUserCannotCreateUsers(t *testing.T) {
	router, _ := newEndToEndRouter(t)

	adminToken := loginFor(t, router, "admin", "admin123")

	body, _ := json.Marshal(models.CreateUserRequest{Username: "michal", Password: "zaq1@WSX"})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	userToken := loginFor(t, router, "michal", "zaq1@WSX")

	body, _ = json.Marshal(models.CreateUserRequest{Username: "kolejny", Password: "zaq1@WSX"})
	req = httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, detailAdminRequired, decodeDetail(t, rec.Body))
}

func TestEndToEnd_DuplicateUsernameRejected(t *testing.T) {
	router, _ := newEndToEndRouter(t)

	adminToken := loginFor(t, router, "admin", "admin123")

	body, _ := json.Marshal(models.CreateUserRequest{Username: "michal", Password: "zaq1@WSX"})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	body, _ = json.Marshal(models.CreateUserRequest{Username: "michal", Password: "inne-haslo"})
	req = httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, detailDuplicateUser, decodeDetail(t, rec.Body))
}

func TestEndToEnd_LoginFailuresAreUniform(t *testing.T) {
	router, _ := newEndToEndRouter(t)

	responses := make([]string, 0, 2)
	for _, creds := range []models.LoginRequest{
		{Username: "ghost", Password: "whatever"},
		{Username: "admin", Password: "wrong"},
	} {
		body, _ := json.Marshal(creds)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		responses = append(responses, rec.Body.String())
	}

	assert.Equal(t, responses[0], responses[1], "login failures must be indistinguishable")
}

func TestEndToEnd_ForgedTokenRejected(t *testing.T) {
	router, _ := newEndToEndRouter(t)

	forged, err := utils.GenerateJWTToken("filmoteka-auth", "admin", []string{models.RoleAdmin}, time.Hour, "HS256", "attacker-key")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected_resource", nil)
	req.Header.Set("Authorization", "Bearer "+forged.SignedString)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, detailCannotVerifyCredentials, decodeDetail(t, rec.Body))
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestEndToEnd_ExpiredTokenReported(t *testing.T) {
	router, _ := newEndToEndRouter(t)

	expired, err := utils.GenerateJWTToken("filmoteka-auth", "admin", []string{models.RoleAdmin}, -time.Minute, "HS256", "end-to-end-key")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected_resource", nil)
	req.Header.Set("Authorization", "Bearer "+expired.SignedString)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, detailTokenExpired, decodeDetail(t, rec.Body))
}
