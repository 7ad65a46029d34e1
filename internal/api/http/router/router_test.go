package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/server/internal/api/http/authctx"
	"github.com/taskhub/server/internal/model"
	"github.com/taskhub/server/internal/password"
	"github.com/taskhub/server/internal/service"
	"github.com/taskhub/server/internal/testutil"
	"github.com/taskhub/server/internal/token"
)

// memoryUserStore is an in-memory UserStore enforcing email uniqueness the
// same way the database constraint does.
type memoryUserStore struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[string]model.User)}
}

func (s *memoryUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

func (s *memoryUserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *memoryUserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return model.User{}, model.ErrDuplicate
	}
	s.users[user.Email] = user
	return user, nil
}

type okPinger struct{}

func (okPinger) Ping(ctx context.Context) error { return nil }

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokenManager := token.NewJWT("test-secret", time.Hour)
	authService := service.NewAuth(newMemoryUserStore(), tokenManager, password.NewHasher(4), testutil.MakeNoopLogger())

	r := New(authService, okPinger{}, tokenManager, authctx.NewManager(), []string{"*"}, "", testutil.MakeNoopLogger())
	return r.Register()
}

func postJSON(t *testing.T, engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouter_SignupLoginProfileFlow(t *testing.T) {
	engine := newTestEngine(t)

	// signup with mixed-case email normalizes to lowercase
	w := postJSON(t, engine, "/api/auth/signup", `{"email":"A@x.com","password":"Secr3t!","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var signup struct {
		User  struct{ ID, Email string } `json:"user"`
		Token string                     `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))
	assert.Equal(t, "a@x.com", signup.User.Email)
	require.NotEmpty(t, signup.Token)

	// login with another case variant resolves the same account
	w = postJSON(t, engine, "/api/auth/login", `{"email":"a@X.COM","password":"Secr3t!"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		User  struct{ ID string } `json:"user"`
		Token string              `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.Equal(t, signup.User.ID, login.User.ID)

	// both tokens decode to the same subject
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, signup.User.ID, profile.ID)
	assert.Equal(t, "a@x.com", profile.Email)
}

func TestRouter_DuplicateSignup(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(t, engine, "/api/auth/signup", `{"email":"a@x.com","password":"Secr3t!"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// any case variant of the same email conflicts
	w = postJSON(t, engine, "/api/auth/signup", `{"email":"A@X.COM","password":"other"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")

	// the first account still works
	w = postJSON(t, engine, "/api/auth/login", `{"email":"a@x.com","password":"Secr3t!"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_LoginFailureSymmetry(t *testing.T) {
	engine := newTestEngine(t)

	w := postJSON(t, engine, "/api/auth/signup", `{"email":"a@x.com","password":"Secr3t!"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPassword := postJSON(t, engine, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`)
	unknownUser := postJSON(t, engine, "/api/auth/login", `{"email":"ghost@x.com","password":"Secr3t!"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownUser.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestRouter_ValidationErrors(t *testing.T) {
	engine := newTestEngine(t)

	for _, body := range []string{
		`{"password":"Secr3t!"}`,
		`{"email":"a@x.com"}`,
		`{}`,
	} {
		w := postJSON(t, engine, "/api/auth/signup", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = postJSON(t, engine, "/api/auth/login", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestRouter_ProtectedEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	// no header
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// garbage token
	req = httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// token signed with a different secret
	otherManager := token.NewJWT("other-secret", time.Hour)
	forged, err := otherManager.Generate(uuid.New(), "a@x.com")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// expired token
	expiredManager := token.NewJWT("test-secret", -time.Minute)
	expired, err := expiredManager.Generate(uuid.New(), "a@x.com")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_Health(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
