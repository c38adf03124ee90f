package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"khatreez/internal/config"
	"khatreez/internal/models"
	"khatreez/internal/repository"
	"khatreez/internal/services"
	"khatreez/internal/utils"
	"khatreez/internal/web"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOperatorRepo struct {
	operators map[string]*models.Operator
	nextID    int
}

func newFakeOperatorRepo() *fakeOperatorRepo {
	return &fakeOperatorRepo{operators: make(map[string]*models.Operator), nextID: 1}
}

func (f *fakeOperatorRepo) Create(_ context.Context, name, hash string) (*models.Operator, error) {
	if _, exists := f.operators[name]; exists {
		return nil, repository.ErrOperatorExists
	}
	op := &models.Operator{ID: f.nextID, Name: name, PasswordHash: hash}
	f.nextID++
	f.operators[name] = op
	return op, nil
}

func (f *fakeOperatorRepo) GetByName(_ context.Context, name string) (*models.Operator, error) {
	op, ok := f.operators[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return op, nil
}

func (f *fakeOperatorRepo) GetByID(_ context.Context, id int) (*models.Operator, error) {
	for _, op := range f.operators {
		if op.ID == id {
			return op, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newAuthRouter(t *testing.T, repo repository.OperatorRepo) *mux.Router {
	t.Helper()

	templates, err := web.LoadTemplates()
	require.NoError(t, err)

	cfg := &config.Config{SessionSecret: "test-secret", SessionTTL: "1h"}
	h := NewAuthHandler(cfg, services.NewAuthService(repo), templates)

	r := mux.NewRouter()
	r.HandleFunc("/", h.LoginPage).Methods("GET")
	r.HandleFunc("/admin/login", h.Login).Methods("POST")
	r.HandleFunc("/admin/register", h.Register).Methods("POST")
	r.HandleFunc("/admin/logout", h.Logout).Methods("GET")
	return r
}

func postAuthForm(router *mux.Router, path, username, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == utils.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestRegisterThenLoginFlow(t *testing.T) {
	repo := newFakeOperatorRepo()
	router := newAuthRouter(t, repo)

	rec := postAuthForm(router, "/admin/register", "editor", "secret")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/uploads", rec.Header().Get("Location"))
	require.NotNil(t, sessionCookieFrom(rec), "регистрация должна ставить куку сессии")

	rec = postAuthForm(router, "/admin/login", "editor", "secret")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/uploads", rec.Header().Get("Location"))
	require.NotNil(t, sessionCookieFrom(rec))
}

func TestRegisterConflict(t *testing.T) {
	repo := newFakeOperatorRepo()
	router := newAuthRouter(t, repo)

	rec := postAuthForm(router, "/admin/register", "editor", "secret")
	require.Equal(t, http.StatusFound, rec.Code)

	rec = postAuthForm(router, "/admin/register", "editor", "another")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, repo.operators, 1)
}

func TestRegisterMissingFields(t *testing.T) {
	router := newAuthRouter(t, newFakeOperatorRepo())

	rec := postAuthForm(router, "/admin/register", "", "secret")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginFailureRedirectsToEntry(t *testing.T) {
	repo := newFakeOperatorRepo()
	router := newAuthRouter(t, repo)

	// Неизвестное имя и неверный пароль ведут себя одинаково.
	rec := postAuthForm(router, "/admin/login", "ghost", "secret")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Nil(t, sessionCookieFrom(rec))

	postAuthForm(router, "/admin/register", "editor", "secret")
	rec = postAuthForm(router, "/admin/login", "editor", "wrong")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Nil(t, sessionCookieFrom(rec))
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newAuthRouter(t, newFakeOperatorRepo())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/logout", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie := sessionCookieFrom(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
