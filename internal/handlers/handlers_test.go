package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Totarae/LinkInBio/internal/auth"
	"github.com/Totarae/LinkInBio/internal/model"
	"github.com/Totarae/LinkInBio/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "handler-test-signing-key"

type stubUserRepo struct {
	users   map[string]*model.User
	pingErr error
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.users[username], nil
}

func (s *stubUserRepo) Upsert(ctx context.Context, user *model.User) error {
	if s.users == nil {
		s.users = make(map[string]*model.User)
	}
	s.users[user.Username] = user
	return nil
}

func (s *stubUserRepo) Ping(ctx context.Context) error { return s.pingErr }

type stubLinkRepo struct {
	links        []*model.Link
	incrementErr error
	reconciled   int64
}

func (s *stubLinkRepo) Save(ctx context.Context, link *model.Link) error { return nil }
func (s *stubLinkRepo) GetByID(ctx context.Context, id string) (*model.Link, error) {
	for _, l := range s.links {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}
func (s *stubLinkRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Link, error) {
	return s.links, nil
}
func (s *stubLinkRepo) GetActiveByUserID(ctx context.Context, userID string) ([]*model.Link, error) {
	return s.links, nil
}
func (s *stubLinkRepo) Update(ctx context.Context, link *model.Link) error     { return nil }
func (s *stubLinkRepo) Delete(ctx context.Context, id, userID string) error    { return nil }
func (s *stubLinkRepo) Reorder(ctx context.Context, u string, i []string) error { return nil }
func (s *stubLinkRepo) IncrementClicks(ctx context.Context, id string) error {
	if s.incrementErr != nil {
		return s.incrementErr
	}
	for _, l := range s.links {
		if l.ID == id {
			l.Clicks++
			return nil
		}
	}
	return errors.New("no rows affected")
}
func (s *stubLinkRepo) ReconcileClicks(ctx context.Context) (int64, error) {
	return s.reconciled, nil
}

type stubClickRepo struct {
	events    []*model.ClickEvent
	insertErr error
}

func (s *stubClickRepo) Insert(ctx context.Context, event *model.ClickEvent) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.events = append(s.events, event)
	return nil
}
func (s *stubClickRepo) CountByLink(ctx context.Context, linkID string) (int64, error) {
	return int64(len(s.events)), nil
}
func (s *stubClickRepo) Stats(ctx context.Context, linkID string, days int) (*model.LinkStats, error) {
	return &model.LinkStats{TotalClicks: int64(len(s.events))}, nil
}

type stubThemeRepo struct {
	themes []*model.Theme
}

func (s *stubThemeRepo) Save(ctx context.Context, theme *model.Theme) error   { return nil }
func (s *stubThemeRepo) Update(ctx context.Context, theme *model.Theme) error { return nil }
func (s *stubThemeRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Theme, error) {
	return s.themes, nil
}
func (s *stubThemeRepo) GetDefault(ctx context.Context, userID string) (*model.Theme, error) {
	for _, theme := range s.themes {
		if theme.IsDefault {
			return theme, nil
		}
	}
	return nil, nil
}
func (s *stubThemeRepo) SetDefault(ctx context.Context, userID, themeID string) error { return nil }

type stubProvider struct {
	refreshed  *auth.Session
	refreshErr error
	signOutErr error
}

func (s *stubProvider) GetUser(ctx context.Context, tok string) (*auth.ProviderUser, error) {
	return nil, errors.New("not implemented")
}
func (s *stubProvider) RefreshSession(ctx context.Context, tok string) (*auth.Session, error) {
	return s.refreshed, s.refreshErr
}
func (s *stubProvider) SignOut(ctx context.Context, tok string) error { return s.signOutErr }

type testEnv struct {
	handler *Handler
	users   *stubUserRepo
	links   *stubLinkRepo
	clicks  *stubClickRepo
	themes  *stubThemeRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger, _ := zap.NewDevelopment()

	users := &stubUserRepo{users: map[string]*model.User{}}
	links := &stubLinkRepo{}
	clicks := &stubClickRepo{}
	themes := &stubThemeRepo{}

	verifier, err := auth.NewTokenVerifier(testSecret)
	require.NoError(t, err)
	sessions := auth.NewAccessor(&stubProvider{}, logger)

	handler := NewHandler(
		service.NewClickService(links, clicks, logger, time.Second),
		service.NewProfileService(users, links, themes, logger),
		service.NewLinkService(links, clicks, logger),
		service.NewThemeService(themes, logger),
		sessions, verifier, users, logger, "10.0.0.0/24",
	)
	return &testEnv{handler: handler, users: users, links: links, clicks: clicks, themes: themes}
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func signTestToken(t *testing.T, subject, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestTrackClick(t *testing.T) {
	env := newTestEnv(t)
	env.links.links = []*model.Link{{ID: "link-1"}}

	req := httptest.NewRequest(http.MethodPost, "/api/links/link-1/click", strings.NewReader(`{"country":"NL"}`))
	req = withURLParam(req, "id", "link-1")
	rec := httptest.NewRecorder()

	env.handler.TrackClick(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body model.TrackClickResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Empty(t, body.Error)
	assert.Equal(t, int64(1), env.links.links[0].Clicks)
	assert.Equal(t, "NL", env.clicks.events[0].Country)
}

// TestTrackClick_StorageDown: трекинг никогда не отвечает ошибкой,
// при любом сбое — 200 и success:false.
func TestTrackClick_StorageDown(t *testing.T) {
	env := newTestEnv(t)
	env.clicks.insertErr = errors.New("connection refused")

	req := httptest.NewRequest(http.MethodPost, "/api/links/link-1/click", nil)
	req = withURLParam(req, "id", "link-1")
	rec := httptest.NewRecorder()

	env.handler.TrackClick(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body model.TrackClickResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "click was not recorded", body.Error)
}

func TestTrackClick_GarbageBody(t *testing.T) {
	env := newTestEnv(t)
	env.links.links = []*model.Link{{ID: "link-1"}}

	req := httptest.NewRequest(http.MethodPost, "/api/links/link-1/click", strings.NewReader("{not json"))
	req = withURLParam(req, "id", "link-1")
	rec := httptest.NewRecorder()

	env.handler.TrackClick(rec, req)

	// Битое тело — это просто отсутствие контекста клика
	assert.Equal(t, http.StatusOK, rec.Code)
	var body model.TrackClickResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestGetProfile(t *testing.T) {
	env := newTestEnv(t)
	env.users.users["alice"] = &model.User{ID: "user-1", Username: "alice"}
	env.links.links = []*model.Link{
		{ID: "l1", Position: 0},
		{ID: "l2", Position: 1},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/alice", nil)
	req = withURLParam(req, "username", "alice")
	rec := httptest.NewRecorder()

	env.handler.GetProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var profile model.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "alice", profile.User.Username)
	assert.Len(t, profile.Links, 2)
	// Темы нет — отдаётся системная
	assert.Equal(t, "system", profile.Theme.Name)
}

func TestGetProfile_NotFound(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/ghost", nil)
	req = withURLParam(req, "username", "ghost")
	rec := httptest.NewRecorder()

	env.handler.GetProfile(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSession_Anonymous(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	rec := httptest.NewRecorder()

	env.handler.Session(rec, req)

	// Аноним получает 200 и null, не 401
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestSession_InvalidToken(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	env.handler.Session(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestSession_ValidToken(t *testing.T) {
	env := newTestEnv(t)
	signed := signTestToken(t, "user-1", "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	env.handler.Session(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, signed, body.AccessToken)
	assert.Equal(t, "user-1", body.User.ID)
}

func TestSignOut_NoToken(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.handler.SignOut(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signout", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPing(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.handler.Ping(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	env.users.pingErr = errors.New("down")
	rec = httptest.NewRecorder()
	env.handler.Ping(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReconcile_Untrusted(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/internal/reconcile", nil)
	req.Header.Set("X-Real-IP", "192.168.1.5")
	rec := httptest.NewRecorder()

	env.handler.Reconcile(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReconcile_Trusted(t *testing.T) {
	env := newTestEnv(t)
	env.links.reconciled = 3

	req := httptest.NewRequest(http.MethodPost, "/internal/reconcile", nil)
	req.Header.Set("X-Real-IP", "10.0.0.15")
	rec := httptest.NewRecorder()

	env.handler.Reconcile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body["fixed"])
}

func TestCreateLink_Validation(t *testing.T) {
	env := newTestEnv(t)
	signed := signTestToken(t, "user-1", "alice@example.com")
	verifier, _ := auth.NewTokenVerifier(testSecret)

	r := chi.NewRouter()
	r.With(auth.RequireAuth(verifier)).Post("/api/me/links", env.handler.CreateLink)

	// Без токена — 401
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/me/links", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Пустой title — 400
	req := httptest.NewRequest(http.MethodPost, "/api/me/links", strings.NewReader(`{"url":"https://a.com"}`))
	req.Header.Set("Authorization", "Bearer "+signed)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// URL без схемы — 400
	req = httptest.NewRequest(http.MethodPost, "/api/me/links", strings.NewReader(`{"title":"x","url":"a.com"}`))
	req.Header.Set("Authorization", "Bearer "+signed)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Валидный запрос — 201
	req = httptest.NewRequest(http.MethodPost, "/api/me/links", strings.NewReader(`{"title":"GitHub","url":"https://github.com/alice"}`))
	req.Header.Set("Authorization", "Bearer "+signed)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var link model.Link
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &link))
	assert.Equal(t, "user-1", link.UserID)
	assert.True(t, link.IsActive)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	signed := signTestToken(t, "user-1", "alice@example.com")
	verifier, _ := auth.NewTokenVerifier(testSecret)

	r := chi.NewRouter()
	r.With(auth.RequireAuth(verifier)).Put("/api/me/profile", env.handler.UpdateProfile)

	req := httptest.NewRequest(http.MethodPut, "/api/me/profile", strings.NewReader(`{"username":"alice","bio":"hi"}`))
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var user model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.Username)
	// Email берётся из токена, а не из тела запроса
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUpdateProfile_MissingUsername(t *testing.T) {
	env := newTestEnv(t)
	signed := signTestToken(t, "user-1", "alice@example.com")
	verifier, _ := auth.NewTokenVerifier(testSecret)

	r := chi.NewRouter()
	r.With(auth.RequireAuth(verifier)).Put("/api/me/profile", env.handler.UpdateProfile)

	req := httptest.NewRequest(http.MethodPut, "/api/me/profile", strings.NewReader(`{"bio":"hi"}`))
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
