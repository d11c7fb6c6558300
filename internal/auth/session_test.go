package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Totarae/LinkInBio/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeProvider — провайдер с управляемым результатом обновления.
type fakeProvider struct {
	refreshed    *Session
	refreshErr   error
	refreshCalls int
	signOutErr   error
	signOutCalls int
}

func (f *fakeProvider) GetUser(ctx context.Context, accessToken string) (*ProviderUser, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProvider) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	f.refreshCalls++
	return f.refreshed, f.refreshErr
}

func (f *fakeProvider) SignOut(ctx context.Context, accessToken string) error {
	f.signOutCalls++
	return f.signOutErr
}

func newTestAccessor(provider *fakeProvider) *Accessor {
	logger, _ := zap.NewDevelopment()
	return NewAccessor(provider, logger)
}

func TestResolve_Anonymous(t *testing.T) {
	a := newTestAccessor(&fakeProvider{})

	session, err := a.Resolve(context.Background(), nil)
	// Аноним — это не ошибка
	assert.Nil(t, session)
	assert.NoError(t, err)
}

func TestResolve_FreshSession(t *testing.T) {
	provider := &fakeProvider{}
	a := newTestAccessor(provider)

	session := &Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	resolved, err := a.Resolve(context.Background(), session)

	require.NoError(t, err)
	assert.Same(t, session, resolved)
	// До порога далеко — к провайдеру не ходим
	assert.Zero(t, provider.refreshCalls)
}

func TestResolve_RefreshNearExpiry(t *testing.T) {
	refreshed := &Session{AccessToken: "new-tok", ExpiresAt: time.Now().Add(time.Hour)}
	provider := &fakeProvider{refreshed: refreshed}
	a := newTestAccessor(provider)

	events, cancel := a.Subscribe()
	defer cancel()

	session := &Session{AccessToken: "old-tok", RefreshToken: "ref", ExpiresAt: time.Now().Add(time.Minute)}
	resolved, err := a.Resolve(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, "new-tok", resolved.AccessToken)
	assert.Equal(t, 1, provider.refreshCalls)

	select {
	case ev := <-events:
		assert.Equal(t, EventTokenRefreshed, ev)
	default:
		t.Fatal("ожидалось событие TOKEN_REFRESHED")
	}
}

func TestResolve_RefreshFailedStillValid(t *testing.T) {
	provider := &fakeProvider{refreshErr: errors.New("provider down")}
	a := newTestAccessor(provider)

	// Токен в пределах порога, но ещё не истёк
	session := &Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Minute)}
	resolved, err := a.Resolve(context.Background(), session)

	// Живую сессию из-за недоступного провайдера не отбираем
	require.NoError(t, err)
	assert.Same(t, session, resolved)
}

func TestResolve_RefreshFailedExpired(t *testing.T) {
	provider := &fakeProvider{refreshErr: errors.New("provider down")}
	a := newTestAccessor(provider)

	session := &Session{AccessToken: "tok", ExpiresAt: time.Now().Add(-time.Minute)}
	resolved, err := a.Resolve(context.Background(), session)

	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestCurrent_StoresRefreshed(t *testing.T) {
	refreshed := &Session{AccessToken: "new-tok", ExpiresAt: time.Now().Add(time.Hour)}
	provider := &fakeProvider{refreshed: refreshed}
	a := newTestAccessor(provider)

	a.SetSession(&Session{AccessToken: "old-tok", RefreshToken: "ref", ExpiresAt: time.Now().Add(time.Minute)})

	first, err := a.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-tok", first.AccessToken)

	// Повторный вызов отдаёт уже сохранённую свежую сессию без похода к провайдеру
	second, err := a.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-tok", second.AccessToken)
	assert.Equal(t, 1, provider.refreshCalls)
}

func TestSignOut(t *testing.T) {
	provider := &fakeProvider{}
	a := newTestAccessor(provider)
	a.SetSession(&Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)})

	events, cancel := a.Subscribe()
	defer cancel()

	require.NoError(t, a.SignOut(context.Background()))
	assert.Equal(t, 1, provider.signOutCalls)

	session, err := a.Current(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, session)

	select {
	case ev := <-events:
		assert.Equal(t, EventSignedOut, ev)
	default:
		t.Fatal("ожидалось событие SIGNED_OUT")
	}
}

func TestSignOut_ProviderDown(t *testing.T) {
	provider := &fakeProvider{signOutErr: errors.New("provider down")}
	a := newTestAccessor(provider)
	a.SetSession(&Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)})

	err := a.SignOut(context.Background())
	assert.Error(t, err)

	// Локальное состояние сброшено, даже если провайдер не подтвердил выход
	session, _ := a.Current(context.Background())
	assert.Nil(t, session)
}

func TestSubscribe(t *testing.T) {
	a := newTestAccessor(&fakeProvider{})

	events, cancel := a.Subscribe()
	a.SetSession(&Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)})

	select {
	case ev := <-events:
		assert.Equal(t, EventSignedIn, ev)
	default:
		t.Fatal("ожидалось событие SIGNED_IN")
	}

	cancel()
	// После отписки канал закрыт
	_, open := <-events
	assert.False(t, open)

	// Повторная отписка безопасна
	cancel()
}

func TestSessionExpired(t *testing.T) {
	fresh := &Session{ExpiresAt: time.Now().Add(time.Hour)}
	stale := &Session{ExpiresAt: time.Now().Add(-time.Second)}

	assert.False(t, fresh.Expired())
	assert.True(t, stale.Expired())
}
