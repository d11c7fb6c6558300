package auth

import (
	"context"
	"sync"
	"time"

	"github.com/Totarae/LinkInBio/internal/apperror"
	"go.uber.org/zap"
)

// RefreshThreshold — остаток жизни access-токена, при котором
// сессию пора обновлять.
const RefreshThreshold = 300 * time.Second

// Event — событие смены состояния аутентификации.
type Event string

const (
	EventSignedIn       Event = "SIGNED_IN"
	EventSignedOut      Event = "SIGNED_OUT"
	EventTokenRefreshed Event = "TOKEN_REFRESHED"
)

// Accessor хранит текущую сессию и прозрачно обновляет её у провайдера.
// Подписчики получают события через собственные каналы и сами владеют
// своим состоянием — общего мутируемого синглтона нет.
type Accessor struct {
	provider Provider
	logger   *zap.Logger

	mu      sync.RWMutex
	session *Session
	subs    map[int]chan Event
	nextSub int
}

// NewAccessor создаёт Accessor поверх провайдера.
func NewAccessor(provider Provider, logger *zap.Logger) *Accessor {
	return &Accessor{
		provider: provider,
		logger:   logger,
		subs:     make(map[int]chan Event),
	}
}

// SetSession устанавливает текущую сессию (после входа).
func (a *Accessor) SetSession(session *Session) {
	a.mu.Lock()
	a.session = session
	a.mu.Unlock()
	if session != nil {
		a.emit(EventSignedIn)
	}
}

// Resolve возвращает актуальную сессию для переданной.
//
// Переход состояний двухветочный и явный:
//   - валидная, до истечения далеко                 -> возвращаем как есть;
//   - валидная, осталось < RefreshThreshold:
//     refresh удался                                -> обновлённая сессия;
//     refresh не удался, старая ещё валидна         -> старая сессия без ошибки;
//     refresh не удался, старая истекла             -> ErrUnauthorized.
//
// Анонимное состояние — (nil, nil), это не ошибка.
func (a *Accessor) Resolve(ctx context.Context, session *Session) (*Session, error) {
	if session == nil {
		return nil, nil
	}

	if time.Until(session.ExpiresAt) >= RefreshThreshold {
		return session, nil
	}

	refreshed, err := a.provider.RefreshSession(ctx, session.RefreshToken)
	if err != nil {
		a.logger.Warn("Не удалось обновить сессию", zap.Error(err))
		if !session.Expired() {
			return session, nil
		}
		return nil, apperror.ErrUnauthorized
	}

	a.emit(EventTokenRefreshed)
	return refreshed, nil
}

// Current возвращает хранимую сессию, при необходимости обновив её.
func (a *Accessor) Current(ctx context.Context) (*Session, error) {
	a.mu.RLock()
	session := a.session
	a.mu.RUnlock()

	resolved, err := a.Resolve(ctx, session)
	if err != nil {
		return nil, err
	}
	if resolved != session {
		a.mu.Lock()
		// Гонка обновлений допустима: провайдер — источник истины,
		// побеждает последнее успешное обновление.
		a.session = resolved
		a.mu.Unlock()
	}
	return resolved, nil
}

// SignOut отзывает сессию у провайдера и сбрасывает локальное состояние.
// Локальный сброс происходит в любом случае, даже если провайдер недоступен.
func (a *Accessor) SignOut(ctx context.Context) error {
	a.mu.Lock()
	session := a.session
	a.session = nil
	a.mu.Unlock()

	a.emit(EventSignedOut)

	if session == nil {
		return nil
	}
	if err := a.provider.SignOut(ctx, session.AccessToken); err != nil {
		a.logger.Warn("Провайдер не подтвердил выход", zap.Error(err))
		return err
	}
	return nil
}

// SignOutToken отзывает у провайдера конкретный access-токен
// (серверный вариант выхода, когда сессия пришла в запросе).
func (a *Accessor) SignOutToken(ctx context.Context, accessToken string) error {
	err := a.provider.SignOut(ctx, accessToken)
	a.emit(EventSignedOut)
	if err != nil {
		a.logger.Warn("Провайдер не подтвердил выход", zap.Error(err))
	}
	return err
}

// Subscribe возвращает канал событий и функцию отписки.
// Канал закрывается при отписке; медленный подписчик события теряет,
// но никого не блокирует.
func (a *Accessor) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)

	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = ch
	a.mu.Unlock()

	cancel := func() {
		a.mu.Lock()
		if sub, ok := a.subs[id]; ok {
			delete(a.subs, id)
			close(sub)
		}
		a.mu.Unlock()
	}
	return ch, cancel
}

func (a *Accessor) emit(event Event) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, ch := range a.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
