// Package auth отвечает за границу с внешним провайдером аутентификации.
// Сам провайдер (выдача паролей, сброс, письма) мы не реализуем,
// только потребляем его API и проверяем его токены.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Totarae/LinkInBio/internal/apperror"
)

// ProviderUser — представление пользователя у провайдера.
type ProviderUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session — подтверждение аутентификации от провайдера:
// пара токенов и срок действия access-токена.
type Session struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         ProviderUser `json:"user"`
}

// Expired сообщает, истёк ли access-токен сессии.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.After(time.Now())
}

// Provider — операции провайдера, которые потребляет приложение.
type Provider interface {
	GetUser(ctx context.Context, accessToken string) (*ProviderUser, error)
	RefreshSession(ctx context.Context, refreshToken string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// HTTPProvider — клиент GoTrue-совместимого провайдера.
// Все вызовы ограничены таймаутом клиента: зависший провайдер
// не должен держать запрос.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider создаёт клиента провайдера с ограниченным временем ожидания.
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProvider) do(ctx context.Context, method, path, accessToken string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("auth: encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("auth: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return apperror.Upstream("auth provider", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return apperror.ErrUnauthorized
	case resp.StatusCode >= 500:
		return apperror.Upstream("auth provider", fmt.Errorf("status %d", resp.StatusCode))
	case resp.StatusCode >= 400:
		return fmt.Errorf("auth provider: status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("auth: decode response: %w", err)
		}
	}
	return nil
}

// GetUser возвращает пользователя по его access-токену.
func (p *HTTPProvider) GetUser(ctx context.Context, accessToken string) (*ProviderUser, error) {
	user := &ProviderUser{}
	if err := p.do(ctx, http.MethodGet, "/user", accessToken, nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RefreshSession обменивает refresh-токен на новую сессию.
// Обновление идемпотентно и безопасно при гонках: источником истины
// остаётся провайдер, выигрывает последнее успешное обновление.
func (p *HTTPProvider) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	session := &Session{}
	body := map[string]string{"refresh_token": refreshToken}
	if err := p.do(ctx, http.MethodPost, "/token?grant_type=refresh_token", "", body, session); err != nil {
		return nil, err
	}
	if session.ExpiresAt.IsZero() && session.ExpiresIn > 0 {
		session.ExpiresAt = time.Now().Add(time.Duration(session.ExpiresIn) * time.Second)
	}
	return session, nil
}

// SignOut отзывает сессию у провайдера.
func (p *HTTPProvider) SignOut(ctx context.Context, accessToken string) error {
	return p.do(ctx, http.MethodPost, "/logout", accessToken, nil, nil)
}
