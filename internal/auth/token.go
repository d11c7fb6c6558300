package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims — полезная нагрузка access-токена провайдера.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier проверяет access-токены провайдера локально,
// без похода по сети: токены подписаны общим HS256-секретом.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier создаёт верификатор с секретом провайдера.
func NewTokenVerifier(secret string) (*TokenVerifier, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: секрет JWT слишком короткий")
	}
	return &TokenVerifier{secret: []byte(secret)}, nil
}

// Verify разбирает и проверяет токен, возвращает его claims.
func (v *TokenVerifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: неожиданный метод подписи: %v", token.Header["alg"])
			}
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("auth: невалидный токен: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, errors.New("auth: невалидные claims")
	}
	return claims, nil
}

type contextKey string

const userIDKey contextKey = "userID"

// RequireAuth — middleware защищённых маршрутов: требует валидный
// Bearer-токен и кладёт идентификатор пользователя в контекст запроса.
func RequireAuth(verifier *TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := verifier.Verify(BearerToken(r))
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID извлекает идентификатор аутентифицированного пользователя из контекста.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// BearerToken достаёт токен из заголовка Authorization, пустая строка — если его нет.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
