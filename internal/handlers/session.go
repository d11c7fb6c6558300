package handlers

import (
	"net/http"

	"github.com/Totarae/LinkInBio/internal/auth"
)

// sessionResponse — статус сессии для клиента.
type sessionResponse struct {
	AccessToken string            `json:"access_token"`
	ExpiresAt   int64             `json:"expires_at"`
	User        auth.ProviderUser `json:"user"`
}

// Session — GET /api/auth/session.
// Статусный эндпоинт: анонимный запрос получает null и 200, не 401.
// Сессия с остатком меньше порога прозрачно обновляется у провайдера;
// если обновление не удалось, а токен ещё валиден — возвращаем его как есть.
func (h *Handler) Session(res http.ResponseWriter, req *http.Request) {
	token := auth.BearerToken(req)
	if token == "" {
		h.writeJSON(res, http.StatusOK, nil)
		return
	}

	claims, err := h.Verifier.Verify(token)
	if err != nil {
		// Невалидный или истёкший токен на статусном эндпоинте — аноним
		h.writeJSON(res, http.StatusOK, nil)
		return
	}

	session := &auth.Session{
		AccessToken:  token,
		RefreshToken: req.Header.Get("X-Refresh-Token"),
		ExpiresAt:    claims.ExpiresAt.Time,
		User:         auth.ProviderUser{ID: claims.Subject, Email: claims.Email},
	}

	resolved, err := h.Sessions.Resolve(req.Context(), session)
	if err != nil || resolved == nil {
		h.writeJSON(res, http.StatusOK, nil)
		return
	}

	h.writeJSON(res, http.StatusOK, &sessionResponse{
		AccessToken: resolved.AccessToken,
		ExpiresAt:   resolved.ExpiresAt.Unix(),
		User:        resolved.User,
	})
}

// SignOut — POST /api/auth/signout, отзывает сессию у провайдера.
func (h *Handler) SignOut(res http.ResponseWriter, req *http.Request) {
	token := auth.BearerToken(req)
	if token == "" {
		res.WriteHeader(http.StatusNoContent)
		return
	}
	if err := h.Sessions.SignOutToken(req.Context(), token); err != nil {
		// Выход считаем состоявшимся локально, даже если провайдер недоступен
		h.writeJSON(res, http.StatusOK, map[string]string{"status": "signed out locally"})
		return
	}
	res.WriteHeader(http.StatusNoContent)
}
