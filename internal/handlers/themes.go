package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Totarae/LinkInBio/internal/apperror"
	"github.com/Totarae/LinkInBio/internal/auth"
	"github.com/Totarae/LinkInBio/internal/model"
	"github.com/go-chi/chi/v5"
)

// ListThemes — GET /api/me/themes.
func (h *Handler) ListThemes(res http.ResponseWriter, req *http.Request) {
	userID, ok := auth.UserID(req.Context())
	if !ok {
		h.writeError(res, apperror.ErrUnauthorized)
		return
	}

	themes, err := h.Themes.List(req.Context(), userID)
	if err != nil {
		h.writeError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, themes)
}

// CreateTheme — POST /api/me/themes.
func (h *Handler) CreateTheme(res http.ResponseWriter, req *http.Request) {
	userID, ok := auth.UserID(req.Context())
	if !ok {
		h.writeError(res, apperror.ErrUnauthorized)
		return
	}

	themeReq := &model.ThemeRequest{}
	if err := json.NewDecoder(req.Body).Decode(themeReq); err != nil {
		h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if themeReq.Name == "" {
		h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	theme, err := h.Themes.Create(req.Context(), userID, themeReq)
	if err != nil {
		if !themeReq.ButtonStyle.Valid() {
			h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": "invalid button style"})
			return
		}
		h.writeError(res, err)
		return
	}
	h.writeJSON(res, http.StatusCreated, theme)
}

// UpdateTheme — PUT /api/me/themes/{id}.
func (h *Handler) UpdateTheme(res http.ResponseWriter, req *http.Request) {
	userID, ok := auth.UserID(req.Context())
	if !ok {
		h.writeError(res, apperror.ErrUnauthorized)
		return
	}

	themeReq := &model.ThemeRequest{}
	if err := json.NewDecoder(req.Body).Decode(themeReq); err != nil {
		h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if !themeReq.ButtonStyle.Valid() {
		h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": "invalid button style"})
		return
	}

	theme, err := h.Themes.Update(req.Context(), userID, chi.URLParam(req, "id"), themeReq)
	if err != nil {
		h.writeError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, theme)
}

// SetDefaultTheme — POST /api/me/themes/{id}/default.
// Эксклюзивный переключатель: прежняя тема по умолчанию гаснет.
func (h *Handler) SetDefaultTheme(res http.ResponseWriter, req *http.Request) {
	userID, ok := auth.UserID(req.Context())
	if !ok {
		h.writeError(res, apperror.ErrUnauthorized)
		return
	}

	if err := h.Themes.SetDefault(req.Context(), userID, chi.URLParam(req, "id")); err != nil {
		h.writeError(res, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}
