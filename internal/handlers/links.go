package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Totarae/LinkInBio/internal/apperror"
	"github.com/Totarae/LinkInBio/internal/auth"
	"github.com/Totarae/LinkInBio/internal/model"
	"github.com/go-chi/chi/v5"
)

const defaultStatsDays = 30

func validateLinkRequest(req *model.LinkRequest) string {
	if req.Title == "" {
		return "title is required"
	}
	parsed, err := url.ParseRequestURI(req.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "invalid url"
	}
	return ""
}

// ListLinks — GET /api/me/links, все ссылки владельца со счётчиками.
func (h *Handler) ListLinks(res http.ResponseWriter, req *http.Request) {
	userID, ok := auth.UserID(req.Context())
	if !ok {
		h.writeError(res, apperror.ErrUnauthorized)
		return
	}

	links, err := h.Links.List(req.Context(), userID)
	if err != nil {
		h.writeError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, links)
}

// CreateLink — POST /api/me/links.
func (h *Handler) CreateLink(res http.ResponseWriter, req *http.Request) {
	userID, ok := auth.UserID(req.Context())
	if !ok {
		h.writeError(res, apperror.ErrUnauthorized)
		return
	}

	linkReq := &model.LinkRequest{}
	if err := json.NewDecoder(req.Body).Decode(linkReq); err != nil {
		h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := validateLinkRequest(linkReq); msg != "" {
		h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	link, err := h.Links.Create(req.Context(), userID, linkReq)
	if err != nil {
		h.writeError(res, err)
		return
	}
	h.writeJSON(res, http.StatusCreated, link)
}

// UpdateLink — PUT /api/me/links/{id}.
func (h *Handler) UpdateLink(res http.ResponseWriter, req *http.Request) {
	userID, ok := auth.UserID(req.Context())
	if !ok {
		h.writeError(res, apperror.ErrUnauthorized)
		return
	}

	linkReq := &model.LinkRequest{}
	if err := json.NewDecoder(req.Body).Decode(linkReq); err != nil {
		h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if msg := validateLinkRequest(linkReq); msg != "" {
		h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	link, err := h.Links.Update(req.Context(), userID, chi.URLParam(req, "id"), linkReq)
	if err != nil {
		h.writeError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, link)
}

// DeleteLink — DELETE /api/me/links/{id}.
func (h *Handler) DeleteLink(res http.ResponseWriter, req *http.Request) {
	userID, ok := auth.UserID(req.Context())
	if !ok {
		h.writeError(res, apperror.ErrUnauthorized)
		return
	}

	if err := h.Links.Delete(req.Context(), userID, chi.URLParam(req, "id")); err != nil {
		h.writeError(res, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}

// ReorderLinks — POST /api/me/links/reorder, новый порядок ссылок.
func (h *Handler) ReorderLinks(res http.ResponseWriter, req *http.Request) {
	userID, ok := auth.UserID(req.Context())
	if !ok {
		h.writeError(res, apperror.ErrUnauthorized)
		return
	}

	reorderReq := &model.ReorderRequest{}
	if err := json.NewDecoder(req.Body).Decode(reorderReq); err != nil || len(reorderReq.LinkIDs) == 0 {
		h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": "link_ids is required"})
		return
	}

	if err := h.Links.Reorder(req.Context(), userID, reorderReq.LinkIDs); err != nil {
		h.writeError(res, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}

// LinkStats — GET /api/me/links/{id}/stats?days=30.
func (h *Handler) LinkStats(res http.ResponseWriter, req *http.Request) {
	userID, ok := auth.UserID(req.Context())
	if !ok {
		h.writeError(res, apperror.ErrUnauthorized)
		return
	}

	days := defaultStatsDays
	if raw := req.URL.Query().Get("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	stats, err := h.Links.Stats(req.Context(), userID, chi.URLParam(req, "id"), days)
	if err != nil {
		h.writeError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, stats)
}
