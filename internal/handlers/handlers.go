package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/Totarae/LinkInBio/internal/apperror"
	"github.com/Totarae/LinkInBio/internal/auth"
	"github.com/Totarae/LinkInBio/internal/model"
	"github.com/Totarae/LinkInBio/internal/repositories"
	"github.com/Totarae/LinkInBio/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler объединяет HTTP-обработчики приложения.
type Handler struct {
	Clicks        *service.ClickService
	Profiles      *service.ProfileService
	Links         *service.LinkService
	Themes        *service.ThemeService
	Sessions      *auth.Accessor
	Verifier      *auth.TokenVerifier
	Users         repositories.UserRepositoryInterface
	Logger        *zap.Logger
	TrustedSubnet string
}

// NewHandler создаёт Handler со всеми зависимостями.
func NewHandler(clicks *service.ClickService, profiles *service.ProfileService, links *service.LinkService,
	themes *service.ThemeService, sessions *auth.Accessor, verifier *auth.TokenVerifier,
	users repositories.UserRepositoryInterface, logger *zap.Logger, trustedSubnet string) *Handler {
	return &Handler{
		Clicks:        clicks,
		Profiles:      profiles,
		Links:         links,
		Themes:        themes,
		Sessions:      sessions,
		Verifier:      verifier,
		Users:         users,
		Logger:        logger,
		TrustedSubnet: trustedSubnet,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error("Не удалось записать ответ", zap.Error(err))
	}
}

// writeError сопоставляет классы ошибок со статусами. Всё, что не
// Unauthorized и не NotFound, наружу уходит обезличенно: детали
// хранилища клиенту не показываем.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, apperror.ErrUnauthorized):
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	default:
		h.Logger.Error("Внутренняя ошибка", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// TrackClick — POST /api/links/{id}/click.
// Всегда отвечает 200 и телом {success, error?}: трекинг — телеметрия
// best-effort, его сбой не должен ломать страницу посетителю.
func (h *Handler) TrackClick(res http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	if id == "" {
		h.writeJSON(res, http.StatusOK, &model.TrackClickResponse{Success: false, Error: "missing link id"})
		return
	}

	clickReq := &model.TrackClickRequest{}
	if req.Body != nil {
		// Контекст клика необязателен, битое тело просто игнорируем
		_ = json.NewDecoder(req.Body).Decode(clickReq)
	}

	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		ip = req.RemoteAddr
	}
	meta := service.ClickContext{
		IPAddress: ip,
		UserAgent: req.UserAgent(),
		Referrer:  req.Referer(),
	}

	resp := h.Clicks.RecordClick(req.Context(), id, clickReq, meta)
	h.writeJSON(res, http.StatusOK, resp)
}

// GetProfile — GET /api/profiles/{username}, публичный агрегат страницы.
func (h *Handler) GetProfile(res http.ResponseWriter, req *http.Request) {
	username := chi.URLParam(req, "username")
	if username == "" {
		h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": "missing username"})
		return
	}

	profile, err := h.Profiles.GetProfile(req.Context(), username)
	if err != nil {
		h.writeError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, profile)
}

// UpdateProfile — PUT /api/me/profile.
func (h *Handler) UpdateProfile(res http.ResponseWriter, req *http.Request) {
	userID, ok := auth.UserID(req.Context())
	if !ok {
		h.writeError(res, apperror.ErrUnauthorized)
		return
	}

	profileReq := &model.ProfileRequest{}
	if err := json.NewDecoder(req.Body).Decode(profileReq); err != nil {
		h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if profileReq.Username == "" {
		h.writeJSON(res, http.StatusBadRequest, map[string]string{"error": "username is required"})
		return
	}

	claims, err := h.Verifier.Verify(auth.BearerToken(req))
	if err != nil {
		h.writeError(res, apperror.ErrUnauthorized)
		return
	}

	user, err := h.Profiles.UpdateProfile(req.Context(), userID, claims.Email, profileReq)
	if err != nil {
		h.writeError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, user)
}

// Ping — GET /ping, проверка доступности базы.
func (h *Handler) Ping(res http.ResponseWriter, req *http.Request) {
	if err := h.Users.Ping(req.Context()); err != nil {
		h.Logger.Error("База недоступна", zap.Error(err))
		res.WriteHeader(http.StatusInternalServerError)
		return
	}
	res.WriteHeader(http.StatusOK)
}

// Reconcile — POST /internal/reconcile, пересчёт счётчиков из журнала.
// Доступ только из доверенной подсети, как у внутренней статистики.
func (h *Handler) Reconcile(res http.ResponseWriter, req *http.Request) {
	if !h.fromTrustedSubnet(req) {
		res.WriteHeader(http.StatusForbidden)
		return
	}

	fixed, err := h.Clicks.Reconcile(req.Context())
	if err != nil {
		h.writeError(res, err)
		return
	}
	h.writeJSON(res, http.StatusOK, map[string]int64{"fixed": fixed})
}

func (h *Handler) fromTrustedSubnet(req *http.Request) bool {
	if h.TrustedSubnet == "" {
		return false
	}
	_, subnet, err := net.ParseCIDR(h.TrustedSubnet)
	if err != nil {
		h.Logger.Error("Некорректная доверенная подсеть", zap.String("subnet", h.TrustedSubnet))
		return false
	}
	ip := net.ParseIP(req.Header.Get("X-Real-IP"))
	return ip != nil && subnet.Contains(ip)
}
