package router

import (
	"github.com/Totarae/LinkInBio/internal/auth"
	"github.com/Totarae/LinkInBio/internal/handlers"
	"github.com/Totarae/LinkInBio/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, verifier *auth.TokenVerifier, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.GzipMiddleware)            // Gzip-сжатие

	// Публичные маршруты
	r.Get("/ping", handler.Ping)
	r.Post("/api/links/{id}/click", handler.TrackClick)
	r.Get("/api/profiles/{username}", handler.GetProfile)
	r.Get("/api/auth/session", handler.Session)
	r.Post("/api/auth/signout", handler.SignOut)

	// Маршруты владельца — только с валидным токеном провайдера
	r.Route("/api/me", func(r chi.Router) {
		r.Use(auth.RequireAuth(verifier))

		r.Put("/profile", handler.UpdateProfile)

		r.Get("/links", handler.ListLinks)
		r.Post("/links", handler.CreateLink)
		r.Post("/links/reorder", handler.ReorderLinks)
		r.Put("/links/{id}", handler.UpdateLink)
		r.Delete("/links/{id}", handler.DeleteLink)
		r.Get("/links/{id}/stats", handler.LinkStats)

		r.Get("/themes", handler.ListThemes)
		r.Post("/themes", handler.CreateTheme)
		r.Put("/themes/{id}", handler.UpdateTheme)
		r.Post("/themes/{id}/default", handler.SetDefaultTheme)
	})

	// Служебные маршруты, доступ из доверенной подсети
	r.Post("/internal/reconcile", handler.Reconcile)

	return r
}
