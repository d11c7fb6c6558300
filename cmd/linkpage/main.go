package main

import (
	"context"
	"net/http"

	"github.com/Totarae/LinkInBio/internal/auth"
	"github.com/Totarae/LinkInBio/internal/config"
	"github.com/Totarae/LinkInBio/internal/database"
	"github.com/Totarae/LinkInBio/internal/handlers"
	"github.com/Totarae/LinkInBio/internal/repositories"
	"github.com/Totarae/LinkInBio/internal/router"
	"github.com/Totarae/LinkInBio/internal/service"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Инициализация конфигурации
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		// Без базы и провайдера сервер не поднимаем
		logger.Fatal("Ошибка конфигурации: ", zap.Error(err))
	}

	db, err := database.NewDB(cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal("Ошибка подключения к БД: ", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(context.Background()); err != nil {
		logger.Fatal("БД недоступна: ", zap.Error(err))
	}

	if err := database.RunMigrations(cfg.DatabaseDSN, cfg.PgMigrationsPath, logger); err != nil {
		logger.Fatal("Ошибка применения миграций: ", zap.Error(err))
	}

	userRepo := repositories.NewUserRepository(db)
	linkRepo := repositories.NewLinkRepository(db)
	clickRepo := repositories.NewClickRepository(db)
	themeRepo := repositories.NewThemeRepository(db)

	provider := auth.NewHTTPProvider(cfg.AuthBaseURL, cfg.AuthTimeout)
	sessions := auth.NewAccessor(provider, logger)
	verifier, err := auth.NewTokenVerifier(cfg.AuthJWTSecret)
	if err != nil {
		logger.Fatal("Ошибка инициализации верификатора токенов: ", zap.Error(err))
	}

	clickService := service.NewClickService(linkRepo, clickRepo, logger, cfg.ClickTimeout)
	profileService := service.NewProfileService(userRepo, linkRepo, themeRepo, logger)
	linkService := service.NewLinkService(linkRepo, clickRepo, logger)
	themeService := service.NewThemeService(themeRepo, logger)

	handler := handlers.NewHandler(clickService, profileService, linkService, themeService,
		sessions, verifier, userRepo, logger, cfg.TrustedSubnet)

	r := router.NewRouter(handler, verifier, logger)

	logger.Info("Сервер запущен на ", zap.String("address", cfg.ServerAddress))
	if cfg.EnableHTTPS {
		err = http.ListenAndServeTLS(cfg.ServerAddress, cfg.TLSCertPath, cfg.TLSKeyPath, r)
	} else {
		err = http.ListenAndServe(cfg.ServerAddress, r)
	}
	if err != nil {
		logger.Fatal("Ошибка при запуске сервера: ", zap.Error(err))
	}
}
