package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Totarae/LinkInBio/internal/apperror"
	"github.com/Totarae/LinkInBio/internal/model"
	"github.com/Totarae/LinkInBio/internal/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ThemeService — операции владельца над его темами.
type ThemeService struct {
	Themes repositories.ThemeRepositoryInterface
	Logger *zap.Logger
}

// NewThemeService создаёт ThemeService.
func NewThemeService(themes repositories.ThemeRepositoryInterface, logger *zap.Logger) *ThemeService {
	return &ThemeService{Themes: themes, Logger: logger}
}

// List возвращает все темы пользователя.
func (s *ThemeService) List(ctx context.Context, userID string) ([]*model.Theme, error) {
	return s.Themes.GetByUserID(ctx, userID)
}

// Create сохраняет новую тему. Пустой стиль кнопок получает rounded,
// неизвестный — ошибку.
func (s *ThemeService) Create(ctx context.Context, userID string, req *model.ThemeRequest) (*model.Theme, error) {
	if req.ButtonStyle == "" {
		req.ButtonStyle = model.ButtonRounded
	}
	if !req.ButtonStyle.Valid() {
		return nil, fmt.Errorf("неизвестный стиль кнопок %q", req.ButtonStyle)
	}

	theme := &model.Theme{
		ID:              uuid.NewString(),
		UserID:          userID,
		Name:            req.Name,
		PrimaryColor:    req.PrimaryColor,
		SecondaryColor:  req.SecondaryColor,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
		FontFamily:      req.FontFamily,
		ButtonStyle:     req.ButtonStyle,
	}
	if err := s.Themes.Save(ctx, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

// Update изменяет тему пользователя.
func (s *ThemeService) Update(ctx context.Context, userID, id string, req *model.ThemeRequest) (*model.Theme, error) {
	if !req.ButtonStyle.Valid() {
		return nil, fmt.Errorf("неизвестный стиль кнопок %q", req.ButtonStyle)
	}

	theme := &model.Theme{
		ID:              id,
		UserID:          userID,
		Name:            req.Name,
		PrimaryColor:    req.PrimaryColor,
		SecondaryColor:  req.SecondaryColor,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
		FontFamily:      req.FontFamily,
		ButtonStyle:     req.ButtonStyle,
	}
	if err := s.Themes.Update(ctx, theme); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("theme", id)
		}
		return nil, err
	}
	return theme, nil
}

// SetDefault делает тему темой по умолчанию, снимая флаг с прежней.
func (s *ThemeService) SetDefault(ctx context.Context, userID, id string) error {
	err := s.Themes.SetDefault(ctx, userID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound("theme", id)
	}
	return err
}
