package service

import (
	"context"
	"errors"

	"github.com/Totarae/LinkInBio/internal/apperror"
	"github.com/Totarae/LinkInBio/internal/model"
	"github.com/Totarae/LinkInBio/internal/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// LinkService — операции владельца над его ссылками.
type LinkService struct {
	Links  repositories.LinkRepositoryInterface
	Clicks repositories.ClickRepositoryInterface
	Logger *zap.Logger
}

// NewLinkService создаёт LinkService.
func NewLinkService(links repositories.LinkRepositoryInterface, clicks repositories.ClickRepositoryInterface, logger *zap.Logger) *LinkService {
	return &LinkService{Links: links, Clicks: clicks, Logger: logger}
}

// List возвращает все ссылки пользователя для дашборда, включая счётчики.
func (s *LinkService) List(ctx context.Context, userID string) ([]*model.Link, error) {
	return s.Links.GetByUserID(ctx, userID)
}

// Create добавляет ссылку в конец списка пользователя.
func (s *LinkService) Create(ctx context.Context, userID string, req *model.LinkRequest) (*model.Link, error) {
	link := &model.Link{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}
	if err := s.Links.Save(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// Update изменяет ссылку. Чужая или несуществующая ссылка — ErrNotFound:
// существование чужих ссылок владельцу не раскрываем.
func (s *LinkService) Update(ctx context.Context, userID, id string, req *model.LinkRequest) (*model.Link, error) {
	link, err := s.Links.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil || link.UserID != userID {
		return nil, apperror.NotFound("link", id)
	}

	link.Title = req.Title
	link.URL = req.URL
	link.Description = req.Description
	link.Icon = req.Icon
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}

	if err := s.Links.Update(ctx, link); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("link", id)
		}
		return nil, err
	}
	return link, nil
}

// Delete удаляет ссылку пользователя вместе с журналом её кликов.
func (s *LinkService) Delete(ctx context.Context, userID, id string) error {
	err := s.Links.Delete(ctx, id, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound("link", id)
	}
	return err
}

// Reorder применяет новый порядок ссылок пользователя.
func (s *LinkService) Reorder(ctx context.Context, userID string, ids []string) error {
	return s.Links.Reorder(ctx, userID, ids)
}

// Stats возвращает агрегаты кликов по ссылке владельца за days дней.
func (s *LinkService) Stats(ctx context.Context, userID, id string, days int) (*model.LinkStats, error) {
	link, err := s.Links.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil || link.UserID != userID {
		return nil, apperror.NotFound("link", id)
	}
	return s.Clicks.Stats(ctx, id, days)
}
