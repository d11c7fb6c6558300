package service

import (
	"context"

	"github.com/Totarae/LinkInBio/internal/apperror"
	"github.com/Totarae/LinkInBio/internal/model"
	"github.com/Totarae/LinkInBio/internal/repositories"
	"go.uber.org/zap"
)

// ProfileService собирает агрегат публичной страницы.
type ProfileService struct {
	Users  repositories.UserRepositoryInterface
	Links  repositories.LinkRepositoryInterface
	Themes repositories.ThemeRepositoryInterface
	Logger *zap.Logger
}

// NewProfileService создаёт ProfileService.
func NewProfileService(users repositories.UserRepositoryInterface, links repositories.LinkRepositoryInterface, themes repositories.ThemeRepositoryInterface, logger *zap.Logger) *ProfileService {
	return &ProfileService{Users: users, Links: links, Themes: themes, Logger: logger}
}

// GetProfile возвращает пользователя, его активные ссылки по возрастанию
// позиции и действующую тему.
//
// Неизвестный username — ErrNotFound. Пользователь без ссылок — пустой
// список, не ошибка. Пользователь без темы по умолчанию получает
// системную тему model.DefaultTheme.
func (s *ProfileService) GetProfile(ctx context.Context, username string) (*model.Profile, error) {
	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		s.Logger.Error("Не удалось прочитать пользователя", zap.Error(err))
		return nil, apperror.Upstream("database", err)
	}
	if user == nil {
		return nil, apperror.NotFound("user", username)
	}

	links, err := s.Links.GetActiveByUserID(ctx, user.ID)
	if err != nil {
		s.Logger.Error("Не удалось прочитать ссылки", zap.Error(err))
		return nil, apperror.Upstream("database", err)
	}

	theme, err := s.Themes.GetDefault(ctx, user.ID)
	if err != nil {
		s.Logger.Error("Не удалось прочитать тему", zap.Error(err))
		return nil, apperror.Upstream("database", err)
	}
	if theme == nil {
		theme = model.DefaultTheme()
		theme.UserID = user.ID
	}

	return &model.Profile{User: user, Links: links, Theme: theme}, nil
}

// UpdateProfile сохраняет правки профиля текущего пользователя.
// Первый вход создаёт строку профиля: учётная запись уже существует
// у провайдера, локально нужен только профиль.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID, email string, req *model.ProfileRequest) (*model.User, error) {
	user := &model.User{
		ID:        userID,
		Email:     email,
		Username:  req.Username,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	}
	if err := s.Users.Upsert(ctx, user); err != nil {
		return nil, apperror.Upstream("database", err)
	}
	return s.Users.GetByID(ctx, userID)
}
