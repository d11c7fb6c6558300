package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Totarae/LinkInBio/internal/database"
	"github.com/Totarae/LinkInBio/internal/model"
	"github.com/jackc/pgx/v5"
)

// UserRepositoryInterface определяет методы работы с профилями пользователей.
type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Upsert(ctx context.Context, user *model.User) error
	Ping(ctx context.Context) error
}

// UserRepository реализует UserRepositoryInterface поверх PostgreSQL.
type UserRepository struct {
	DB database.DBInterface
}

// NewUserRepository создаёт новый экземпляр UserRepository.
func NewUserRepository(db database.DBInterface) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, email, username, full_name, avatar_url, bio, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.FullName,
		&user.AvatarURL, &user.Bio, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return user, nil
}

// GetByID возвращает пользователя по идентификатору. Отсутствие строки — (nil, nil).
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.DB.(*database.DB).Pool.QueryRow(ctx, query, id))
}

// GetByUsername возвращает пользователя по username. Отсутствие строки — (nil, nil).
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.DB.(*database.DB).Pool.QueryRow(ctx, query, username))
}

// Upsert создаёт профиль при первом входе либо обновляет существующий.
// Учётная запись живёт у провайдера, поэтому создание здесь — идемпотентное.
func (r *UserRepository) Upsert(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, email, username, full_name, avatar_url, bio, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
              ON CONFLICT (id) DO UPDATE
              SET username = EXCLUDED.username,
                  full_name = EXCLUDED.full_name,
                  avatar_url = EXCLUDED.avatar_url,
                  bio = EXCLUDED.bio,
                  updated_at = EXCLUDED.updated_at`
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, query,
		user.ID, user.Email, user.Username, user.FullName, user.AvatarURL, user.Bio, time.Now())
	if err != nil {
		return fmt.Errorf("database upsert error: %w", err)
	}
	return nil
}

// Ping проверяет доступность базы данных.
func (r *UserRepository) Ping(ctx context.Context) error {
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, "SELECT 1")
	return err
}
