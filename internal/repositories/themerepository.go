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

// ThemeRepositoryInterface определяет методы хранилища тем.
type ThemeRepositoryInterface interface {
	Save(ctx context.Context, theme *model.Theme) error
	Update(ctx context.Context, theme *model.Theme) error
	GetByUserID(ctx context.Context, userID string) ([]*model.Theme, error)
	GetDefault(ctx context.Context, userID string) (*model.Theme, error)
	SetDefault(ctx context.Context, userID, themeID string) error
}

// ThemeRepository реализует ThemeRepositoryInterface поверх PostgreSQL.
type ThemeRepository struct {
	DB database.DBInterface
}

// NewThemeRepository создаёт новый экземпляр ThemeRepository.
func NewThemeRepository(db database.DBInterface) *ThemeRepository {
	return &ThemeRepository{DB: db}
}

const themeColumns = `id, user_id, name, primary_color, secondary_color, background_color,
                      text_color, font_family, button_style, is_default, created_at, updated_at`

// Save сохраняет новую тему.
func (r *ThemeRepository) Save(ctx context.Context, theme *model.Theme) error {
	query := `INSERT INTO themes (id, user_id, name, primary_color, secondary_color, background_color,
                                  text_color, font_family, button_style, is_default, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, query,
		theme.ID, theme.UserID, theme.Name, theme.PrimaryColor, theme.SecondaryColor,
		theme.BackgroundColor, theme.TextColor, theme.FontFamily, theme.ButtonStyle,
		theme.IsDefault, time.Now())
	if err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// Update обновляет тему в границах владельца.
func (r *ThemeRepository) Update(ctx context.Context, theme *model.Theme) error {
	query := `UPDATE themes
              SET name = $1, primary_color = $2, secondary_color = $3, background_color = $4,
                  text_color = $5, font_family = $6, button_style = $7, updated_at = $8
              WHERE id = $9 AND user_id = $10`
	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, query,
		theme.Name, theme.PrimaryColor, theme.SecondaryColor, theme.BackgroundColor,
		theme.TextColor, theme.FontFamily, theme.ButtonStyle, time.Now(),
		theme.ID, theme.UserID)
	if err != nil {
		return fmt.Errorf("database update error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetByUserID возвращает все темы пользователя.
func (r *ThemeRepository) GetByUserID(ctx context.Context, userID string) ([]*model.Theme, error) {
	query := `SELECT ` + themeColumns + ` FROM themes WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.DB.(*database.DB).Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query themes: %w", err)
	}
	defer rows.Close()

	results := make([]*model.Theme, 0)
	for rows.Next() {
		theme := &model.Theme{}
		err := rows.Scan(
			&theme.ID, &theme.UserID, &theme.Name, &theme.PrimaryColor, &theme.SecondaryColor,
			&theme.BackgroundColor, &theme.TextColor, &theme.FontFamily, &theme.ButtonStyle,
			&theme.IsDefault, &theme.CreatedAt, &theme.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, theme)
	}
	return results, rows.Err()
}

// GetDefault возвращает тему пользователя с is_default = true.
// Отсутствие такой темы — (nil, nil), fallback решает сервисный слой.
func (r *ThemeRepository) GetDefault(ctx context.Context, userID string) (*model.Theme, error) {
	query := `SELECT ` + themeColumns + ` FROM themes WHERE user_id = $1 AND is_default`
	theme := &model.Theme{}
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query, userID).Scan(
		&theme.ID, &theme.UserID, &theme.Name, &theme.PrimaryColor, &theme.SecondaryColor,
		&theme.BackgroundColor, &theme.TextColor, &theme.FontFamily, &theme.ButtonStyle,
		&theme.IsDefault, &theme.CreatedAt, &theme.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return theme, nil
}

// SetDefault включает тему как тему по умолчанию.
// Эксклюзивный переключатель: в одной транзакции снимаем прежний
// default и ставим новый, частичный индекс страхует инвариант.
func (r *ThemeRepository) SetDefault(ctx context.Context, userID, themeID string) error {
	tx, err := r.DB.(*database.DB).Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE themes SET is_default = FALSE, updated_at = $1 WHERE user_id = $2 AND is_default`,
		time.Now(), userID); err != nil {
		return fmt.Errorf("failed to clear default theme: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE themes SET is_default = TRUE, updated_at = $1 WHERE id = $2 AND user_id = $3`,
		time.Now(), themeID, userID)
	if err != nil {
		return fmt.Errorf("failed to set default theme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}
