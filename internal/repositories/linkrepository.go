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

// LinkRepositoryInterface определяет методы хранилища ссылок.
type LinkRepositoryInterface interface {
	Save(ctx context.Context, link *model.Link) error
	GetByID(ctx context.Context, id string) (*model.Link, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.Link, error)
	GetActiveByUserID(ctx context.Context, userID string) ([]*model.Link, error)
	Update(ctx context.Context, link *model.Link) error
	Delete(ctx context.Context, id, userID string) error
	Reorder(ctx context.Context, userID string, ids []string) error
	IncrementClicks(ctx context.Context, id string) error
	ReconcileClicks(ctx context.Context) (int64, error)
}

// LinkRepository реализует LinkRepositoryInterface с использованием PostgreSQL.
type LinkRepository struct {
	DB database.DBInterface
}

// NewLinkRepository создаёт новый экземпляр LinkRepository.
func NewLinkRepository(db database.DBInterface) *LinkRepository {
	return &LinkRepository{DB: db}
}

const linkColumns = `id, user_id, title, url, description, icon, position, is_active, clicks, created_at, updated_at`

func scanLink(row pgx.Row) (*model.Link, error) {
	link := &model.Link{}
	err := row.Scan(
		&link.ID, &link.UserID, &link.Title, &link.URL, &link.Description,
		&link.Icon, &link.Position, &link.IsActive, &link.Clicks,
		&link.CreatedAt, &link.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return link, nil
}

// Save сохраняет новую ссылку, позиция — следующая за максимальной у пользователя.
func (r *LinkRepository) Save(ctx context.Context, link *model.Link) error {
	query := `INSERT INTO links (id, user_id, title, url, description, icon, position, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6,
                      (SELECT COALESCE(MAX(position) + 1, 0) FROM links WHERE user_id = $2),
                      $7, $8, $8)
              RETURNING position`
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query,
		link.ID, link.UserID, link.Title, link.URL, link.Description,
		link.Icon, link.IsActive, time.Now()).Scan(&link.Position)
	if err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// GetByID извлекает ссылку по идентификатору. Отсутствие строки — (nil, nil).
func (r *LinkRepository) GetByID(ctx context.Context, id string) (*model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE id = $1`
	return scanLink(r.DB.(*database.DB).Pool.QueryRow(ctx, query, id))
}

func (r *LinkRepository) queryLinks(ctx context.Context, query, userID string) ([]*model.Link, error) {
	rows, err := r.DB.(*database.DB).Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	results := make([]*model.Link, 0)
	for rows.Next() {
		link := &model.Link{}
		err := rows.Scan(
			&link.ID, &link.UserID, &link.Title, &link.URL, &link.Description,
			&link.Icon, &link.Position, &link.IsActive, &link.Clicks,
			&link.CreatedAt, &link.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, link)
	}
	return results, rows.Err()
}

// GetByUserID возвращает все ссылки пользователя по возрастанию позиции.
func (r *LinkRepository) GetByUserID(ctx context.Context, userID string) ([]*model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE user_id = $1 ORDER BY position ASC`
	return r.queryLinks(ctx, query, userID)
}

// GetActiveByUserID возвращает только активные ссылки — для публичной страницы.
func (r *LinkRepository) GetActiveByUserID(ctx context.Context, userID string) ([]*model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE user_id = $1 AND is_active ORDER BY position ASC`
	return r.queryLinks(ctx, query, userID)
}

// Update обновляет изменяемые поля ссылки в границах владельца.
func (r *LinkRepository) Update(ctx context.Context, link *model.Link) error {
	query := `UPDATE links
              SET title = $1, url = $2, description = $3, icon = $4, is_active = $5, updated_at = $6
              WHERE id = $7 AND user_id = $8`
	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, query,
		link.Title, link.URL, link.Description, link.Icon, link.IsActive,
		time.Now(), link.ID, link.UserID)
	if err != nil {
		return fmt.Errorf("database update error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete удаляет ссылку пользователя вместе с её событиями кликов.
func (r *LinkRepository) Delete(ctx context.Context, id, userID string) error {
	tx, err := r.DB.(*database.DB).Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM click_events WHERE link_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete click events: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM links WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return tx.Commit(ctx)
}

// Reorder выставляет позиции ссылок по порядку переданных идентификаторов.
// Чужие и неизвестные идентификаторы молча пропускаются условием user_id.
func (r *LinkRepository) Reorder(ctx context.Context, userID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := r.DB.(*database.DB).Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE links SET position = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`
	for i, id := range ids {
		if _, err := tx.Exec(ctx, query, i, time.Now(), id, userID); err != nil {
			return fmt.Errorf("failed to reorder links: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// IncrementClicks атомарно увеличивает счётчик кликов на единицу.
// Только относительный инкремент: читать-и-переписать нельзя,
// иначе конкурентные клики теряют обновления.
func (r *LinkRepository) IncrementClicks(ctx context.Context, id string) error {
	tag, err := r.DB.(*database.DB).Pool.Exec(ctx,
		`UPDATE links SET clicks = clicks + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("database update error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ReconcileClicks пересчитывает счётчики из журнала событий.
// Счётчик — кэш над click_events; возвращает число исправленных строк.
func (r *LinkRepository) ReconcileClicks(ctx context.Context) (int64, error) {
	query := `UPDATE links l
              SET clicks = COALESCE(e.cnt, 0)
              FROM links l2
              LEFT JOIN (SELECT link_id, COUNT(*) AS cnt FROM click_events GROUP BY link_id) e
                ON e.link_id = l2.id
              WHERE l.id = l2.id AND l.clicks <> COALESCE(e.cnt, 0)`
	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("database reconcile error: %w", err)
	}
	return tag.RowsAffected(), nil
}
