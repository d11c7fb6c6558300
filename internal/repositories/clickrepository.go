package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Totarae/LinkInBio/internal/database"
	"github.com/Totarae/LinkInBio/internal/model"
)

// ClickRepositoryInterface определяет методы журнала кликов.
// Журнал append-only: записи никогда не изменяются и не удаляются
// (кроме каскадного удаления вместе со ссылкой).
type ClickRepositoryInterface interface {
	Insert(ctx context.Context, event *model.ClickEvent) error
	CountByLink(ctx context.Context, linkID string) (int64, error)
	Stats(ctx context.Context, linkID string, days int) (*model.LinkStats, error)
}

// ClickRepository реализует ClickRepositoryInterface поверх PostgreSQL.
type ClickRepository struct {
	DB database.DBInterface
}

// NewClickRepository создаёт новый экземпляр ClickRepository.
func NewClickRepository(db database.DBInterface) *ClickRepository {
	return &ClickRepository{DB: db}
}

// Insert добавляет одну запись о клике. Момент клика фиксируется здесь,
// на вставке. Нарушение внешнего ключа (неизвестная ссылка) — ошибка,
// классификацией занимается сервисный слой.
func (r *ClickRepository) Insert(ctx context.Context, event *model.ClickEvent) error {
	if event.ClickedAt.IsZero() {
		event.ClickedAt = time.Now()
	}
	query := `INSERT INTO click_events (id, link_id, clicked_at, ip_address, user_agent, referrer, country, city, device_type)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, query,
		event.ID, event.LinkID, event.ClickedAt, event.IPAddress, event.UserAgent,
		event.Referrer, event.Country, event.City, event.DeviceType)
	if err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// CountByLink возвращает число событий клика по ссылке.
func (r *ClickRepository) CountByLink(ctx context.Context, linkID string) (int64, error) {
	var count int64
	err := r.DB.(*database.DB).Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM click_events WHERE link_id = $1`, linkID).Scan(&count)
	return count, err
}

// Stats собирает агрегаты по ссылке: всего, по устройствам, по странам
// и посуточный ряд за последние days дней.
func (r *ClickRepository) Stats(ctx context.Context, linkID string, days int) (*model.LinkStats, error) {
	pool := r.DB.(*database.DB).Pool
	stats := &model.LinkStats{
		ByDevice:  make(map[string]int64),
		ByCountry: make(map[string]int64),
		Daily:     make([]model.DailyClicks, 0),
	}

	if err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM click_events WHERE link_id = $1`, linkID).Scan(&stats.TotalClicks); err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	rows, err := pool.Query(ctx,
		`SELECT device_type, COUNT(*) FROM click_events
         WHERE link_id = $1 AND device_type <> '' GROUP BY device_type`, linkID)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var device string
		var count int64
		if err := rows.Scan(&device, &count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		stats.ByDevice[device] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = pool.Query(ctx,
		`SELECT country, COUNT(*) FROM click_events
         WHERE link_id = $1 AND country <> '' GROUP BY country`, linkID)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var country string
		var count int64
		if err := rows.Scan(&country, &count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		stats.ByCountry[country] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = pool.Query(ctx,
		`SELECT to_char(clicked_at::date, 'YYYY-MM-DD'), COUNT(*)
         FROM click_events
         WHERE link_id = $1 AND clicked_at >= now() - make_interval(days => $2)
         GROUP BY clicked_at::date ORDER BY clicked_at::date`, linkID, days)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var day model.DailyClicks
		if err := rows.Scan(&day.Date, &day.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		stats.Daily = append(stats.Daily, day)
	}
	return stats, rows.Err()
}
