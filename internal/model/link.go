package model

import "time"

// Link — одна кликабельная ссылка на странице пользователя.
// Position задаёт порядок отображения, Clicks — денормализованный счётчик
// кликов (кэш над таблицей click_events, сверяется реконсиляцией).
type Link struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	URL         string    `json:"url" db:"url"`
	Description string    `json:"description,omitempty" db:"description"`
	Icon        string    `json:"icon,omitempty" db:"icon"`
	Position    int       `json:"order" db:"position"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	Clicks      int64     `json:"clicks" db:"clicks"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// LinkRequest — тело запроса на создание или изменение ссылки.
type LinkRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// ReorderRequest — новый порядок ссылок пользователя (все ID, по возрастанию позиции).
type ReorderRequest struct {
	LinkIDs []string `json:"link_ids"`
}
