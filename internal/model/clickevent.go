package model

import "time"

// Типы устройств, определяемые по User-Agent либо присланные клиентом.
const (
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceDesktop = "desktop"
)

// ClickEvent — неизменяемая запись об одном клике по ссылке.
// Создаётся ровно один раз, никогда не обновляется и не удаляется.
type ClickEvent struct {
	ID         string    `json:"id" db:"id"`
	LinkID     string    `json:"link_id" db:"link_id"`
	ClickedAt  time.Time `json:"clicked_at" db:"clicked_at"`
	IPAddress  string    `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent  string    `json:"user_agent,omitempty" db:"user_agent"`
	Referrer   string    `json:"referrer,omitempty" db:"referrer"`
	Country    string    `json:"country,omitempty" db:"country"`
	City       string    `json:"city,omitempty" db:"city"`
	DeviceType string    `json:"device_type,omitempty" db:"device_type"`
}

// TrackClickRequest — необязательный контекст клика от клиента.
// Значения свободной формы, по содержимому не валидируются.
type TrackClickRequest struct {
	Country string `json:"country,omitempty"`
	Device  string `json:"device,omitempty"`
}

// TrackClickResponse — контракт ответа трекинга: строго два поля.
// Сбой записи аналитики не должен ломать страницу, поэтому ошибка
// сообщается флагом, а не HTTP-статусом.
type TrackClickResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
