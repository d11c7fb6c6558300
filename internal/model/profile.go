package model

// Profile — агрегат для рендера публичной страницы:
// пользователь, его активные ссылки в заданном порядке и действующая тема.
type Profile struct {
	User  *User   `json:"user"`
	Links []*Link `json:"links"`
	Theme *Theme  `json:"theme"`
}

// ProfileRequest — тело запроса на изменение профиля.
type ProfileRequest struct {
	Username  string `json:"username"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// LinkStats — агрегированная статистика кликов по одной ссылке.
type LinkStats struct {
	TotalClicks int64            `json:"total_clicks"`
	ByDevice    map[string]int64 `json:"by_device"`
	ByCountry   map[string]int64 `json:"by_country"`
	Daily       []DailyClicks    `json:"daily"`
}

// DailyClicks — количество кликов за одни сутки.
type DailyClicks struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}
