package model

import "time"

// ButtonStyle — форма кнопок на публичной странице.
type ButtonStyle string

const (
	ButtonRounded ButtonStyle = "rounded"
	ButtonSquare  ButtonStyle = "square"
	ButtonPill    ButtonStyle = "pill"
)

// Valid проверяет, что стиль кнопки входит в допустимый набор.
func (b ButtonStyle) Valid() bool {
	switch b {
	case ButtonRounded, ButtonSquare, ButtonPill:
		return true
	}
	return false
}

// Theme — именованный набор визуальных настроек страницы.
// У пользователя не более одной темы с IsDefault = true.
type Theme struct {
	ID              string      `json:"id" db:"id"`
	UserID          string      `json:"user_id" db:"user_id"`
	Name            string      `json:"name" db:"name"`
	PrimaryColor    string      `json:"primary_color" db:"primary_color"`
	SecondaryColor  string      `json:"secondary_color" db:"secondary_color"`
	BackgroundColor string      `json:"background_color" db:"background_color"`
	TextColor       string      `json:"text_color" db:"text_color"`
	FontFamily      string      `json:"font_family" db:"font_family"`
	ButtonStyle     ButtonStyle `json:"button_style" db:"button_style"`
	IsDefault       bool        `json:"is_default" db:"is_default"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
}

// DefaultTheme возвращает системную тему. Она отдаётся в профиле, когда
// пользователь не пометил ни одну свою тему как тему по умолчанию.
func DefaultTheme() *Theme {
	return &Theme{
		Name:            "system",
		PrimaryColor:    "#1a1a2e",
		SecondaryColor:  "#16213e",
		BackgroundColor: "#ffffff",
		TextColor:       "#1a1a2e",
		FontFamily:      "Inter",
		ButtonStyle:     ButtonRounded,
	}
}

// ThemeRequest — тело запроса на создание или изменение темы.
type ThemeRequest struct {
	Name            string      `json:"name"`
	PrimaryColor    string      `json:"primary_color"`
	SecondaryColor  string      `json:"secondary_color"`
	BackgroundColor string      `json:"background_color"`
	TextColor       string      `json:"text_color"`
	FontFamily      string      `json:"font_family"`
	ButtonStyle     ButtonStyle `json:"button_style"`
}
