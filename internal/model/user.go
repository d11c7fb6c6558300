package model

import "time"

// User представляет владельца публичной страницы со ссылками.
// Учётные данные (пароль, сброс пароля) живут у внешнего провайдера
// аутентификации, здесь хранится только профиль.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Username  string    `json:"username" db:"username"`
	FullName  string    `json:"full_name,omitempty" db:"full_name"`
	AvatarURL string    `json:"avatar_url,omitempty" db:"avatar_url"`
	Bio       string    `json:"bio,omitempty" db:"bio"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
