// Package apperror задаёт классы ошибок приложения.
// Обработчики HTTP сопоставляют их со статусами, всё остальное
// наружу уходит как обезличенная внутренняя ошибка.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized — нет валидной сессии на защищённом чтении.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound — запрошенная сущность отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrRecord — сбой записи аналитики; не фатален для вызывающего.
	ErrRecord = errors.New("record error")
	// ErrUpstream — БД или провайдер аутентификации недоступны.
	ErrUpstream = errors.New("upstream error")
)

// NotFound оборачивает ErrNotFound с указанием ресурса и идентификатора.
func NotFound(resource, id string) error {
	return fmt.Errorf("%s %q: %w", resource, id, ErrNotFound)
}

// Record оборачивает причину сбоя записи аналитики.
func Record(err error) error {
	return fmt.Errorf("%w: %v", ErrRecord, err)
}

// Upstream оборачивает ошибку внешней системы.
func Upstream(system string, err error) error {
	return fmt.Errorf("%s: %w: %v", system, ErrUpstream, err)
}
