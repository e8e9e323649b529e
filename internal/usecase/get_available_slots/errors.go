package get_available_slots

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimezone возвращается, когда у бизнеса настроена
	// нераспознаваемая таймзона. Жесткая ошибка: молчаливый откат на UTC
	// скрыл бы гниение конфигурации
	ErrInvalidTimezone = errors.New("invalid business timezone")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
