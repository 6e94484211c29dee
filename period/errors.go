// Package period — errors.go определяет ошибки пакета.
// Все ошибки — сентинелы, проверять их нужно через errors.Is.
package period

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок
var (
	// ErrInvalidArgument — вызывающий передал недопустимое значение
	ErrInvalidArgument = errors.New("некорректный аргумент")
	// ErrMalformedDuration — строка не является интервалом ISO 8601
	ErrMalformedDuration = errors.New("некорректная строка интервала")
)

// Конкретные причины ErrInvalidArgument
var (
	// ErrEmptyInterval — пустая строка интервала
	ErrEmptyInterval = fmt.Errorf("%w: строка интервала не может быть пустой", ErrInvalidArgument)
	// ErrNegativeCount — отрицательное количество периодов
	ErrNegativeCount = fmt.Errorf("%w: количество периодов должно быть неотрицательным целым числом", ErrInvalidArgument)
	// ErrUnknownUnit — неизвестный тип периода
	ErrUnknownUnit = fmt.Errorf("%w: неверный тип периода", ErrInvalidArgument)
)

// malformed оборачивает ошибку парсера так, чтобы срабатывали оба errors.Is:
// и ErrMalformedDuration, и исходная ошибка.
func malformed(s string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}
	return fmt.Errorf("%w: %q: %w", ErrMalformedDuration, s, cause)
}
