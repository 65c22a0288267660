package entities

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок домена. Конкретные ошибки оборачивают их,
// поэтому транспорт может проверять вид через errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("entity not found")
)

// Kind - вид сущности, на которую ссылается ошибка.
type Kind string

const (
	KindFilm  Kind = "film"
	KindUser  Kind = "user"
	KindGenre Kind = "genre"
	KindMpa   Kind = "mpa"
)

// ValidationError описывает нарушенное правило поля.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError создает ошибку валидации поля.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NotFoundError указывает на отсутствующую сущность.
type NotFoundError struct {
	Kind Kind
	ID   int64
}

// NewNotFoundError создает ошибку отсутствия сущности kind с идентификатором id.
func NewNotFoundError(kind Kind, id int64) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id=%d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
