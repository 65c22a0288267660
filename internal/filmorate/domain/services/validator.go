// Package services содержит доменные правила, не зависящие от хранилища.
package services

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"filmorate/internal/filmorate/domain/entities"
)

// MaxDescriptionLength - максимальная длина описания фильма в символах.
const MaxDescriptionLength = 200

// EarliestReleaseDate - дата первого публичного киносеанса.
var EarliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// Поля, на которые ссылаются ошибки валидации.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldReleaseDate = "releaseDate"
	FieldDuration    = "duration"
	FieldMpa         = "mpa"
	FieldEmail       = "email"
	FieldLogin       = "login"
	FieldBirthday    = "birthday"
)

// Validator проверяет поля фильмов и пользователей.
// Правила проверяются по порядку, возвращается первая ошибка.
type Validator struct {
	now func() time.Time
}

// NewValidator создает Validator. now задает текущее время; nil означает time.Now.
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// ValidateFilm проверяет фильм.
func (v *Validator) ValidateFilm(film *entities.Film) error {
	if strings.TrimSpace(film.Name) == "" {
		return entities.NewValidationError(FieldName, "film name must not be blank")
	}
	if utf8.RuneCountInString(film.Description) > MaxDescriptionLength {
		return entities.NewValidationError(FieldDescription, "film description must not exceed 200 characters")
	}
	if film.ReleaseDate.IsZero() {
		return entities.NewValidationError(FieldReleaseDate, "film release date is required")
	}
	if dateOnly(film.ReleaseDate).Before(EarliestReleaseDate) {
		return entities.NewValidationError(FieldReleaseDate, "film release date must not be before 1895-12-28")
	}
	if film.Duration <= 0 {
		return entities.NewValidationError(FieldDuration, "film duration must be positive")
	}
	if film.Mpa.ID <= 0 {
		return entities.NewValidationError(FieldMpa, "film mpa rating is required")
	}
	return nil
}

// ValidateUser проверяет пользователя. Дата рождения обязательна
// и сравнивается с текущей датой по UTC.
func (v *Validator) ValidateUser(user *entities.User) error {
	if strings.TrimSpace(user.Email) == "" || !strings.Contains(user.Email, "@") {
		return entities.NewValidationError(FieldEmail, "user email must be non-blank and contain '@'")
	}
	if strings.TrimSpace(user.Login) == "" || strings.ContainsFunc(user.Login, unicode.IsSpace) {
		return entities.NewValidationError(FieldLogin, "user login must be non-blank and contain no whitespace")
	}
	if user.Birthday.IsZero() {
		return entities.NewValidationError(FieldBirthday, "user birthday is required")
	}
	if dateOnly(user.Birthday).After(dateOnly(v.now().UTC())) {
		return entities.NewValidationError(FieldBirthday, "user birthday must not be in the future")
	}
	return nil
}

// ApplyDefaultName подставляет логин вместо пустого имени.
func ApplyDefaultName(user *entities.User) {
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
