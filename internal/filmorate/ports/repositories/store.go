// Package repositories описывает порты хранилищ сущностей и связей.
package repositories

import (
	"context"

	"filmorate/internal/filmorate/domain/entities"
)

// EntityStore - контракт хранилища сущностей с целочисленным идентификатором.
// FindByID возвращает *entities.NotFoundError, если записи нет.
type EntityStore[T any] interface {
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, entity *T) (*T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
}

// ReferenceStore - хранилище справочных данных, доступное только на чтение.
type ReferenceStore[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
}

// FilmRepository хранит фильмы вместе с их жанрами.
type FilmRepository interface {
	EntityStore[entities.Film]
}

// UserRepository хранит пользователей.
type UserRepository interface {
	EntityStore[entities.User]
}

// GenreRepository отдает справочник жанров.
type GenreRepository interface {
	ReferenceStore[entities.Genre]
}

// MpaRepository отдает справочник рейтингов MPA.
type MpaRepository interface {
	ReferenceStore[entities.Mpa]
}
