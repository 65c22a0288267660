// Package api описывает операции, доступные транспортному слою.
package api

import (
	"context"

	"filmorate/internal/filmorate/domain/entities"
)

// FilmUseCase - операции над фильмами и лайками.
type FilmUseCase interface {
	AddFilm(ctx context.Context, film *entities.Film) (*entities.Film, error)
	UpdateFilm(ctx context.Context, film *entities.Film) (*entities.Film, error)
	GetFilm(ctx context.Context, id int64) (*entities.Film, error)
	ListFilms(ctx context.Context) ([]*entities.Film, error)

	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error
	CountLikes(ctx context.Context, filmID int64) (int, error)
	GetPopular(ctx context.Context, count int) ([]*entities.Film, error)
}
