package api

import (
	"context"

	"filmorate/internal/filmorate/domain/entities"
)

// ReferenceUseCase отдает справочники жанров и рейтингов.
type ReferenceUseCase interface {
	ListGenres(ctx context.Context) ([]*entities.Genre, error)
	GetGenre(ctx context.Context, id int64) (*entities.Genre, error)
	ListMpa(ctx context.Context) ([]*entities.Mpa, error)
	GetMpa(ctx context.Context, id int64) (*entities.Mpa, error)
}
