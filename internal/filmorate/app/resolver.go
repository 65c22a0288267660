package app

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

const (
	methodResolve = "Resolve"

	msgReferenceMissing = "film references unknown reference data"

	errCtxResolvingMpa   = "resolving mpa rating"
	errCtxResolvingGenre = "resolving genre"
)

// ReferenceResolver подставляет в фильм полные записи рейтинга и жанров.
type ReferenceResolver struct {
	genreRepo repositories.GenreRepository
	mpaRepo   repositories.MpaRepository
}

// NewReferenceResolver создает ReferenceResolver.
func NewReferenceResolver(genreRepo repositories.GenreRepository, mpaRepo repositories.MpaRepository) *ReferenceResolver {
	return &ReferenceResolver{genreRepo: genreRepo, mpaRepo: mpaRepo}
}

// Resolve возвращает копию фильма с загруженными рейтингом и жанрами.
// Повторяющиеся жанры удаляются, порядок первых вхождений сохраняется.
func (r *ReferenceResolver) Resolve(ctx context.Context, film *entities.Film) (*entities.Film, error) {
	log := logger.Log(ctx).With(zap.String("method", methodResolve))

	resolved := film.Clone()

	mpa, err := r.mpaRepo.FindByID(ctx, film.Mpa.ID)
	if err != nil {
		log.Debug(ctx, msgReferenceMissing, zap.Int64("mpa_id", film.Mpa.ID), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxResolvingMpa, err)
	}
	resolved.Mpa = *mpa

	unique := lo.UniqBy(film.Genres, func(g entities.Genre) int64 { return g.ID })
	resolved.Genres = make([]entities.Genre, 0, len(unique))
	for _, g := range unique {
		genre, err := r.genreRepo.FindByID(ctx, g.ID)
		if err != nil {
			log.Debug(ctx, msgReferenceMissing, zap.Int64("genre_id", g.ID), zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxResolvingGenre, err)
		}
		resolved.Genres = append(resolved.Genres, *genre)
	}

	return resolved, nil
}
