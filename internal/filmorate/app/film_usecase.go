package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/domain/services"
	"filmorate/internal/filmorate/ports/api"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

const (
	methodAddFilm    = "AddFilm"
	methodUpdateFilm = "UpdateFilm"
	methodGetFilm    = "GetFilm"
	methodListFilms  = "ListFilms"
	methodGetPopular = "GetPopular"

	msgAddingFilm       = "adding film"
	msgFilmAdded        = "film added"
	msgUpdatingFilm     = "updating film"
	msgFilmUpdated      = "film updated"
	msgFilmInvalid      = "film failed validation"
	msgRequestedPopular = "requesting popular films"

	msgErrStoringFilm = "failed to store film"

	errCtxFetchingFilm   = "fetching film"
	errCtxListingFilms   = "listing films"
	errCtxValidatingFilm = "validating film"
	errCtxStoringFilm    = "storing film"
	errCtxRankingFilms   = "ranking films"
)

// FilmUseCaseImpl реализует интерфейс FilmUseCase.
type FilmUseCaseImpl struct {
	filmRepo  repositories.FilmRepository
	validator *services.Validator
	resolver  *ReferenceResolver
	likes     *LikeRegistry
	ranker    *PopularityRanker
}

// NewFilmUseCase создает новый экземпляр сервиса фильмов.
func NewFilmUseCase(
	filmRepo repositories.FilmRepository,
	validator *services.Validator,
	resolver *ReferenceResolver,
	likes *LikeRegistry,
	ranker *PopularityRanker,
) api.FilmUseCase {
	return &FilmUseCaseImpl{
		filmRepo:  filmRepo,
		validator: validator,
		resolver:  resolver,
		likes:     likes,
		ranker:    ranker,
	}
}

// AddFilm проверяет фильм, подставляет справочные данные и сохраняет его.
func (u *FilmUseCaseImpl) AddFilm(ctx context.Context, film *entities.Film) (*entities.Film, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAddFilm))
	log.Debug(ctx, msgAddingFilm, zap.String("name", film.Name))

	prepared, err := u.prepare(ctx, log, film)
	if err != nil {
		return nil, err
	}

	created, err := u.filmRepo.Create(ctx, prepared)
	if err != nil {
		log.Error(ctx, msgErrStoringFilm, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxStoringFilm, err)
	}
	u.ranker.Invalidate(ctx)

	log.Info(ctx, msgFilmAdded, zap.Int64("film_id", created.ID))
	return present(created), nil
}

// UpdateFilm заменяет все поля существующего фильма, кроме ID.
func (u *FilmUseCaseImpl) UpdateFilm(ctx context.Context, film *entities.Film) (*entities.Film, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateFilm), zap.Int64("film_id", film.ID))
	log.Debug(ctx, msgUpdatingFilm)

	if _, err := u.filmRepo.FindByID(ctx, film.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingFilm, err)
	}

	prepared, err := u.prepare(ctx, log, film)
	if err != nil {
		return nil, err
	}

	updated, err := u.filmRepo.Update(ctx, prepared)
	if err != nil {
		log.Error(ctx, msgErrStoringFilm, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxStoringFilm, err)
	}
	u.ranker.Invalidate(ctx)

	log.Info(ctx, msgFilmUpdated)
	return present(updated), nil
}

// GetFilm возвращает фильм по ID.
func (u *FilmUseCaseImpl) GetFilm(ctx context.Context, id int64) (*entities.Film, error) {
	logger.Log(ctx).Debug(ctx, methodGetFilm, zap.Int64("film_id", id))

	film, err := u.filmRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingFilm, err)
	}
	return present(film), nil
}

// ListFilms возвращает все фильмы.
func (u *FilmUseCaseImpl) ListFilms(ctx context.Context) ([]*entities.Film, error) {
	logger.Log(ctx).Debug(ctx, methodListFilms)

	films, err := u.filmRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingFilms, err)
	}
	return presentAll(films), nil
}

// AddLike ставит лайк фильму от пользователя.
func (u *FilmUseCaseImpl) AddLike(ctx context.Context, filmID, userID int64) error {
	if err := u.likes.AddLike(ctx, filmID, userID); err != nil {
		return fmt.Errorf("%s: %w", errCtxAddingLike, err)
	}
	u.ranker.Invalidate(ctx)
	return nil
}

// RemoveLike снимает лайк пользователя.
func (u *FilmUseCaseImpl) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if err := u.likes.RemoveLike(ctx, filmID, userID); err != nil {
		return fmt.Errorf("%s: %w", errCtxRemovingLike, err)
	}
	u.ranker.Invalidate(ctx)
	return nil
}

// CountLikes возвращает число лайков фильма.
func (u *FilmUseCaseImpl) CountLikes(ctx context.Context, filmID int64) (int, error) {
	return u.likes.CountLikes(ctx, filmID)
}

// GetPopular возвращает count самых популярных фильмов.
func (u *FilmUseCaseImpl) GetPopular(ctx context.Context, count int) ([]*entities.Film, error) {
	logger.Log(ctx).Debug(ctx, msgRequestedPopular, zap.String("method", methodGetPopular), zap.Int("count", count))

	films, err := u.ranker.TopFilms(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxRankingFilms, err)
	}
	return presentAll(films), nil
}

func (u *FilmUseCaseImpl) prepare(ctx context.Context, log *logger.Logger, film *entities.Film) (*entities.Film, error) {
	if err := u.validator.ValidateFilm(film); err != nil {
		log.Debug(ctx, msgFilmInvalid, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingFilm, err)
	}

	resolved, err := u.resolver.Resolve(ctx, film)
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// present приводит фильм к виду для выдачи: жанры по возрастанию ID.
func present(film *entities.Film) *entities.Film {
	out := film.Clone()
	out.SortGenres()
	if out.Genres == nil {
		out.Genres = []entities.Genre{}
	}
	return out
}

func presentAll(films []*entities.Film) []*entities.Film {
	out := make([]*entities.Film, 0, len(films))
	for _, f := range films {
		out = append(out, present(f))
	}
	return out
}
