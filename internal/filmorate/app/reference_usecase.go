package app

import (
	"context"
	"fmt"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/ports/api"
	"filmorate/internal/filmorate/ports/repositories"
)

const (
	errCtxListingGenres = "listing genres"
	errCtxFetchingGenre = "fetching genre"
	errCtxListingMpa    = "listing mpa ratings"
	errCtxFetchingMpa   = "fetching mpa rating"
)

// ReferenceUseCaseImpl отдает справочники жанров и рейтингов MPA.
type ReferenceUseCaseImpl struct {
	genreRepo repositories.GenreRepository
	mpaRepo   repositories.MpaRepository
}

// NewReferenceUseCase создает сервис справочников.
func NewReferenceUseCase(genreRepo repositories.GenreRepository, mpaRepo repositories.MpaRepository) api.ReferenceUseCase {
	return &ReferenceUseCaseImpl{genreRepo: genreRepo, mpaRepo: mpaRepo}
}

func (u *ReferenceUseCaseImpl) ListGenres(ctx context.Context) ([]*entities.Genre, error) {
	genres, err := u.genreRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingGenres, err)
	}
	return genres, nil
}

func (u *ReferenceUseCaseImpl) GetGenre(ctx context.Context, id int64) (*entities.Genre, error) {
	genre, err := u.genreRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingGenre, err)
	}
	return genre, nil
}

func (u *ReferenceUseCaseImpl) ListMpa(ctx context.Context) ([]*entities.Mpa, error) {
	ratings, err := u.mpaRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingMpa, err)
	}
	return ratings, nil
}

func (u *ReferenceUseCaseImpl) GetMpa(ctx context.Context, id int64) (*entities.Mpa, error) {
	mpa, err := u.mpaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingMpa, err)
	}
	return mpa, nil
}
