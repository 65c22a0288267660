package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"filmorate/internal/filmorate/observability"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

const (
	methodAddLike    = "AddLike"
	methodRemoveLike = "RemoveLike"
	methodCountLikes = "CountLikes"

	msgLikeAdded   = "like added"
	msgLikeRemoved = "like removed"

	errCtxCheckingFilm = "checking film"
	errCtxCheckingUser = "checking user"
	errCtxAddingLike   = "adding like"
	errCtxRemovingLike = "removing like"
	errCtxCountingLike = "counting likes"
)

// LikeRegistry ведет множество лайков фильмов и проверяет, что фильм и пользователь существуют.
type LikeRegistry struct {
	filmRepo repositories.FilmRepository
	userRepo repositories.UserRepository
	likeRepo repositories.LikeRepository
}

// NewLikeRegistry создает LikeRegistry.
func NewLikeRegistry(
	filmRepo repositories.FilmRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
) *LikeRegistry {
	return &LikeRegistry{filmRepo: filmRepo, userRepo: userRepo, likeRepo: likeRepo}
}

// AddLike отмечает лайк пользователя. Повторный лайк ничего не меняет.
func (r *LikeRegistry) AddLike(ctx context.Context, filmID, userID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodAddLike),
		zap.Int64("film_id", filmID), zap.Int64("user_id", userID))

	if err := r.checkPair(ctx, filmID, userID); err != nil {
		return err
	}

	if err := r.likeRepo.Add(ctx, filmID, userID); err != nil {
		return fmt.Errorf("%s: %w", errCtxAddingLike, err)
	}

	observability.RelationMutations.WithLabelValues(observability.OperationLikeAdd).Inc()
	log.Info(ctx, msgLikeAdded)
	return nil
}

// RemoveLike снимает лайк. Отсутствующий лайк не является ошибкой.
func (r *LikeRegistry) RemoveLike(ctx context.Context, filmID, userID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodRemoveLike),
		zap.Int64("film_id", filmID), zap.Int64("user_id", userID))

	if err := r.checkPair(ctx, filmID, userID); err != nil {
		return err
	}

	if err := r.likeRepo.Remove(ctx, filmID, userID); err != nil {
		return fmt.Errorf("%s: %w", errCtxRemovingLike, err)
	}

	observability.RelationMutations.WithLabelValues(observability.OperationLikeRemove).Inc()
	log.Info(ctx, msgLikeRemoved)
	return nil
}

// CountLikes возвращает число лайков фильма.
func (r *LikeRegistry) CountLikes(ctx context.Context, filmID int64) (int, error) {
	logger.Log(ctx).Debug(ctx, methodCountLikes, zap.Int64("film_id", filmID))

	if _, err := r.filmRepo.FindByID(ctx, filmID); err != nil {
		return 0, fmt.Errorf("%s: %w", errCtxCheckingFilm, err)
	}

	count, err := r.likeRepo.Count(ctx, filmID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", errCtxCountingLike, err)
	}
	return count, nil
}

// checkPair проверяет пользователя, затем фильм.
func (r *LikeRegistry) checkPair(ctx context.Context, filmID, userID int64) error {
	if _, err := r.userRepo.FindByID(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if _, err := r.filmRepo.FindByID(ctx, filmID); err != nil {
		return fmt.Errorf("%s: %w", errCtxCheckingFilm, err)
	}
	return nil
}
