package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

// LikeRepository хранит лайки в таблице likes с первичным ключом (film_id, user_id).
type LikeRepository struct {
	pool PgxPoolInterface
}

// NewLikeRepository создает репозиторий лайков.
func NewLikeRepository(pool PgxPoolInterface) repositories.LikeRepository {
	return &LikeRepository{pool: pool}
}

func (r *LikeRepository) Add(ctx context.Context, filmID, userID int64) error {
	query := `
        INSERT INTO likes (film_id, user_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `
	if _, err := r.pool.Exec(ctx, query, filmID, userID); err != nil {
		logger.Log(ctx).Error(ctx, "error adding like", zap.Int64("film_id", filmID), zap.Int64("user_id", userID), zap.Error(err))
		return fmt.Errorf("error adding like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Remove(ctx context.Context, filmID, userID int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM likes WHERE film_id = $1 AND user_id = $2`, filmID, userID); err != nil {
		logger.Log(ctx).Error(ctx, "error removing like", zap.Int64("film_id", filmID), zap.Int64("user_id", userID), zap.Error(err))
		return fmt.Errorf("error removing like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Count(ctx context.Context, filmID int64) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM likes WHERE film_id = $1`, filmID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting likes: %w", err)
	}
	return count, nil
}

func (r *LikeRepository) Counts(ctx context.Context) (map[int64]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT film_id, COUNT(*) FROM likes GROUP BY film_id`)
	if err != nil {
		return nil, fmt.Errorf("error querying like counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var (
			filmID int64
			count  int
		)
		if err := rows.Scan(&filmID, &count); err != nil {
			return nil, fmt.Errorf("error scanning like count: %w", err)
		}
		counts[filmID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating like counts: %w", err)
	}
	return counts, nil
}

// FriendRepository хранит каждое ребро дружбы двумя строками таблицы friendships.
// Обе строки пишутся и удаляются одним запросом.
type FriendRepository struct {
	pool PgxPoolInterface
}

// NewFriendRepository создает репозиторий дружбы.
func NewFriendRepository(pool PgxPoolInterface) repositories.FriendRepository {
	return &FriendRepository{pool: pool}
}

func (r *FriendRepository) Add(ctx context.Context, userID, friendID int64) error {
	query := `
        INSERT INTO friendships (user_id, friend_id)
        VALUES ($1, $2), ($2, $1)
        ON CONFLICT DO NOTHING
    `
	if _, err := r.pool.Exec(ctx, query, userID, friendID); err != nil {
		logger.Log(ctx).Error(ctx, "error adding friendship", zap.Int64("user_id", userID), zap.Int64("friend_id", friendID), zap.Error(err))
		return fmt.Errorf("error adding friendship: %w", err)
	}
	return nil
}

func (r *FriendRepository) Remove(ctx context.Context, userID, friendID int64) error {
	query := `
        DELETE FROM friendships
        WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)
    `
	if _, err := r.pool.Exec(ctx, query, userID, friendID); err != nil {
		logger.Log(ctx).Error(ctx, "error removing friendship", zap.Int64("user_id", userID), zap.Int64("friend_id", friendID), zap.Error(err))
		return fmt.Errorf("error removing friendship: %w", err)
	}
	return nil
}

func (r *FriendRepository) FriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT friend_id FROM friendships WHERE user_id = $1 ORDER BY friend_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying friends: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning friend id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating friends: %w", err)
	}
	return ids, nil
}
