package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/ports/repositories"
)

// GenreRepository читает справочник жанров.
type GenreRepository struct {
	pool PgxPoolInterface
}

// NewGenreRepository создает репозиторий жанров.
func NewGenreRepository(pool PgxPoolInterface) repositories.GenreRepository {
	return &GenreRepository{pool: pool}
}

func (r *GenreRepository) FindByID(ctx context.Context, id int64) (*entities.Genre, error) {
	var g entities.Genre
	err := r.pool.QueryRow(ctx, `SELECT genre_id, name FROM genres WHERE genre_id = $1`, id).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.NewNotFoundError(entities.KindGenre, id)
		}
		return nil, fmt.Errorf("error querying genre by id: %w", err)
	}
	return &g, nil
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]*entities.Genre, error) {
	return queryReferences(ctx, r.pool, `SELECT genre_id, name FROM genres ORDER BY genre_id`,
		func(row pgx.Rows) (*entities.Genre, error) {
			var g entities.Genre
			return &g, row.Scan(&g.ID, &g.Name)
		})
}

// MpaRepository читает справочник рейтингов MPA.
type MpaRepository struct {
	pool PgxPoolInterface
}

// NewMpaRepository создает репозиторий рейтингов.
func NewMpaRepository(pool PgxPoolInterface) repositories.MpaRepository {
	return &MpaRepository{pool: pool}
}

func (r *MpaRepository) FindByID(ctx context.Context, id int64) (*entities.Mpa, error) {
	var m entities.Mpa
	err := r.pool.QueryRow(ctx, `SELECT mpa_id, name FROM mpa WHERE mpa_id = $1`, id).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.NewNotFoundError(entities.KindMpa, id)
		}
		return nil, fmt.Errorf("error querying mpa by id: %w", err)
	}
	return &m, nil
}

func (r *MpaRepository) FindAll(ctx context.Context) ([]*entities.Mpa, error) {
	return queryReferences(ctx, r.pool, `SELECT mpa_id, name FROM mpa ORDER BY mpa_id`,
		func(row pgx.Rows) (*entities.Mpa, error) {
			var m entities.Mpa
			return &m, row.Scan(&m.ID, &m.Name)
		})
}

func queryReferences[T any](ctx context.Context, pool PgxPoolInterface, query string, scan func(pgx.Rows) (*T, error)) ([]*T, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying reference data: %w", err)
	}
	defer rows.Close()

	var result []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning reference row: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reference rows: %w", err)
	}
	return result, nil
}
