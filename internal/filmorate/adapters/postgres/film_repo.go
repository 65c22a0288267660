package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

// FilmRepository реализует repositories.FilmRepository для Postgres.
// Жанры фильма хранятся в таблице film_genres.
type FilmRepository struct {
	pool PgxPoolInterface
}

// NewFilmRepository создает новый экземпляр репозитория фильмов.
func NewFilmRepository(pool PgxPoolInterface) repositories.FilmRepository {
	return &FilmRepository{pool: pool}
}

// Create сохраняет фильм и его жанры в одной транзакции.
func (r *FilmRepository) Create(ctx context.Context, film *entities.Film) (*entities.Film, error) {
	log := logger.Log(ctx).With(zap.String("repository", "film"), zap.String("method", "Create"))

	query := `
        INSERT INTO films (name, description, release_date, duration, mpa_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING film_id
    `

	created := film.Clone()
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, query,
			film.Name,
			film.Description,
			film.ReleaseDate,
			film.Duration,
			film.Mpa.ID,
		).Scan(&created.ID); err != nil {
			return fmt.Errorf("error inserting film: %w", err)
		}
		return insertFilmGenres(ctx, tx, created.ID, film.Genres)
	})
	if err != nil {
		log.Error(ctx, "error creating film", zap.Error(err))
		return nil, fmt.Errorf("error creating film: %w", err)
	}

	log.Debug(ctx, "film created", zap.Int64("film_id", created.ID))
	return created, nil
}

// Update заменяет поля фильма и его набор жанров.
func (r *FilmRepository) Update(ctx context.Context, film *entities.Film) (*entities.Film, error) {
	log := logger.Log(ctx).With(zap.String("repository", "film"), zap.String("method", "Update"))

	query := `
        UPDATE films
        SET name = $1, description = $2, release_date = $3, duration = $4, mpa_id = $5
        WHERE film_id = $6
    `

	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query,
			film.Name,
			film.Description,
			film.ReleaseDate,
			film.Duration,
			film.Mpa.ID,
			film.ID,
		)
		if err != nil {
			return fmt.Errorf("error updating film: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return entities.NewNotFoundError(entities.KindFilm, film.ID)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM film_genres WHERE film_id = $1`, film.ID); err != nil {
			return fmt.Errorf("error clearing film genres: %w", err)
		}
		return insertFilmGenres(ctx, tx, film.ID, film.Genres)
	})
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			log.Debug(ctx, "film not found", zap.Int64("film_id", film.ID))
			return nil, err
		}
		log.Error(ctx, "error updating film", zap.Error(err))
		return nil, fmt.Errorf("error updating film: %w", err)
	}

	return film.Clone(), nil
}

// FindByID находит фильм по ID вместе с рейтингом и жанрами.
func (r *FilmRepository) FindByID(ctx context.Context, id int64) (*entities.Film, error) {
	log := logger.Log(ctx).With(zap.String("repository", "film"), zap.String("method", "FindByID"))

	query := `
        SELECT f.film_id, f.name, f.description, f.release_date, f.duration, m.mpa_id, m.name
        FROM films f
        JOIN mpa m ON m.mpa_id = f.mpa_id
        WHERE f.film_id = $1
    `

	var film entities.Film
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&film.ID,
		&film.Name,
		&film.Description,
		&film.ReleaseDate,
		&film.Duration,
		&film.Mpa.ID,
		&film.Mpa.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "film not found", zap.Int64("film_id", id))
			return nil, entities.NewNotFoundError(entities.KindFilm, id)
		}
		log.Error(ctx, "error finding film by id", zap.Error(err))
		return nil, fmt.Errorf("error querying film by id: %w", err)
	}

	genres, err := r.genresByFilm(ctx, `
        SELECT fg.film_id, g.genre_id, g.name
        FROM film_genres fg
        JOIN genres g ON g.genre_id = fg.genre_id
        WHERE fg.film_id = $1
        ORDER BY g.genre_id
    `, id)
	if err != nil {
		log.Error(ctx, "error loading film genres", zap.Error(err))
		return nil, err
	}
	film.Genres = genres[id]

	return &film, nil
}

// FindAll возвращает все фильмы по возрастанию ID.
func (r *FilmRepository) FindAll(ctx context.Context) ([]*entities.Film, error) {
	log := logger.Log(ctx).With(zap.String("repository", "film"), zap.String("method", "FindAll"))

	query := `
        SELECT f.film_id, f.name, f.description, f.release_date, f.duration, m.mpa_id, m.name
        FROM films f
        JOIN mpa m ON m.mpa_id = f.mpa_id
        ORDER BY f.film_id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error querying films", zap.Error(err))
		return nil, fmt.Errorf("error querying films: %w", err)
	}
	defer rows.Close()

	var films []*entities.Film
	for rows.Next() {
		var film entities.Film
		if err := rows.Scan(
			&film.ID,
			&film.Name,
			&film.Description,
			&film.ReleaseDate,
			&film.Duration,
			&film.Mpa.ID,
			&film.Mpa.Name,
		); err != nil {
			log.Error(ctx, "error scanning film row", zap.Error(err))
			return nil, fmt.Errorf("error scanning film row: %w", err)
		}
		films = append(films, &film)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating film rows: %w", err)
	}

	if len(films) == 0 {
		return films, nil
	}

	genres, err := r.genresByFilm(ctx, `
        SELECT fg.film_id, g.genre_id, g.name
        FROM film_genres fg
        JOIN genres g ON g.genre_id = fg.genre_id
        ORDER BY fg.film_id, g.genre_id
    `)
	if err != nil {
		log.Error(ctx, "error loading film genres", zap.Error(err))
		return nil, err
	}
	for _, film := range films {
		film.Genres = genres[film.ID]
	}

	return films, nil
}

func (r *FilmRepository) genresByFilm(ctx context.Context, query string, args ...interface{}) (map[int64][]entities.Genre, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying film genres: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]entities.Genre)
	for rows.Next() {
		var (
			filmID int64
			genre  entities.Genre
		)
		if err := rows.Scan(&filmID, &genre.ID, &genre.Name); err != nil {
			return nil, fmt.Errorf("error scanning film genre row: %w", err)
		}
		result[filmID] = append(result[filmID], genre)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating film genre rows: %w", err)
	}
	return result, nil
}

func insertFilmGenres(ctx context.Context, tx pgx.Tx, filmID int64, genres []entities.Genre) error {
	if len(genres) == 0 {
		return nil
	}

	ids := lo.Map(genres, func(g entities.Genre, _ int) int64 { return g.ID })
	query := `
        INSERT INTO film_genres (film_id, genre_id)
        SELECT $1::bigint, unnest($2::bigint[])
        ON CONFLICT DO NOTHING
    `
	if _, err := tx.Exec(ctx, query, filmID, ids); err != nil {
		return fmt.Errorf("error inserting film genres: %w", err)
	}
	return nil
}
