package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate/internal/filmorate/adapters/postgres"
	"filmorate/internal/filmorate/domain/entities"
	"filmorate/pkg/logger"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

var filmColumns = []string{"film_id", "name", "description", "release_date", "duration", "mpa_id", "mpa_name"}

func sampleFilm() *entities.Film {
	return &entities.Film{
		Name:        "Andrei Rublev",
		Description: "Icon painter in 15th century Russia",
		ReleaseDate: time.Date(1966, time.December, 16, 0, 0, 0, 0, time.UTC),
		Duration:    205,
		Mpa:         entities.Mpa{ID: 4, Name: "R"},
		Genres:      []entities.Genre{{ID: 2, Name: "Драма"}, {ID: 1, Name: "Комедия"}},
	}
}

func TestFilmRepository_Create(t *testing.T) {
	ctx := testContext(t)
	film := sampleFilm()

	t.Run("Успешное создание фильма с жанрами", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO films .+").
			WithArgs(film.Name, film.Description, film.ReleaseDate, film.Duration, film.Mpa.ID).
			WillReturnRows(pgxmock.NewRows([]string{"film_id"}).AddRow(int64(7)))
		mock.ExpectExec("INSERT INTO film_genres .+").
			WithArgs(int64(7), []int64{2, 1}).
			WillReturnResult(pgxmock.NewResult("INSERT", 2))
		mock.ExpectCommit()

		repo := postgres.NewFilmRepository(mock)
		created, err := repo.Create(ctx, film)

		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
		assert.Equal(t, film.Genres, created.Genres)
		assert.Zero(t, film.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Фильм без жанров не пишет film_genres", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		noGenres := sampleFilm()
		noGenres.Genres = nil

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO films .+").
			WithArgs(noGenres.Name, noGenres.Description, noGenres.ReleaseDate, noGenres.Duration, noGenres.Mpa.ID).
			WillReturnRows(pgxmock.NewRows([]string{"film_id"}).AddRow(int64(1)))
		mock.ExpectCommit()

		repo := postgres.NewFilmRepository(mock)
		created, err := repo.Create(ctx, noGenres)

		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка вставки жанров откатывает транзакцию", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO films .+").
			WithArgs(film.Name, film.Description, film.ReleaseDate, film.Duration, film.Mpa.ID).
			WillReturnRows(pgxmock.NewRows([]string{"film_id"}).AddRow(int64(7)))
		mock.ExpectExec("INSERT INTO film_genres .+").
			WithArgs(int64(7), []int64{2, 1}).
			WillReturnError(errors.New("foreign key violation"))
		mock.ExpectRollback()

		repo := postgres.NewFilmRepository(mock)
		created, err := repo.Create(ctx, film)

		assert.Nil(t, created)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error creating film")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFilmRepository_Update(t *testing.T) {
	ctx := testContext(t)
	film := sampleFilm()
	film.ID = 3

	t.Run("Успешное обновление", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE films").
			WithArgs(film.Name, film.Description, film.ReleaseDate, film.Duration, film.Mpa.ID, film.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec("DELETE FROM film_genres .+").
			WithArgs(film.ID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("INSERT INTO film_genres .+").
			WithArgs(film.ID, []int64{2, 1}).
			WillReturnResult(pgxmock.NewResult("INSERT", 2))
		mock.ExpectCommit()

		repo := postgres.NewFilmRepository(mock)
		updated, err := repo.Update(ctx, film)

		require.NoError(t, err)
		assert.Equal(t, film.ID, updated.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Фильм не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE films").
			WithArgs(film.Name, film.Description, film.ReleaseDate, film.Duration, film.Mpa.ID, film.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		repo := postgres.NewFilmRepository(mock)
		updated, err := repo.Update(ctx, film)

		assert.Nil(t, updated)
		var nf *entities.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, entities.KindFilm, nf.Kind)
		assert.Equal(t, film.ID, nf.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFilmRepository_FindByID(t *testing.T) {
	ctx := testContext(t)
	release := time.Date(1979, time.May, 25, 0, 0, 0, 0, time.UTC)

	t.Run("Фильм найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("f.film_id = \\$1").
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows(filmColumns).
				AddRow(int64(5), "Stalker", "The Zone", release, 161, int64(3), "PG-13"))
		mock.ExpectQuery("SELECT fg.film_id, g.genre_id, g.name").
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows([]string{"film_id", "genre_id", "name"}).
				AddRow(int64(5), int64(2), "Драма").
				AddRow(int64(5), int64(4), "Триллер"))

		repo := postgres.NewFilmRepository(mock)
		film, err := repo.FindByID(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "Stalker", film.Name)
		assert.Equal(t, release, film.ReleaseDate)
		assert.Equal(t, 161, film.Duration)
		assert.Equal(t, entities.Mpa{ID: 3, Name: "PG-13"}, film.Mpa)
		assert.Equal(t, []entities.Genre{{ID: 2, Name: "Драма"}, {ID: 4, Name: "Триллер"}}, film.Genres)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Фильм не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("f.film_id = \\$1").
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewFilmRepository(mock)
		film, err := repo.FindByID(ctx, 404)

		assert.Nil(t, film)
		assert.ErrorIs(t, err, entities.ErrNotFound)
		assert.Contains(t, err.Error(), "id=404")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("f.film_id = \\$1").
			WithArgs(int64(1)).
			WillReturnError(errors.New("connection reset"))

		repo := postgres.NewFilmRepository(mock)
		_, err = repo.FindByID(ctx, 1)

		require.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrNotFound)
		assert.Contains(t, err.Error(), "error querying film by id")
	})
}

func TestFilmRepository_FindAll(t *testing.T) {
	ctx := testContext(t)
	release := time.Date(1975, time.March, 7, 0, 0, 0, 0, time.UTC)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("ORDER BY f.film_id").
		WillReturnRows(pgxmock.NewRows(filmColumns).
			AddRow(int64(1), "Mirror", "", release, 108, int64(1), "G").
			AddRow(int64(2), "Solaris", "", release, 167, int64(2), "PG"))
	mock.ExpectQuery("SELECT fg.film_id, g.genre_id, g.name").
		WillReturnRows(pgxmock.NewRows([]string{"film_id", "genre_id", "name"}).
			AddRow(int64(2), int64(5), "Документальный"))

	repo := postgres.NewFilmRepository(mock)
	films, err := repo.FindAll(ctx)

	require.NoError(t, err)
	require.Len(t, films, 2)
	assert.Empty(t, films[0].Genres)
	assert.Equal(t, []entities.Genre{{ID: 5, Name: "Документальный"}}, films[1].Genres)
	require.NoError(t, mock.ExpectationsWereMet())
}
