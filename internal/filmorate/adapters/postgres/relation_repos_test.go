package postgres_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate/internal/filmorate/adapters/postgres"
	"filmorate/internal/filmorate/domain/entities"
)

func TestLikeRepository(t *testing.T) {
	ctx := testContext(t)

	t.Run("Повторный лайк не является ошибкой", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO likes .+").
			WithArgs(int64(1), int64(2)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO likes .+").
			WithArgs(int64(1), int64(2)).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		repo := postgres.NewLikeRepository(mock)
		require.NoError(t, repo.Add(ctx, 1, 2))
		require.NoError(t, repo.Add(ctx, 1, 2))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Удаление и подсчет", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM likes").
			WithArgs(int64(1), int64(2)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM likes WHERE film_id").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery("GROUP BY film_id").
			WillReturnRows(pgxmock.NewRows([]string{"film_id", "count"}).
				AddRow(int64(1), 3).
				AddRow(int64(4), 1))

		repo := postgres.NewLikeRepository(mock)
		require.NoError(t, repo.Remove(ctx, 1, 2))

		count, err := repo.Count(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		counts, err := repo.Counts(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[int64]int{1: 3, 4: 1}, counts)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы при добавлении", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO likes .+").
			WithArgs(int64(1), int64(2)).
			WillReturnError(errors.New("connection refused"))

		err = postgres.NewLikeRepository(mock).Add(ctx, 1, 2)
		assert.ErrorContains(t, err, "error adding like")
	})
}

func TestFriendRepository(t *testing.T) {
	ctx := testContext(t)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO friendships .+").
		WithArgs(int64(1), int64(2)).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectQuery("SELECT friend_id FROM friendships").
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"friend_id"}).AddRow(int64(1)))
	mock.ExpectExec("DELETE FROM friendships").
		WithArgs(int64(2), int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectQuery("SELECT friend_id FROM friendships").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"friend_id"}))

	repo := postgres.NewFriendRepository(mock)

	require.NoError(t, repo.Add(ctx, 1, 2))

	ids, err := repo.FriendIDs(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)

	require.NoError(t, repo.Remove(ctx, 2, 1))

	ids, err = repo.FriendIDs(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReferenceRepositories(t *testing.T) {
	ctx := testContext(t)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM genres WHERE genre_id").
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("FROM mpa ORDER BY mpa_id").
		WillReturnRows(pgxmock.NewRows([]string{"mpa_id", "name"}).
			AddRow(int64(1), "G").
			AddRow(int64(2), "PG"))

	_, err = postgres.NewGenreRepository(mock).FindByID(ctx, 9)
	var nf *entities.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, entities.KindGenre, nf.Kind)

	ratings, err := postgres.NewMpaRepository(mock).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.Equal(t, "PG", ratings[1].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}
