package postgres_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate/internal/filmorate/adapters/postgres"
	"filmorate/internal/filmorate/domain/entities"
)

func TestUserRepository(t *testing.T) {
	ctx := testContext(t)
	birthday := time.Date(1932, time.April, 4, 0, 0, 0, 0, time.UTC)
	user := &entities.User{Email: "andrei@example.com", Login: "tarkovsky", Name: "Andrei", Birthday: birthday}

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(user.Email, user.Login, user.Name, user.Birthday).
			WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(int64(11)))

		created, err := postgres.NewUserRepository(mock).Create(ctx, user)

		require.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
		assert.Equal(t, user.Login, created.Login)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при создании пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(user.Email, user.Login, user.Name, user.Birthday).
			WillReturnError(errors.New("database connection error"))

		created, err := postgres.NewUserRepository(mock).Create(ctx, user)

		assert.Nil(t, created)
		assert.Contains(t, err.Error(), "error creating user")
	})

	t.Run("Обновление несуществующего пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		missing := user.Clone()
		missing.ID = 99
		mock.ExpectExec("UPDATE users").
			WithArgs(missing.Email, missing.Login, missing.Name, missing.Birthday, missing.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		_, err = postgres.NewUserRepository(mock).Update(ctx, missing)

		assert.ErrorIs(t, err, entities.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Поиск по ID", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("WHERE user_id = \\$1").
			WithArgs(int64(11)).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "email", "login", "name", "birthday"}).
				AddRow(int64(11), user.Email, user.Login, user.Name, birthday))
		mock.ExpectQuery("WHERE user_id = \\$1").
			WithArgs(int64(12)).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)

		found, err := repo.FindByID(ctx, 11)
		require.NoError(t, err)
		assert.Equal(t, birthday, found.Birthday)

		_, err = repo.FindByID(ctx, 12)
		var nf *entities.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, entities.KindUser, nf.Kind)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Список пользователей", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("ORDER BY user_id").
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "email", "login", "name", "birthday"}).
				AddRow(int64(1), "a@x", "a", "a", birthday).
				AddRow(int64(2), "b@x", "b", "b", birthday))

		users, err := postgres.NewUserRepository(mock).FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "b", users[1].Login)
	})
}
