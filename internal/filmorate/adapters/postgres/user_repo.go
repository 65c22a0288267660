package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

// UserRepository реализует repositories.UserRepository для Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create создает нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (email, login, name, birthday)
        VALUES ($1, $2, $3, $4)
        RETURNING user_id
    `

	created := user.Clone()
	if err := r.pool.QueryRow(ctx, query,
		user.Email,
		user.Login,
		user.Name,
		user.Birthday,
	).Scan(&created.ID); err != nil {
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	log.Debug(ctx, "user created", zap.Int64("user_id", created.ID))
	return created, nil
}

// Update обновляет данные пользователя.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Update"))

	query := `
        UPDATE users
        SET email = $1, login = $2, name = $3, birthday = $4
        WHERE user_id = $5
    `

	tag, err := r.pool.Exec(ctx, query,
		user.Email,
		user.Login,
		user.Name,
		user.Birthday,
		user.ID,
	)
	if err != nil {
		log.Error(ctx, "error updating user", zap.Error(err))
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "user not found", zap.Int64("user_id", user.ID))
		return nil, entities.NewNotFoundError(entities.KindUser, user.ID)
	}

	return user.Clone(), nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `
        SELECT user_id, email, login, name, birthday
        FROM users
        WHERE user_id = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Login,
		&user.Name,
		&user.Birthday,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Int64("user_id", id))
			return nil, entities.NewNotFoundError(entities.KindUser, id)
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}

// FindAll возвращает всех пользователей по возрастанию ID.
func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindAll"))

	query := `
        SELECT user_id, email, login, name, birthday
        FROM users
        ORDER BY user_id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error querying users", zap.Error(err))
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Login, &user.Name, &user.Birthday); err != nil {
			log.Error(ctx, "error scanning user row", zap.Error(err))
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
