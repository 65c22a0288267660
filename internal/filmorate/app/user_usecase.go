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
	methodCreateUser = "CreateUser"
	methodUpdateUser = "UpdateUser"

	msgUserCreated = "user created"
	msgUserUpdated = "user updated"
	msgUserInvalid = "user failed validation"

	msgErrStoringUser = "failed to store user"

	errCtxFetchingUser   = "fetching user"
	errCtxListingUsers   = "listing users"
	errCtxValidatingUser = "validating user"
	errCtxStoringUser    = "storing user"
	errCtxListingFriends = "listing friends"
	errCtxCommonFriends  = "intersecting friends"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo  repositories.UserRepository
	validator *services.Validator
	graph     *FriendshipGraph
}

// NewUserUseCase создает новый экземпляр сервиса пользователей.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	validator *services.Validator,
	graph *FriendshipGraph,
) api.UserUseCase {
	return &UserUseCaseImpl{userRepo: userRepo, validator: validator, graph: graph}
}

// CreateUser проверяет и сохраняет пользователя. Пустое имя заменяется логином.
func (u *UserUseCaseImpl) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateUser), zap.String("login", user.Login))

	prepared, err := u.prepare(ctx, log, user)
	if err != nil {
		return nil, err
	}

	created, err := u.userRepo.Create(ctx, prepared)
	if err != nil {
		log.Error(ctx, msgErrStoringUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxStoringUser, err)
	}

	log.Info(ctx, msgUserCreated, zap.Int64("user_id", created.ID))
	return created, nil
}

// UpdateUser заменяет данные существующего пользователя.
func (u *UserUseCaseImpl) UpdateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateUser), zap.Int64("user_id", user.ID))

	if _, err := u.userRepo.FindByID(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingUser, err)
	}

	prepared, err := u.prepare(ctx, log, user)
	if err != nil {
		return nil, err
	}

	updated, err := u.userRepo.Update(ctx, prepared)
	if err != nil {
		log.Error(ctx, msgErrStoringUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxStoringUser, err)
	}

	log.Info(ctx, msgUserUpdated)
	return updated, nil
}

// GetUser возвращает пользователя по ID.
func (u *UserUseCaseImpl) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingUser, err)
	}
	return user, nil
}

// ListUsers возвращает всех пользователей.
func (u *UserUseCaseImpl) ListUsers(ctx context.Context) ([]*entities.User, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}
	if users == nil {
		users = []*entities.User{}
	}
	return users, nil
}

func (u *UserUseCaseImpl) AddFriend(ctx context.Context, userID, friendID int64) error {
	if err := u.graph.AddFriend(ctx, userID, friendID); err != nil {
		return fmt.Errorf("%s: %w", errCtxAddingFriend, err)
	}
	return nil
}

func (u *UserUseCaseImpl) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if err := u.graph.RemoveFriend(ctx, userID, friendID); err != nil {
		return fmt.Errorf("%s: %w", errCtxRemovingFriend, err)
	}
	return nil
}

func (u *UserUseCaseImpl) GetFriends(ctx context.Context, userID int64) ([]*entities.User, error) {
	friends, err := u.graph.FriendsOf(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingFriends, err)
	}
	return friends, nil
}

func (u *UserUseCaseImpl) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]*entities.User, error) {
	friends, err := u.graph.CommonFriends(ctx, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCommonFriends, err)
	}
	return friends, nil
}

func (u *UserUseCaseImpl) prepare(ctx context.Context, log *logger.Logger, user *entities.User) (*entities.User, error) {
	if err := u.validator.ValidateUser(user); err != nil {
		log.Debug(ctx, msgUserInvalid, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUser, err)
	}

	prepared := user.Clone()
	services.ApplyDefaultName(prepared)
	return prepared, nil
}
