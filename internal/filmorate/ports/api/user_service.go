package api

import (
	"context"

	"filmorate/internal/filmorate/domain/entities"
)

// UserUseCase - операции над пользователями и дружбой.
type UserUseCase interface {
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, user *entities.User) (*entities.User, error)
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	ListUsers(ctx context.Context) ([]*entities.User, error)

	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	GetFriends(ctx context.Context, userID int64) ([]*entities.User, error)
	GetCommonFriends(ctx context.Context, userID, otherID int64) ([]*entities.User, error)
}
