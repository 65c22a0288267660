package dto

import (
	"github.com/samber/lo"

	"filmorate/internal/filmorate/domain/entities"
)

// UserRequest содержит данные для создания или обновления пользователя.
type UserRequest struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday Date   `json:"birthday"`
}

func (r *UserRequest) ToEntity() *entities.User {
	return &entities.User{
		ID:       r.ID,
		Email:    r.Email,
		Login:    r.Login,
		Name:     r.Name,
		Birthday: r.Birthday.Time,
	}
}

// UserResponse - пользователь в ответе API.
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday Date   `json:"birthday"`
}

func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Login:    user.Login,
		Name:     user.Name,
		Birthday: NewDate(user.Birthday),
	}
}

func NewUserListResponse(users []*entities.User) []UserResponse {
	return lo.Map(users, func(u *entities.User, _ int) UserResponse {
		return NewUserResponse(u)
	})
}
