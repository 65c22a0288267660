package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/adapters/http/dto"
	"filmorate/internal/filmorate/ports/api"
)

const (
	LogHandlerCreateUser = "handling create user request"
	LogHandlerUpdateUser = "handling update user request"
	LogHandlerFriend     = "handling friendship request"
)

// UserHandler обрабатывает запросы к пользователям и дружбе.
type UserHandler struct {
	users api.UserUseCase
}

func NewUserHandler(users api.UserUseCase) *UserHandler {
	return &UserHandler{users: users}
}

// CreateUser обрабатывает POST /users.
func (h *UserHandler) CreateUser(ctx fiber.Ctx) error {
	requestCtx, log := handlerLog(ctx, "UserHandler.CreateUser")
	log.Debug(requestCtx, LogHandlerCreateUser)

	var req dto.UserRequest
	if err := bindBody(ctx, &req); err != nil {
		return handleError(ctx, err)
	}

	user, err := h.users.CreateUser(requestCtx, req.ToEntity())
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusCreated, dto.NewUserResponse(user))
}

// UpdateUser обрабатывает PUT /users.
func (h *UserHandler) UpdateUser(ctx fiber.Ctx) error {
	requestCtx, log := handlerLog(ctx, "UserHandler.UpdateUser")
	log.Debug(requestCtx, LogHandlerUpdateUser)

	var req dto.UserRequest
	if err := bindBody(ctx, &req); err != nil {
		return handleError(ctx, err)
	}

	user, err := h.users.UpdateUser(requestCtx, req.ToEntity())
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) GetUser(ctx fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return handleError(ctx, err)
	}

	user, err := h.users.GetUser(ctx.Context(), id)
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, dto.NewUserResponse(user))
}

func (h *UserHandler) ListUsers(ctx fiber.Ctx) error {
	users, err := h.users.ListUsers(ctx.Context())
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, dto.NewUserListResponse(users))
}

// AddFriend обрабатывает PUT /users/:id/friends/:friendId.
func (h *UserHandler) AddFriend(ctx fiber.Ctx) error {
	requestCtx, log := handlerLog(ctx, "UserHandler.AddFriend")

	userID, friendID, err := paramIDs(ctx, "id", "friendId")
	if err != nil {
		return handleError(ctx, err)
	}
	log.Debug(requestCtx, LogHandlerFriend, zap.Int64("user_id", userID), zap.Int64("friend_id", friendID))

	if err := h.users.AddFriend(requestCtx, userID, friendID); err != nil {
		return handleError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// RemoveFriend обрабатывает DELETE /users/:id/friends/:friendId.
func (h *UserHandler) RemoveFriend(ctx fiber.Ctx) error {
	requestCtx, log := handlerLog(ctx, "UserHandler.RemoveFriend")

	userID, friendID, err := paramIDs(ctx, "id", "friendId")
	if err != nil {
		return handleError(ctx, err)
	}
	log.Debug(requestCtx, LogHandlerFriend, zap.Int64("user_id", userID), zap.Int64("friend_id", friendID))

	if err := h.users.RemoveFriend(requestCtx, userID, friendID); err != nil {
		return handleError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// Friends обрабатывает GET /users/:id/friends.
func (h *UserHandler) Friends(ctx fiber.Ctx) error {
	userID, err := paramID(ctx, "id")
	if err != nil {
		return handleError(ctx, err)
	}

	friends, err := h.users.GetFriends(ctx.Context(), userID)
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, dto.NewUserListResponse(friends))
}

// CommonFriends обрабатывает GET /users/:id/friends/common/:otherId.
func (h *UserHandler) CommonFriends(ctx fiber.Ctx) error {
	userID, otherID, err := paramIDs(ctx, "id", "otherId")
	if err != nil {
		return handleError(ctx, err)
	}

	friends, err := h.users.GetCommonFriends(ctx.Context(), userID, otherID)
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, dto.NewUserListResponse(friends))
}
