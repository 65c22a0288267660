package handlers

import (
	"github.com/gofiber/fiber/v3"

	"filmorate/internal/filmorate/ports/api"
)

// ReferenceHandler отдает справочники жанров и рейтингов MPA.
type ReferenceHandler struct {
	references api.ReferenceUseCase
}

func NewReferenceHandler(references api.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{references: references}
}

func (h *ReferenceHandler) ListGenres(ctx fiber.Ctx) error {
	genres, err := h.references.ListGenres(ctx.Context())
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, genres)
}

func (h *ReferenceHandler) GetGenre(ctx fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return handleError(ctx, err)
	}

	genre, err := h.references.GetGenre(ctx.Context(), id)
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, genre)
}

func (h *ReferenceHandler) ListMpa(ctx fiber.Ctx) error {
	ratings, err := h.references.ListMpa(ctx.Context())
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, ratings)
}

func (h *ReferenceHandler) GetMpa(ctx fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return handleError(ctx, err)
	}

	rating, err := h.references.GetMpa(ctx.Context(), id)
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, rating)
}
