package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/adapters/http/dto"
	"filmorate/internal/filmorate/ports/api"
)

const (
	LogHandlerAddFilm    = "handling add film request"
	LogHandlerUpdateFilm = "handling update film request"
	LogHandlerPopular    = "handling popular films request"
	LogHandlerLike       = "handling like request"
)

// FilmHandler обрабатывает запросы к фильмам и лайкам.
type FilmHandler struct {
	films          api.FilmUseCase
	popularDefault int
}

// NewFilmHandler создает обработчик фильмов. popularDefault - размер топа без параметра count.
func NewFilmHandler(films api.FilmUseCase, popularDefault int) *FilmHandler {
	return &FilmHandler{films: films, popularDefault: popularDefault}
}

// AddFilm обрабатывает POST /films.
func (h *FilmHandler) AddFilm(ctx fiber.Ctx) error {
	requestCtx, log := handlerLog(ctx, "FilmHandler.AddFilm")
	log.Debug(requestCtx, LogHandlerAddFilm)

	var req dto.FilmRequest
	if err := bindBody(ctx, &req); err != nil {
		return handleError(ctx, err)
	}

	film, err := h.films.AddFilm(requestCtx, req.ToEntity())
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusCreated, dto.NewFilmResponse(film))
}

// UpdateFilm обрабатывает PUT /films.
func (h *FilmHandler) UpdateFilm(ctx fiber.Ctx) error {
	requestCtx, log := handlerLog(ctx, "FilmHandler.UpdateFilm")
	log.Debug(requestCtx, LogHandlerUpdateFilm)

	var req dto.FilmRequest
	if err := bindBody(ctx, &req); err != nil {
		return handleError(ctx, err)
	}

	film, err := h.films.UpdateFilm(requestCtx, req.ToEntity())
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, dto.NewFilmResponse(film))
}

// GetFilm обрабатывает GET /films/:id.
func (h *FilmHandler) GetFilm(ctx fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return handleError(ctx, err)
	}

	film, err := h.films.GetFilm(ctx.Context(), id)
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, dto.NewFilmResponse(film))
}

// ListFilms обрабатывает GET /films.
func (h *FilmHandler) ListFilms(ctx fiber.Ctx) error {
	films, err := h.films.ListFilms(ctx.Context())
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, dto.NewFilmListResponse(films))
}

// Popular обрабатывает GET /films/popular?count=N.
func (h *FilmHandler) Popular(ctx fiber.Ctx) error {
	requestCtx, log := handlerLog(ctx, "FilmHandler.Popular")

	count := h.popularDefault
	if raw := ctx.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return handleError(ctx, badRequest(ErrMsgInvalidCount, err))
		}
		count = parsed
	}
	log.Debug(requestCtx, LogHandlerPopular, zap.Int("count", count))

	films, err := h.films.GetPopular(requestCtx, count)
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, dto.NewFilmListResponse(films))
}

// AddLike обрабатывает PUT /films/:id/like/:userId.
func (h *FilmHandler) AddLike(ctx fiber.Ctx) error {
	requestCtx, log := handlerLog(ctx, "FilmHandler.AddLike")

	filmID, userID, err := paramIDs(ctx, "id", "userId")
	if err != nil {
		return handleError(ctx, err)
	}
	log.Debug(requestCtx, LogHandlerLike, zap.Int64("film_id", filmID), zap.Int64("user_id", userID))

	if err := h.films.AddLike(requestCtx, filmID, userID); err != nil {
		return handleError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// RemoveLike обрабатывает DELETE /films/:id/like/:userId.
func (h *FilmHandler) RemoveLike(ctx fiber.Ctx) error {
	requestCtx, log := handlerLog(ctx, "FilmHandler.RemoveLike")

	filmID, userID, err := paramIDs(ctx, "id", "userId")
	if err != nil {
		return handleError(ctx, err)
	}
	log.Debug(requestCtx, LogHandlerLike, zap.Int64("film_id", filmID), zap.Int64("user_id", userID))

	if err := h.films.RemoveLike(requestCtx, filmID, userID); err != nil {
		return handleError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusOK)
}

// CountLikes обрабатывает GET /films/:id/likes.
func (h *FilmHandler) CountLikes(ctx fiber.Ctx) error {
	filmID, err := paramID(ctx, "id")
	if err != nil {
		return handleError(ctx, err)
	}

	likes, err := h.films.CountLikes(ctx.Context(), filmID)
	if err != nil {
		return handleError(ctx, err)
	}
	return send(ctx, fiber.StatusOK, dto.LikesResponse{FilmID: filmID, Likes: likes})
}
