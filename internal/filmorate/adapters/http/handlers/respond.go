// Package handlers содержит HTTP-обработчики Filmorate.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/adapters/http/dto"
	"filmorate/internal/filmorate/domain/entities"
	"filmorate/pkg/logger"
)

// Значения поля error в теле ответа.
const (
	ErrorValidation = "validation error"
	ErrorNotFound   = "not found"
	ErrorBadRequest = "bad request"
	ErrorInternal   = "internal server error"
)

const (
	ErrMsgInvalidID          = "invalid id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgInvalidCount       = "count must be an integer"
	ErrMsgUnexpected         = "unexpected server error"

	msgUnexpectedError = "unexpected error while handling request"
)

// errBadRequest помечает ошибки разбора входных данных.
type errBadRequest struct {
	description string
	cause       error
}

func (e *errBadRequest) Error() string {
	if e.cause == nil {
		return e.description
	}
	return fmt.Sprintf("%s: %v", e.description, e.cause)
}

func (e *errBadRequest) Unwrap() error {
	return e.cause
}

func badRequest(description string, cause error) error {
	return &errBadRequest{description: description, cause: cause}
}

// handleError переводит ошибку в HTTP-ответ: валидация и некорректный ввод дают 400,
// отсутствие сущности 404, остальное 500.
func handleError(ctx fiber.Ctx, err error) error {
	var (
		badReq   *errBadRequest
		invalid  *entities.ValidationError
		notFound *entities.NotFoundError
	)

	switch {
	case errors.As(err, &badReq):
		return send(ctx, fiber.StatusBadRequest, dto.ErrorResponse{Error: ErrorBadRequest, Description: badReq.Error()})
	case errors.As(err, &invalid):
		return send(ctx, fiber.StatusBadRequest, dto.ErrorResponse{Error: ErrorValidation, Description: invalid.Reason})
	case errors.Is(err, entities.ErrValidation):
		return send(ctx, fiber.StatusBadRequest, dto.ErrorResponse{Error: ErrorValidation, Description: err.Error()})
	case errors.As(err, &notFound):
		return send(ctx, fiber.StatusNotFound, dto.ErrorResponse{Error: ErrorNotFound, Description: notFound.Error()})
	case errors.Is(err, entities.ErrNotFound):
		return send(ctx, fiber.StatusNotFound, dto.ErrorResponse{Error: ErrorNotFound, Description: err.Error()})
	}

	requestCtx := ctx.Context()
	logger.Log(requestCtx).Error(requestCtx, msgUnexpectedError, zap.Error(err))
	return send(ctx, fiber.StatusInternalServerError, dto.ErrorResponse{Error: ErrorInternal, Description: ErrMsgUnexpected})
}

func send(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func paramID(ctx fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil {
		return 0, badRequest(ErrMsgInvalidID+" "+name, err)
	}
	return id, nil
}

func paramIDs(ctx fiber.Ctx, first, second string) (int64, int64, error) {
	a, err := paramID(ctx, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := paramID(ctx, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func bindBody(ctx fiber.Ctx, out any) error {
	if err := ctx.Bind().Body(out); err != nil {
		return badRequest(ErrMsgInvalidRequestBody, err)
	}
	return nil
}

func handlerLog(ctx fiber.Ctx, handler string) (context.Context, *logger.Logger) {
	requestCtx := ctx.Context()
	return requestCtx, logger.Log(requestCtx).With(zap.String("handler", handler))
}
