package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/adapters/http/dto"
	"filmorate/pkg/logger"
)

const (
	msgServerPanic        = "server panic"
	msgPanicResponseError = "failed to send error response after panic"
)

// NewRecoveryMiddleware перехватывает панику обработчика и отвечает 500.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			requestCtx := ctx.Context()
			log := logger.Log(requestCtx)
			log.Error(requestCtx, msgServerPanic,
				zap.String("error", fmt.Sprintf("%v", r)),
				zap.String("stack", string(debug.Stack())),
			)

			if sendErr := ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:       "internal server error",
				Description: "unexpected server error",
			}); sendErr != nil {
				log.Error(requestCtx, msgPanicResponseError, zap.Error(sendErr))
				err = sendErr
			}
		}()

		return ctx.Next()
	}
}
