// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"filmorate/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

const (
	msgRequestStarted   = "request started"
	msgRequestCompleted = "request completed"
	msgRequestFailed    = "request failed"
)

// NewLoggerMiddleware кладет в контекст запроса logger и request id, затем логирует
// начало и завершение запроса. Входящий X-Request-ID сохраняется.
func NewLoggerMiddleware(base *logger.Logger) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		start := time.Now()

		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))
		if base != nil {
			requestCtx = logger.NewContext(requestCtx, base)
		}
		ctx.SetContext(requestCtx)

		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(HeaderRequestID, id)
		}

		log := logger.Log(requestCtx).With(
			zap.String("path", ctx.Path()),
			zap.String("http_method", ctx.Method()),
			zap.String("ip", ctx.IP()),
		)
		log.Debug(requestCtx, msgRequestStarted)

		err := ctx.Next()

		fields := []zap.Field{
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			log.Error(requestCtx, msgRequestFailed, append(fields, zap.Error(err))...)
			return err
		}

		log.Info(requestCtx, msgRequestCompleted, fields...)
		return nil
	}
}
