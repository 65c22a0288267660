// Package http содержит HTTP API Filmorate поверх fiber.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"filmorate/internal/filmorate/adapters/http/dto"
	"filmorate/internal/filmorate/adapters/http/handlers"
	"filmorate/internal/filmorate/adapters/http/middleware"
	"filmorate/internal/filmorate/app"
	"filmorate/pkg/logger"
)

// ErrMsgRouteNotFound - описание ошибки для неизвестного маршрута.
const ErrMsgRouteNotFound = "route not found"

// SetupRouter регистрирует маршруты и middleware. base может быть nil,
// тогда используется глобальный logger.
func SetupRouter(router *fiber.App, svc *app.Services, popularDefault int, base *logger.Logger) {
	filmHandler := handlers.NewFilmHandler(svc.Films, popularDefault)
	userHandler := handlers.NewUserHandler(svc.Users)
	referenceHandler := handlers.NewReferenceHandler(svc.References)

	router.Use(middleware.NewLoggerMiddleware(base))
	router.Use(middleware.NewRecoveryMiddleware())
	router.Use(middleware.NewMetricsMiddleware())

	router.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	films := router.Group("/films")
	films.Post("/", filmHandler.AddFilm)
	films.Put("/", filmHandler.UpdateFilm)
	films.Get("/", filmHandler.ListFilms)
	// /popular регистрируется раньше /:id
	films.Get("/popular", filmHandler.Popular)
	films.Get("/:id", filmHandler.GetFilm)
	films.Get("/:id/likes", filmHandler.CountLikes)
	films.Put("/:id/like/:userId", filmHandler.AddLike)
	films.Delete("/:id/like/:userId", filmHandler.RemoveLike)

	users := router.Group("/users")
	users.Post("/", userHandler.CreateUser)
	users.Put("/", userHandler.UpdateUser)
	users.Get("/", userHandler.ListUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Get("/:id/friends", userHandler.Friends)
	users.Get("/:id/friends/common/:otherId", userHandler.CommonFriends)
	users.Put("/:id/friends/:friendId", userHandler.AddFriend)
	users.Delete("/:id/friends/:friendId", userHandler.RemoveFriend)

	router.Get("/genres", referenceHandler.ListGenres)
	router.Get("/genres/:id", referenceHandler.GetGenre)
	router.Get("/mpa", referenceHandler.ListMpa)
	router.Get("/mpa/:id", referenceHandler.GetMpa)

	router.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error:       "not found",
			Description: ErrMsgRouteNotFound,
		})
	})
}
