// Package app содержит прикладные сервисы Filmorate: проверку и сохранение
// сущностей, лайки, дружбу и рейтинг популярности.
package app

import (
	"time"

	"filmorate/internal/filmorate/domain/services"
	"filmorate/internal/filmorate/ports/api"
	"filmorate/internal/filmorate/ports/cache"
	"filmorate/internal/filmorate/ports/repositories"
)

// Options задает необязательные зависимости сервисов.
type Options struct {
	// Cache хранит рейтинг популярности; nil отключает кэширование.
	Cache      cache.Cache
	PopularTTL time.Duration
	// Now подменяет текущее время при проверке дат; nil означает time.Now.
	Now func() time.Time
}

// Services - набор сервисов поверх одного набора хранилищ.
type Services struct {
	Films      api.FilmUseCase
	Users      api.UserUseCase
	References api.ReferenceUseCase
}

// NewServices собирает сервисы поверх хранилищ factory.
func NewServices(factory repositories.Factory, opts Options) *Services {
	validator := services.NewValidator(opts.Now)

	films := factory.FilmRepository()
	users := factory.UserRepository()
	likes := factory.LikeRepository()

	resolver := NewReferenceResolver(factory.GenreRepository(), factory.MpaRepository())
	registry := NewLikeRegistry(films, users, likes)
	ranker := NewPopularityRanker(films, likes, opts.Cache, opts.PopularTTL)
	graph := NewFriendshipGraph(users, factory.FriendRepository())

	return &Services{
		Films:      NewFilmUseCase(films, validator, resolver, registry, ranker),
		Users:      NewUserUseCase(users, validator, graph),
		References: NewReferenceUseCase(factory.GenreRepository(), factory.MpaRepository()),
	}
}
