package postgres

import (
	"filmorate/internal/filmorate/ports/repositories"
)

// RepositoryFactory собирает репозитории поверх одного пула соединений.
type RepositoryFactory struct {
	filmRepo   repositories.FilmRepository
	userRepo   repositories.UserRepository
	genreRepo  repositories.GenreRepository
	mpaRepo    repositories.MpaRepository
	likeRepo   repositories.LikeRepository
	friendRepo repositories.FriendRepository
}

// NewRepositoryFactory создает набор репозиториев Postgres.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		filmRepo:   NewFilmRepository(pool),
		userRepo:   NewUserRepository(pool),
		genreRepo:  NewGenreRepository(pool),
		mpaRepo:    NewMpaRepository(pool),
		likeRepo:   NewLikeRepository(pool),
		friendRepo: NewFriendRepository(pool),
	}
}

func (f *RepositoryFactory) FilmRepository() repositories.FilmRepository {
	return f.filmRepo
}

func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

func (f *RepositoryFactory) GenreRepository() repositories.GenreRepository {
	return f.genreRepo
}

func (f *RepositoryFactory) MpaRepository() repositories.MpaRepository {
	return f.mpaRepo
}

func (f *RepositoryFactory) LikeRepository() repositories.LikeRepository {
	return f.likeRepo
}

func (f *RepositoryFactory) FriendRepository() repositories.FriendRepository {
	return f.friendRepo
}
