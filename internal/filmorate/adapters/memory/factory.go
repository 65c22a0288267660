package memory

import (
	"filmorate/internal/filmorate/ports/repositories"
)

// RepositoryFactory собирает хранилища в памяти с заполненными справочниками.
type RepositoryFactory struct {
	filmRepo   repositories.FilmRepository
	userRepo   repositories.UserRepository
	genreRepo  repositories.GenreRepository
	mpaRepo    repositories.MpaRepository
	likeRepo   repositories.LikeRepository
	friendRepo repositories.FriendRepository
}

// NewRepositoryFactory создает набор хранилищ в памяти.
func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{
		filmRepo:   NewFilmRepository(),
		userRepo:   NewUserRepository(),
		genreRepo:  NewGenreRepository(DefaultGenres()...),
		mpaRepo:    NewMpaRepository(DefaultMpa()...),
		likeRepo:   NewLikeRepository(),
		friendRepo: NewFriendRepository(),
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
