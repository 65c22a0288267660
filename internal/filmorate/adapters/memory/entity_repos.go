package memory

import (
	"context"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/ports/repositories"
)

// FilmRepository хранит фильмы в памяти.
type FilmRepository struct {
	*table[entities.Film]
}

// NewFilmRepository создает пустое хранилище фильмов.
func NewFilmRepository() repositories.FilmRepository {
	return &FilmRepository{table: newTable(entities.KindFilm,
		func(f *entities.Film) int64 { return f.ID },
		func(f *entities.Film, id int64) { f.ID = id },
		(*entities.Film).Clone,
	)}
}

// UserRepository хранит пользователей в памяти.
type UserRepository struct {
	*table[entities.User]
}

// NewUserRepository создает пустое хранилище пользователей.
func NewUserRepository() repositories.UserRepository {
	return &UserRepository{table: newTable(entities.KindUser,
		func(u *entities.User) int64 { return u.ID },
		func(u *entities.User, id int64) { u.ID = id },
		(*entities.User).Clone,
	)}
}

// GenreRepository - справочник жанров в памяти. Доступен только для чтения.
type GenreRepository struct {
	rows *table[entities.Genre]
}

// NewGenreRepository создает справочник с переданными жанрами.
func NewGenreRepository(genres ...entities.Genre) repositories.GenreRepository {
	t := newTable(entities.KindGenre,
		func(g *entities.Genre) int64 { return g.ID },
		func(g *entities.Genre, id int64) { g.ID = id },
		func(g *entities.Genre) *entities.Genre { c := *g; return &c },
	)
	t.seed(genres...)
	return &GenreRepository{rows: t}
}

func (r *GenreRepository) FindByID(ctx context.Context, id int64) (*entities.Genre, error) {
	return r.rows.FindByID(ctx, id)
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]*entities.Genre, error) {
	return r.rows.FindAll(ctx)
}

// MpaRepository - справочник рейтингов MPA в памяти. Доступен только для чтения.
type MpaRepository struct {
	rows *table[entities.Mpa]
}

// NewMpaRepository создает справочник с переданными рейтингами.
func NewMpaRepository(ratings ...entities.Mpa) repositories.MpaRepository {
	t := newTable(entities.KindMpa,
		func(m *entities.Mpa) int64 { return m.ID },
		func(m *entities.Mpa, id int64) { m.ID = id },
		func(m *entities.Mpa) *entities.Mpa { c := *m; return &c },
	)
	t.seed(ratings...)
	return &MpaRepository{rows: t}
}

func (r *MpaRepository) FindByID(ctx context.Context, id int64) (*entities.Mpa, error) {
	return r.rows.FindByID(ctx, id)
}

func (r *MpaRepository) FindAll(ctx context.Context) ([]*entities.Mpa, error) {
	return r.rows.FindAll(ctx)
}

// DefaultGenres - жанры, которыми заполняется справочник при старте.
func DefaultGenres() []entities.Genre {
	return []entities.Genre{
		{ID: 1, Name: "Комедия"},
		{ID: 2, Name: "Драма"},
		{ID: 3, Name: "Мультфильм"},
		{ID: 4, Name: "Триллер"},
		{ID: 5, Name: "Документальный"},
		{ID: 6, Name: "Боевик"},
	}
}

// DefaultMpa - рейтинги MPA, которыми заполняется справочник при старте.
func DefaultMpa() []entities.Mpa {
	return []entities.Mpa{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	}
}
