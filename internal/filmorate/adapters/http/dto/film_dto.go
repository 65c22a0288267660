package dto

import (
	"github.com/samber/lo"

	"filmorate/internal/filmorate/domain/entities"
)

// RefRequest ссылается на справочную запись по ID.
type RefRequest struct {
	ID int64 `json:"id"`
}

// FilmRequest содержит данные для создания или обновления фильма.
type FilmRequest struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ReleaseDate Date         `json:"releaseDate"`
	Duration    int          `json:"duration"`
	Mpa         *RefRequest  `json:"mpa"`
	Genres      []RefRequest `json:"genres"`
}

// ToEntity переводит запрос в сущность. Отсутствующий mpa дает ID 0.
func (r *FilmRequest) ToEntity() *entities.Film {
	film := &entities.Film{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: r.ReleaseDate.Time,
		Duration:    r.Duration,
		Genres: lo.Map(r.Genres, func(g RefRequest, _ int) entities.Genre {
			return entities.Genre{ID: g.ID}
		}),
	}
	if r.Mpa != nil {
		film.Mpa.ID = r.Mpa.ID
	}
	return film
}

// FilmResponse - фильм в ответе API.
type FilmResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ReleaseDate Date             `json:"releaseDate"`
	Duration    int              `json:"duration"`
	Mpa         entities.Mpa     `json:"mpa"`
	Genres      []entities.Genre `json:"genres"`
}

// NewFilmResponse строит ответ по сущности.
func NewFilmResponse(film *entities.Film) FilmResponse {
	genres := film.Genres
	if genres == nil {
		genres = []entities.Genre{}
	}
	return FilmResponse{
		ID:          film.ID,
		Name:        film.Name,
		Description: film.Description,
		ReleaseDate: NewDate(film.ReleaseDate),
		Duration:    film.Duration,
		Mpa:         film.Mpa,
		Genres:      genres,
	}
}

// NewFilmListResponse строит ответ со списком фильмов.
func NewFilmListResponse(films []*entities.Film) []FilmResponse {
	return lo.Map(films, func(f *entities.Film, _ int) FilmResponse {
		return NewFilmResponse(f)
	})
}

// LikesResponse содержит число лайков фильма.
type LikesResponse struct {
	FilmID int64 `json:"filmId"`
	Likes  int   `json:"likes"`
}
