package entities

import (
	"cmp"
	"slices"
	"time"
)

// Mpa - возрастной рейтинг MPA. Справочные данные.
type Mpa struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Genre - жанр фильма. Справочные данные.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Film представляет фильм каталога.
// Duration хранится в минутах.
type Film struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ReleaseDate time.Time `json:"releaseDate"`
	Duration    int       `json:"duration"`
	Mpa         Mpa       `json:"mpa"`
	Genres      []Genre   `json:"genres"`
}

// Clone возвращает копию фильма, не разделяющую срез жанров с оригиналом.
func (f *Film) Clone() *Film {
	c := *f
	c.Genres = slices.Clone(f.Genres)
	return &c
}

// SortGenres упорядочивает жанры по возрастанию идентификатора.
func (f *Film) SortGenres() {
	slices.SortFunc(f.Genres, func(a, b Genre) int {
		return cmp.Compare(a.ID, b.ID)
	})
}
