package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate/internal/filmorate/adapters/http/dto"
)

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"Обычная дата", `"1895-12-28"`, time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC), false},
		{"null", `null`, time.Time{}, false},
		{"Пустая строка", `""`, time.Time{}, false},
		{"Дата со временем", `"2020-01-01T10:00:00Z"`, time.Time{}, true},
		{"Число", `20200101`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d dto.Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time))
		})
	}
}

func TestDateMarshal(t *testing.T) {
	day := dto.NewDate(time.Date(2001, time.March, 4, 23, 30, 0, 0, time.UTC))

	raw, err := json.Marshal(struct {
		Day  dto.Date `json:"day"`
		Zero dto.Date `json:"zero"`
	}{Day: day})

	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2001-03-04","zero":null}`, string(raw))
}

func TestFilmRequestToEntity(t *testing.T) {
	var req dto.FilmRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Film",
		"releaseDate": "2000-01-02",
		"duration": 90,
		"mpa": {"id": 3},
		"genres": [{"id": 2}, {"id": 1}]
	}`), &req))

	film := req.ToEntity()

	assert.Equal(t, "Film", film.Name)
	assert.Equal(t, int64(3), film.Mpa.ID)
	assert.Equal(t, []int64{2, 1}, []int64{film.Genres[0].ID, film.Genres[1].ID})
	assert.Equal(t, 2000, film.ReleaseDate.Year())
}
