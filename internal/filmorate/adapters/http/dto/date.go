// Package dto содержит объекты передачи данных HTTP API.
package dto

import (
	"bytes"
	"fmt"
	"time"
)

// DateLayout - формат дат в запросах и ответах.
const DateLayout = time.DateOnly

// Date - дата без времени в формате YYYY-MM-DD.
// Пустая строка и null дают нулевое значение.
type Date struct {
	time.Time
}

// NewDate отбрасывает время суток у t.
func NewDate(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		d.Time = time.Time{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("date must be a string in %s format", DateLayout)
	}

	parsed, err := time.Parse(DateLayout, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("date must be in %s format: %w", DateLayout, err)
	}
	d.Time = parsed
	return nil
}
