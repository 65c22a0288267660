package entities

import "time"

// User представляет пользователя сервиса.
type User struct {
	ID       int64     `json:"id"`
	Email    string    `json:"email"`
	Login    string    `json:"login"`
	Name     string    `json:"name"`
	Birthday time.Time `json:"birthday"`
}

// Clone возвращает копию пользователя.
func (u *User) Clone() *User {
	c := *u
	return &c
}
