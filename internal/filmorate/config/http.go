package config

import (
	"fmt"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"FILMORATE_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"FILMORATE_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"FILMORATE_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"FILMORATE_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	// PopularDefault - число фильмов в /films/popular без параметра count.
	PopularDefault int `yaml:"popular_default" env:"FILMORATE_HTTP_POPULAR_DEFAULT" env-default:"10"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
