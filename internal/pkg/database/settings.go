package database

import "fmt"

type PostgresSettings struct {
	User       string `env:"DB_USER"`
	Password   string `env:"DB_PASSWORD"`
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	Port       string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME"`
	SSLEnabled bool   `env:"DB_SSL_ENABLED" envDefault:"false"`
}

func (s PostgresSettings) GetUrl() string {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", s.User, s.Password, s.Host, s.Port, s.DBName)

	if !s.SSLEnabled {
		url += "?sslmode=disable"
	}

	return url
}
