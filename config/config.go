package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Debug            bool   `envconfig:"debug"`
	Env              string `envconfig:"env" default:"dev"`
	PostgresHost     string `envconfig:"postgres_host" default:"localhost"`
	PostgresPort     int    `envconfig:"postgres_port" default:"5432"`
	PostgresUser     string `envconfig:"postgres_user"`
	PostgresPassword string `envconfig:"postgres_password"`
	PostgresDB       string `envconfig:"postgres_db"`
	PostgresSSLMode  string `envconfig:"postgres_sslmode" default:"disable"`
	TimeZone         string `envconfig:"timezone" default:"UTC"`
}

func Load() (*Config, error) {
	if os.Getenv("APP_MODE") != "release" {
		if err := godotenv.Load("./.env"); err != nil {
			log.Printf("couldn't load env vars: %v", err)
		}
	}

	c := &Config{}
	err := envconfig.Process("socialgraph", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// IsProd reports whether the process runs with production settings.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}
