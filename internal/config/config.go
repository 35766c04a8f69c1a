package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration. It is loaded once at process
// start and treated as immutable afterwards.
type Config struct {
	ServerPort     int
	DatabasePath   string
	JWTSecret      string
	AllowedOrigins []string
}

// Load reads configuration from environment variables, applying defaults
// for everything except the signing secret.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("DATABASE_PATH", "./daykeep.db")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	secret := v.GetString("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	var origins []string
	for _, o := range strings.Split(v.GetString("ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		ServerPort:     v.GetInt("PORT"),
		DatabasePath:   v.GetString("DATABASE_PATH"),
		JWTSecret:      secret,
		AllowedOrigins: origins,
	}, nil
}
