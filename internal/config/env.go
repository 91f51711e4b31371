package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DataDir string

	DBHost string
	DBUser string
	DBPass string
	DBName string

	JWTSecret string

	RecsBaseURL string
	RecsAPIKey  string
	RecsModel   string
}

func LoadEnv() Env {
	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: getenv("GIN_MODE", ""),

		DataDir: getenv("DATA_DIR", "./data"),

		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBUser: getenv("DB_USER", "root"),
		DBPass: getenv("DB_PASS", ""),
		DBName: getenv("DB_NAME", "travel_app"),

		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),

		RecsBaseURL: getenv("RECS_API_URL", ""),
		RecsAPIKey:  getenv("RECS_API_KEY", ""),
		RecsModel:   getenv("RECS_MODEL", "gpt-4o-mini"),
	}
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
