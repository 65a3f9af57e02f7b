package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything read from the environment at startup.
// Values never change after Load.
type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	Port           string
	Env            string
	AllowedOrigins []string
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
}

func Load() Config {
	cfg := Config{
		MongoURI:  os.Getenv("MONGODB_URI"),
		DBName:    envString("DB_NAME", "assignment11"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Port:      envString("PORT", "5000"),
		Env:       envString("APP_ENV", "development"),
	}

	if cfg.MongoURI == "" {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASS")
		if user != "" && pass != "" {
			cfg.MongoURI = fmt.Sprintf(
				"mongodb+srv://%s:%s@phassignment.y94e1.mongodb.net/?appName=phAssignment",
				user, pass,
			)
		} else {
			cfg.MongoURI = "mongodb://127.0.0.1:27017"
		}
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitOrigins(origins)
	} else {
		cfg.AllowedOrigins = defaultOrigins
	}

	return cfg
}

func (c Config) Production() bool {
	return c.Env == "production"
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
