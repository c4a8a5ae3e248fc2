package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"thesis-portal/internal/models"

	"github.com/joho/godotenv"
)

const (
	AuthModeStub    = "stub"
	AuthModeSession = "session"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	// stub — роль фиксирована (StubRole), session — роль из сессии пользователя
	AuthMode   string
	StubRole   models.Role
	SessionTTL time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBDSN:         getenv("DB_DSN"),
		ServerPort:    getenv("SERVER_PORT"),
		SessionSecret: getenv("SESSION_SECRET"),
		AuthMode:      getenv("AUTH_MODE"),
		SessionTTL:    12 * time.Hour,
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is not set")
	}

	switch cfg.AuthMode {
	case "":
		cfg.AuthMode = AuthModeStub
	case AuthModeStub, AuthModeSession:
	default:
		return nil, fmt.Errorf("AUTH_MODE must be %q or %q, got %q", AuthModeStub, AuthModeSession, cfg.AuthMode)
	}

	// нераспознанная роль заглушки — это аноним, и "/" ведёт на /login
	stub := getenv("STUB_ROLE")
	if stub == "" {
		stub = string(models.RoleProfessor)
	}
	cfg.StubRole, _ = models.ParseRole(stub)

	if v := getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("SESSION_TTL must be a positive duration, got %q", v)
		}
		cfg.SessionTTL = ttl
	}

	return cfg, nil
}
