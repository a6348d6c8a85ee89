package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vantagecare/practice-backend/internal/pkg/logger"
	"github.com/vantagecare/practice-backend/internal/utils"
)

type Config struct {
	JWTSecretKey   string        `yaml:"jwt_secret_key"`
	AccessTokenTTL time.Duration `yaml:"-"`
	Port           string        `yaml:"port"`
	AllowOrigins   []string      `yaml:"allow_origins"`
}

// LoadConfig reads from the environment, then lets an optional CONFIG_FILE
// yaml override individual fields. Env stays authoritative for secrets.
func LoadConfig(log *logger.Logger) (Config, error) {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)

	cfg := Config{
		JWTSecretKey:   jwtSecretKey,
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
		Port:           utils.GetEnv("PORT", "8080", log),
	}

	path := strings.TrimSpace(os.Getenv("CONFIG_FILE"))
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	var overrides Config
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	if overrides.Port != "" {
		cfg.Port = overrides.Port
	}
	if len(overrides.AllowOrigins) > 0 {
		cfg.AllowOrigins = overrides.AllowOrigins
	}
	if overrides.JWTSecretKey != "" && cfg.JWTSecretKey == "defaultsecret" {
		cfg.JWTSecretKey = overrides.JWTSecretKey
	}
	return cfg, nil
}
