package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	GinMode  string `env:"GIN_MODE,  default=debug"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DB  DBConfig
	JWT JWTConfig
}

type DBConfig struct {
	Driver   string `env:"DB_DRIVER,   default=mysql"`
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=3306"`
	User     string `env:"DB_USER,     default=taskuser"`
	Password string `env:"DB_PASSWORD, default=taskpassword"`
	Name     string `env:"DB_NAME,     default=task_management"`
}

type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET,   required"`
	Issuer   string        `env:"JWT_ISSUER,   default=task-management-api"`
	Audience string        `env:"JWT_AUDIENCE, default=task-management-client"`
	TTL      time.Duration `env:"JWT_TTL,      default=1h"`
}

// Load reads configuration from environment variables once at startup.
// The JWT signing secret has no default on purpose.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
