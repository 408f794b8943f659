package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string `env:"JWT_SECRET"`
	// ProvisioningSecret gates the bootstrap admin-creation path.
	// Leaving it unset disables that path entirely.
	ProvisioningSecret string `env:"PROVISIONING_SECRET"`

	Mongo MongoConfig
	Redis RedisConfig
	Email EmailConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=client_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// EmailConfig carries the SMTP settings. Missing user or password
// switches the notifier into simulation mode rather than failing.
type EmailConfig struct {
	Host string `env:"EMAIL_HOST, default=smtp.gmail.com"`
	Port int    `env:"EMAIL_PORT, default=587"`
	User string `env:"EMAIL_USER"`
	Pass string `env:"EMAIL_PASS"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
