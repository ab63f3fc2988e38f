package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr          string        `envconfig:"ADDR" default:":8080"`
	MongoURI      string        `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string        `envconfig:"MONGODB_DATABASE" default:"minishop"`

	JWTSecret string        `envconfig:"JWT_SECRET"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"720h"`

	BcryptCost int `envconfig:"BCRYPT_COST" default:"12"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
