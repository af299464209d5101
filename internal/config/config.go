package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	JWTSecret string
	TokenTTL  time.Duration

	// SavingsPercent is the share of an income transaction allocated to a
	// referenced goal. Passed into the allocator explicitly so the core
	// stays free of hidden defaults.
	SavingsPercent decimal.Decimal

	OperatorWorkers int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		JWTSecret:        "local-dev-secret",
		TokenTTL:         30 * 24 * time.Hour,
		SavingsPercent:   decimal.NewFromInt(10),
		OperatorWorkers:  4,
	}

	if v := os.Getenv("PORT"); v != "" {
		env.Port = v
	}
	if v := os.Getenv("POSTGRES_ADDRESS"); v != "" {
		env.PostgresAddress = v
	}
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		env.PostgresPort = v
	}
	if v := os.Getenv("POSTGRES_DB"); v != "" {
		env.PostgresDB = v
	}
	if v := os.Getenv("POSTGRES_USERNAME"); v != "" {
		env.PostgresUsername = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		env.PostgresPassword = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		env.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		env.TokenTTL = ttl
	}
	if v := os.Getenv("SAVINGS_PERCENT"); v != "" {
		percent, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SAVINGS_PERCENT %q: %w", v, err)
		}
		if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("SAVINGS_PERCENT %q outside [0,100]", v)
		}
		env.SavingsPercent = percent
	}
	if v := os.Getenv("OPERATOR_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q", v)
		}
		env.OperatorWorkers = workers
	}

	return &env, nil
}

// PostgresURL builds the connection string used by both the pool and the
// migration runner.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
