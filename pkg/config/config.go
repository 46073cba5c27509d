package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"login-backend/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	Stage       string
	LogLevel    logger.LogLevel
	Port        string
	DebugMode   bool
	FrontendURL string
	// Database
	DatabaseDriver string
	DatabaseURL    string
	// Crypto
	SaltRounds int
	// Tokens
	AccessTokenSecret      string
	RefreshTokenSecret     string
	AccessTokenExpiration  int
	RefreshTokenExpiration int
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

// Loads the default configuration values.
// It reads the environment variables from the .env file, if present,
// and returns a Config struct with the loaded values.
func LoadDefaultConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Error loading .env file: ", err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		// Application
		Stage:       getEnv("STAGE", "development"),
		LogLevel:    logger.LogLevel(getEnv("LOG_LEVEL", "DEBUG")),
		Port:        getEnv("PORT", "4000"),
		DebugMode:   getEnv("DEBUG_MODE", "false") == "true",
		FrontendURL: getEnv("FRONTEND_URL", ""),
		// Database
		DatabaseDriver: getEnv("DATABASE_DRIVER", "mysql"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		// Crypto
		SaltRounds: getEnvInt("SALT_OR_ROUNDS", 10),
		// Tokens
		AccessTokenSecret:      getEnv("ACCESS_TOKEN_SECRET", ""),
		RefreshTokenSecret:     getEnv("REFRESH_TOKEN_SECRET", ""),
		AccessTokenExpiration:  getEnvInt("ACCESS_TOKEN_EXPIRATION_TIME", 60*60),         // 1 hour
		RefreshTokenExpiration: getEnvInt("REFRESH_TOKEN_EXPIRATION_TIME", 60*60*24*7), // 1 week
	}
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpiration) * time.Second
}

func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenExpiration) * time.Second
}

// Validate returns a list of problems with the configuration.
// An empty list means the configuration can issue tokens.
func (c *Config) Validate() []string {
	var problems []string
	if c.AccessTokenSecret == "" {
		problems = append(problems, "ACCESS_TOKEN_SECRET is not set")
	}
	if c.RefreshTokenSecret == "" {
		problems = append(problems, "REFRESH_TOKEN_SECRET is not set")
	}
	if c.AccessTokenSecret != "" && c.AccessTokenSecret == c.RefreshTokenSecret {
		problems = append(problems, "ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
	}
	if c.AccessTokenExpiration <= 0 {
		problems = append(problems, "ACCESS_TOKEN_EXPIRATION_TIME must be positive")
	}
	if c.RefreshTokenExpiration <= 0 {
		problems = append(problems, "REFRESH_TOKEN_EXPIRATION_TIME must be positive")
	}
	if c.DatabaseDriver != "mysql" && c.DatabaseDriver != "postgres" {
		problems = append(problems, fmt.Sprintf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver))
	}
	return problems
}
