// internal/config/config.go
//
// Environment-driven configuration shared by the server and the CLI.
//
// Load reads an optional .env file (godotenv) and then the process
// environment. Every setting has a default so both binaries run with no
// configuration at all.
//
// Environment variables:
//   PORT               HTTP port (5175)
//   LOG_LEVEL          zerolog level name (info)
//   LOG_FORMAT         "json" or "console" (json)
//   WORDS_FILE         newline-delimited dictionary; embedded list when empty
//   DB_PATH            SQLite dictionary database; unused when empty
//   JWT_SECRET         HMAC key for session tokens
//   SESSION_TOKEN_TTL  lifetime of a session token (2h)
//   SESSION_TTL        idle time before a solve session is swept (2h)
//   CLIENT_ORIGIN      allowed CORS origin (http://localhost:5173)
//   RATE_LIMIT_RPS     per-client requests per second (5)
//   RATE_LIMIT_BURST   per-client burst (10)
//   DAILY_SALT         salt for the daily secret (local_dev_salt)

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds runtime settings.
type Config struct {
	Port            string
	LogLevel        string
	LogFormat       string
	WordsFile       string
	DBPath          string
	JWTSecret       string
	SessionTokenTTL time.Duration
	SessionTTL      time.Duration
	ClientOrigin    string
	RateLimitRPS    int
	RateLimitBurst  int
	DailySalt       string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment without touching .env files.
func FromEnv() Config {
	return Config{
		Port:            getEnv("PORT", "5175"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		WordsFile:       os.Getenv("WORDS_FILE"),
		DBPath:          os.Getenv("DB_PATH"),
		JWTSecret:       getEnv("JWT_SECRET", "dev_secret_change_me"),
		SessionTokenTTL: getEnvDuration("SESSION_TOKEN_TTL", 2*time.Hour),
		SessionTTL:      getEnvDuration("SESSION_TTL", 2*time.Hour),
		ClientOrigin:    getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		RateLimitRPS:    getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 10),
		DailySalt:       getEnv("DAILY_SALT", "local_dev_salt"),
	}
}

// SetupLogging applies the level and output format to the global zerolog logger.
// An unknown level leaves the current global level unchanged.
func SetupLogging(level, format string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", level).Msg("unknown log level")
	}
	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt reads an int from the environment or returns def.
func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("invalid int, using default")
		return def
	}
	return n
}

// getEnvDuration reads a time.Duration from the environment or returns def.
func getEnvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Dur("default", def).Msg("invalid duration, using default")
		return def
	}
	return d
}
