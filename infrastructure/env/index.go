package env

import (
	"os"
	"time"

	"biogate.io/infrastructure/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		logger.Info("error loading env variables")
	}
}

// Int reads key as an integer, falling back to def when unset or unparsable.
func Int(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	val, err := cast.ToIntE(raw)
	if err != nil {
		logger.Warning("invalid integer env variable, using default", logger.LoggerOptions{
			Key:  "key",
			Data: key,
		}, logger.LoggerOptions{
			Key:  "default",
			Data: def,
		})
		return def
	}
	return val
}

// Duration accepts Go duration strings ("5s", "1h") or a bare number of seconds.
func Duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	if seconds, err := cast.ToIntE(raw); err == nil {
		return time.Duration(seconds) * time.Second
	}
	val, err := cast.ToDurationE(raw)
	if err != nil || val <= 0 {
		logger.Warning("invalid duration env variable, using default", logger.LoggerOptions{
			Key:  "key",
			Data: key,
		}, logger.LoggerOptions{
			Key:  "default",
			Data: def.String(),
		})
		return def
	}
	return val
}

func String(key string, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
