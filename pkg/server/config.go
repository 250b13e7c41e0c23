package server

import (
	"os"
	"strconv"
)

// Config holds the server settings, read from the environment.
type Config struct {
	Addr           string
	MaxUploadBytes int64
	MaxParseDepth  int
}

// LoadConfig reads the configuration from environment variables, falling
// back to defaults. A .env file, if any, is loaded by the entrypoint before
// this runs.
func LoadConfig() Config {
	return Config{
		Addr:           getenv("JATSVERIFY_ADDR", ":8080"),
		MaxUploadBytes: getInt64("JATSVERIFY_MAX_UPLOAD", 32<<20),
		MaxParseDepth:  getInt("JATSVERIFY_MAX_DEPTH", 0),
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getInt64(key string, def int64) int64 {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}
