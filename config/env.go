package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env into the process environment. A missing file is not an
// error; variables may come from the shell or the container instead.
func LoadEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// GetEnv returns the value of key, or def when it is unset or empty.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
