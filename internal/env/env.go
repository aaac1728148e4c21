package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads the given dotenv files into the process environment.
// Missing files are ignored, variables already set are not overridden.
func LoadEnv(filenames ...string) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, f := range filenames {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

func GetString(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}

	return val
}

func GetFloat(key string, fallback float64) float64 {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	valAsFloat, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}

	return valAsFloat
}
