package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	StartingStake int
}

// Load reads an optional .env file and then the environment. The
// starting stake is what every player joins with; it must be positive.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:          getEnv("ADDR", ":8080"),
		StartingStake: 100,
	}

	if v := os.Getenv("STARTING_STAKE"); v != "" {
		stake, err := strconv.Atoi(v)
		if err != nil || stake <= 0 {
			return Config{}, errors.New("invalid STARTING_STAKE")
		}
		cfg.StartingStake = stake
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
