package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/candy/internal/storage"
)

const DefaultDataFile = "data/candy.txt"

type RuntimeConfig struct {
	DataFile     string
	Store        storage.Kind
	StrictEvents bool
	Plain        bool
	Verbose      bool
	HistoryLimit int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DataFile:     DefaultDataFile,
		Store:        storage.KindFile,
		StrictEvents: false,
		Plain:        false,
		Verbose:      false,
		HistoryLimit: 200,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("CANDY_DATA_FILE")); v != "" {
		cfg.DataFile = v
	}
	if v := storage.Kind(strings.ToLower(strings.TrimSpace(os.Getenv("CANDY_STORE")))); v.IsValid() {
		cfg.Store = v
	}
	if v, ok := getEnvBool("CANDY_STRICT_EVENTS"); ok {
		cfg.StrictEvents = v
	}
	if v, ok := getEnvBool("CANDY_PLAIN"); ok {
		cfg.Plain = v
	}
	if v, ok := getEnvBool("CANDY_VERBOSE"); ok {
		cfg.Verbose = v
	}
	if v, ok := getEnvInt("CANDY_HISTORY_LIMIT"); ok && v > 0 {
		cfg.HistoryLimit = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
