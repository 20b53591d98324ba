package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	// GrammarPath is a .cfg or .yaml grammar file. Empty means the built-in
	// grammar
	GrammarPath string
	LogLevel    string
	MaxTrees    int
	ChunkLabel  string
	Debug       bool
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	maxTrees, err := getEnvInt("NPCHUNK_MAX_TREES", 0)
	if err != nil {
		return nil, err
	}
	debug, err := getEnvBool("NPCHUNK_DEBUG", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		GrammarPath: getEnv("NPCHUNK_GRAMMAR", ""),
		LogLevel:    getEnv("NPCHUNK_LOG_LEVEL", "info"),
		MaxTrees:    maxTrees,
		ChunkLabel:  getEnv("NPCHUNK_CHUNK_LABEL", "NP"),
		Debug:       debug,
	}, nil
}

func (c *Config) Validate() error {
	if c.MaxTrees < 0 {
		return errors.Errorf("NPCHUNK_MAX_TREES must not be negative, got %d", c.MaxTrees)
	}
	if strings.TrimSpace(c.ChunkLabel) == "" {
		return errors.New("NPCHUNK_CHUNK_LABEL must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "%s", key)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(err, "%s", key)
	}
	return b, nil
}
