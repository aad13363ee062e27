package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogMode         string
	ServerPort      string
	ExtractEndpoint string
	ResolveTimeout  time.Duration
	PreviewDir      string
	MaxBatchSize    int
}

const (
	defaultResolveTimeoutSeconds = 10
	defaultPreviewDir            = "./previews"
	defaultMaxBatchSize          = 20
)

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	}

	return nil
}

func validateEnv() error {
	return checkEnv([]string{
		"LOG_MODE",
		"SERVER_PORT",
	})
}

func intEnv(name string, fallback int) (int, error) {
	raw, exists := os.LookupEnv(name)
	if !exists || raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, value)
	}
	return value, nil
}

func LoadConfig(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load configuration file: %w", err)
		}
	}

	if err := validateEnv(); err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	timeoutSeconds, err := intEnv("RESOLVE_TIMEOUT_SECONDS", defaultResolveTimeoutSeconds)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	maxBatchSize, err := intEnv("MAX_BATCH_SIZE", defaultMaxBatchSize)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	serverPort := os.Getenv("SERVER_PORT")

	extractEndpoint := os.Getenv("EXTRACT_ENDPOINT")
	if extractEndpoint == "" {
		// The service consumes its own extraction endpoint unless pointed
		// elsewhere.
		extractEndpoint = fmt.Sprintf("http://127.0.0.1:%s/api/v1/drive/extract-title", serverPort)
	}

	previewDir := os.Getenv("PREVIEW_DIR")
	if previewDir == "" {
		previewDir = defaultPreviewDir
	}

	return &Config{
		LogMode:         os.Getenv("LOG_MODE"),
		ServerPort:      serverPort,
		ExtractEndpoint: extractEndpoint,
		ResolveTimeout:  time.Duration(timeoutSeconds) * time.Second,
		PreviewDir:      previewDir,
		MaxBatchSize:    maxBatchSize,
	}, nil
}
