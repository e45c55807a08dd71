package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Models   ModelsConfig
	OCR      OCRConfig
	Workbook WorkbookConfig
	Batch    BatchConfig
}

// ModelsConfig holds the external classification model commands.
type ModelsConfig struct {
	ClassifierCmd string
	FreshnessCmd  string
	Timeout       time.Duration
}

// OCRConfig holds the external OCR engine configuration.
type OCRConfig struct {
	Command  string
	Language string
	Timeout  time.Duration
}

// WorkbookConfig holds the output workbook paths.
type WorkbookConfig struct {
	PackedPath   string
	UnpackedPath string
}

// BatchConfig holds batch-processing behavior.
type BatchConfig struct {
	Workers int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Models: ModelsConfig{
			ClassifierCmd: getEnv("CLASSIFIER_CMD", "shelftrack-classify"),
			FreshnessCmd:  getEnv("FRESHNESS_CMD", "shelftrack-freshness"),
			Timeout:       getEnvAsDuration("MODEL_TIMEOUT", 60*time.Second),
		},
		OCR: OCRConfig{
			Command:  getEnv("OCR_CMD", "shelftrack-ocr"),
			Language: getEnv("OCR_LANG", "en"),
			Timeout:  getEnvAsDuration("OCR_TIMEOUT", 90*time.Second),
		},
		Workbook: WorkbookConfig{
			PackedPath:   getEnv("PACKED_XLSX", "packed_product_data.xlsx"),
			UnpackedPath: getEnv("UNPACKED_XLSX", "unpacked_product_data.xlsx"),
		},
		Batch: BatchConfig{
			Workers: getEnvAsInt("BATCH_WORKERS", 4),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Models.ClassifierCmd == "" {
		return NewAppError("CONFIG_ERROR", "CLASSIFIER_CMD is required", ErrInvalidInput)
	}
	if c.OCR.Command == "" {
		return NewAppError("CONFIG_ERROR", "OCR_CMD is required", ErrInvalidInput)
	}
	if c.Workbook.PackedPath == "" || c.Workbook.UnpackedPath == "" {
		return NewAppError("CONFIG_ERROR", "workbook paths are required", ErrInvalidInput)
	}
	if c.Batch.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "BATCH_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}
