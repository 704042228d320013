package config

import (
	"os"
	"strconv"
)

// Config carries the environment-driven settings of the service.
//
// Supported env vars (local-friendly defaults):
//   - PORT (default: 8080)
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - DOCUMENTS_TABLE (default: invoice_documents, read by the repository)
//   - SEED_ON_START (default: true)
//   - LOG_LEVEL (default: info), LOG_FORMAT (console|json, default: console)
type Config struct {
	Port int

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	SeedOnStart bool

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	return &Config{
		Port:               getEnvInt("PORT", 8080),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		SeedOnStart:        getEnvBool("SEED_ON_START", true),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "console"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
