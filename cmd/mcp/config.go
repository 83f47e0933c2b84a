package main

import "os"

// Config holds environment-based configuration for the MCP server. The tools
// inspect a single account: the one the configured profile resolves to.
type Config struct {
	AWSRegion  string
	AWSProfile string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		AWSRegion:  getEnvOrDefault("AWS_REGION", "us-east-1"),
		AWSProfile: os.Getenv("AWS_PROFILE"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
