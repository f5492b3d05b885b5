package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	BaseURL     string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port     string
	Services map[string]ServiceConfig
}

// LoadConfig loads the gateway configuration. The storefront is a single
// service; STOREFRONT_INSTANCES takes a comma-separated list so several
// replicas can sit behind the round-robin balancer.
func LoadConfig() *GatewayConfig {
	instances := splitInstances(getEnv("STOREFRONT_INSTANCES", getEnv("STOREFRONT_URL", "http://localhost:8080")))

	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Services: map[string]ServiceConfig{
			"storefront": {
				Name:        "storefront",
				BaseURL:     instances[0],
				Instances:   instances,
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
		},
	}
}

func splitInstances(raw string) []string {
	parts := strings.Split(raw, ",")
	instances := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			instances = append(instances, trimmed)
		}
	}
	if len(instances) == 0 {
		instances = []string{"http://localhost:8080"}
	}
	return instances
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
