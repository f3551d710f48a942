package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port        string
	Env         string
	CORSOrigins []string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Client / reporting
	APIBaseURL     string
	RequestTimeout time.Duration
	ReportYear     int
	ReportTopN     int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		CORSOrigins: parseList(getEnv("CORS_ORIGINS", "*")),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "targetrack"),
		DBPassword: getEnv("DB_PASSWORD", "targetrack"),
		DBName:     getEnv("DB_NAME", "targetrack"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		APIBaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080/api"), "/"),
	}

	timeout, err := parseTimeout(os.Getenv("REQUEST_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	config.RequestTimeout = timeout

	year, err := parseInt("REPORT_YEAR", os.Getenv("REPORT_YEAR"), time.Now().Year())
	if err != nil {
		return nil, err
	}
	config.ReportYear = year

	topN, err := parseInt("REPORT_TOP_N", os.Getenv("REPORT_TOP_N"), 5)
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		return nil, fmt.Errorf("REPORT_TOP_N must be positive, got %d", topN)
	}
	config.ReportTopN = topN

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 10 * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %v", d)
	}
	return d, nil
}

func parseInt(key, s string, defaultVal int) (int, error) {
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return v, nil
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
