package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port      string
	ClientURL string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// GitHub OAuth configuration
	GitHubClientID     string
	GitHubClientSecret string
	GitHubCallbackURL  string
	SessionSecret      string

	// Published content repository configuration
	GitHubRepo      string // "owner/repo"
	GitHubToken     string
	GitHubBranch    string
	TourDataPath    string
	ScreenshotsPath string
}

// Load loads configuration from the environment, reading a .env file first
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "3001"),
		ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
		DBType:             getEnv("DB_TYPE", "sqlite"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "3306"),
		DBDatabase:         getEnv("DB_DATABASE", "tourcms.db"),
		DBUser:             getEnv("DB_USER", ""),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:  getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		GitHubClientID:     getEnv("GITHUB_CLIENT_ID", ""),
		GitHubClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
		GitHubCallbackURL:  getEnv("GITHUB_CALLBACK_URL", "http://localhost:3001/api/auth/github/callback"),
		SessionSecret:      getEnv("SESSION_SECRET", "dev-secret-change-in-production"),
		GitHubRepo:         getEnv("GITHUB_REPO", ""),
		GitHubToken:        getEnv("GITHUB_TOKEN", ""),
		GitHubBranch:       getEnv("GITHUB_BRANCH", "main"),
		TourDataPath:       getEnv("TOUR_DATA_PATH", "apps/tour/src/data/tourData.json"),
		ScreenshotsPath:    getEnv("SCREENSHOTS_PATH", "public/screenshots"),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBType != "sqlite" && cfg.DBUser == "" {
		return nil, fmt.Errorf("DB_USER is required for %s", cfg.DBType)
	}
	if cfg.GitHubRepo != "" && !strings.Contains(cfg.GitHubRepo, "/") {
		return nil, fmt.Errorf("GITHUB_REPO must be in owner/repo form, got %q", cfg.GitHubRepo)
	}

	return cfg, nil
}

// RepoOwnerName splits GITHUB_REPO into its owner and repository parts.
func (c *Config) RepoOwnerName() (string, string) {
	owner, name, _ := strings.Cut(c.GitHubRepo, "/")
	return owner, name
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
