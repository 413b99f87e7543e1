package services_test

import (
	"testing"

	"github.com/gobodhi/tour-cms/internal/config"
	"github.com/gobodhi/tour-cms/internal/services"
)

func TestHealthCheck(t *testing.T) {
	db := setupTestDB(t)

	result := services.HealthCheck(&config.Config{DBType: "sqlite"}, db)
	if result.Status != "ok" {
		t.Errorf("Expected ok status, got %s (%s)", result.Status, result.ErrorMessage)
	}
	if result.Database != "ok" {
		t.Errorf("Expected database ok, got %s", result.Database)
	}
	if result.Timestamp == "" {
		t.Error("Expected a timestamp")
	}
}
