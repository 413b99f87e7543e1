package services_test

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gobodhi/tour-cms/internal/models"
	"github.com/gobodhi/tour-cms/internal/services"
	"github.com/gobodhi/tour-cms/internal/types"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Role{},
		&models.Topic{},
		&models.Screen{},
		&models.Hotspot{},
		&models.Setting{},
		&models.User{},
		&models.Publish{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func createTestRole(t *testing.T, db *gorm.DB, name string) *models.Role {
	t.Helper()
	role, err := services.CreateRole(db, services.RoleInput{Name: strPtr(name)})
	if err != nil {
		t.Fatalf("Failed to create role %s: %v", name, err)
	}
	return role
}

func createTestTopic(t *testing.T, db *gorm.DB, name string) *models.Topic {
	t.Helper()
	topic, err := services.CreateTopic(db, services.TopicInput{Name: strPtr(name)})
	if err != nil {
		t.Fatalf("Failed to create topic %s: %v", name, err)
	}
	return topic
}

func createTestScreen(t *testing.T, db *gorm.DB, topicID, title string) *models.Screen {
	t.Helper()
	screen, err := services.CreateScreen(db, services.ScreenInput{
		TopicID: strPtr(topicID),
		Title:   strPtr(title),
	})
	if err != nil {
		t.Fatalf("Failed to create screen %s: %v", title, err)
	}
	return screen
}

func createTestHotspot(t *testing.T, db *gorm.DB, screenID, title string, x, y float64) *models.Hotspot {
	t.Helper()
	hotspot, err := services.CreateHotspot(db, services.HotspotInput{
		ScreenID: strPtr(screenID),
		Title:    strPtr(title),
		X:        floatPtr(x),
		Y:        floatPtr(y),
	})
	if err != nil {
		t.Fatalf("Failed to create hotspot %s: %v", title, err)
	}
	return hotspot
}

// assertErrorCode verifies the error carries the expected HTTP status
func assertErrorCode(t *testing.T, err error, code int) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error with code %d, got nil", code)
	}
	var custom *types.CustomError
	if !errors.As(err, &custom) {
		t.Fatalf("Expected CustomError, got %T: %v", err, err)
	}
	if custom.Code != code {
		t.Errorf("Expected error code %d, got %d (%s)", code, custom.Code, custom.Message)
	}
}
