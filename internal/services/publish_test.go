package services_test

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gobodhi/tour-cms/internal/models"
	"github.com/gobodhi/tour-cms/internal/services"
	"github.com/gobodhi/tour-cms/internal/tour"
)

// TestExportTourDocument verifies the denormalized snapshot shape and
// ordering
func TestExportTourDocument(t *testing.T) {
	db := setupTestDB(t)

	role := createTestRole(t, db, "Manager")
	topic := createTestTopic(t, db, "Dashboard")
	screen := createTestScreen(t, db, topic.ID, "Overview")
	h1 := createTestHotspot(t, db, screen.ID, "First", 10, 20)
	h2 := createTestHotspot(t, db, screen.ID, "Second", 30, 40)
	services.ReorderHotspots(db, []string{h2.ID, h1.ID})

	doc, err := services.ExportTourDocument(db)
	if err != nil {
		t.Fatalf("Failed to export: %v", err)
	}

	if len(doc.Roles) != 1 || doc.Roles[0].ID != role.ID {
		t.Fatalf("Expected 1 role, got %d", len(doc.Roles))
	}
	if len(doc.Topics) != 1 || len(doc.Topics[0].Screens) != 1 {
		t.Fatal("Expected the topic with its screen embedded")
	}

	hotspots := doc.Topics[0].Screens[0].Hotspots
	if len(hotspots) != 2 {
		t.Fatalf("Expected 2 hotspots, got %d", len(hotspots))
	}
	if hotspots[0].Title != "Second" || hotspots[1].Title != "First" {
		t.Errorf("Expected hotspots in display order, got %s, %s",
			hotspots[0].Title, hotspots[1].Title)
	}

	// No cta setting configured: the default applies
	if doc.CTA != tour.DefaultCTA() {
		t.Errorf("Expected default CTA, got %+v", doc.CTA)
	}
}

// TestExportTourDocumentSerializesEmptyRecommendations verifies the
// published document always carries recommendedTopics as an array, even
// for rows written before the empty-list default existed
func TestExportTourDocumentSerializesEmptyRecommendations(t *testing.T) {
	db := setupTestDB(t)

	role := createTestRole(t, db, "Manager")
	if err := db.Model(&models.Role{}).Where("id = ?", role.ID).
		Update("recommended_topics", nil).Error; err != nil {
		t.Fatalf("Failed to null out recommendations: %v", err)
	}

	doc, err := services.ExportTourDocument(db)
	if err != nil {
		t.Fatalf("Failed to export: %v", err)
	}
	if doc.Roles[0].RecommendedTopics == nil {
		t.Fatal("Expected an empty recommendation array, got nil")
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document: %v", err)
	}
	if strings.Contains(string(raw), `"recommendedTopics":null`) {
		t.Error("Published document must not carry a null recommendation list")
	}
}

func TestExportTourDocumentUsesCTASetting(t *testing.T) {
	db := setupTestDB(t)

	custom := tour.CTA{Text: "Talk to sales", URL: "https://example.com/sales"}
	raw, _ := json.Marshal(custom)
	if _, err := services.UpsertSetting(db, "cta", raw); err != nil {
		t.Fatalf("Failed to set cta: %v", err)
	}

	doc, err := services.ExportTourDocument(db)
	if err != nil {
		t.Fatalf("Failed to export: %v", err)
	}
	if doc.CTA != custom {
		t.Errorf("Expected configured CTA, got %+v", doc.CTA)
	}
}

// TestReplaceContentRoundTrip verifies export -> replace -> export yields
// an identical document, and that replacing twice is idempotent
func TestReplaceContentRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	if _, err := services.CreateRole(db, services.RoleInput{
		Name:              strPtr("Manager"),
		Icon:              strPtr("shield"),
		RecommendedTopics: &[]string{"t1"},
	}); err != nil {
		t.Fatalf("Failed to create role: %v", err)
	}
	topic := createTestTopic(t, db, "Dashboard")
	screen := createTestScreen(t, db, topic.ID, "Overview")
	createTestHotspot(t, db, screen.ID, "Alerts", 12.5, 80)

	first, err := services.ExportTourDocument(db)
	if err != nil {
		t.Fatalf("Failed to export: %v", err)
	}

	if _, err := services.ReplaceContent(db, first); err != nil {
		t.Fatalf("Failed to replace content: %v", err)
	}

	second, err := services.ExportTourDocument(db)
	if err != nil {
		t.Fatalf("Failed to re-export: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical documents after round trip:\nfirst:  %+v\nsecond: %+v",
			first, second)
	}

	if _, err := services.ReplaceContent(db, second); err != nil {
		t.Fatalf("Failed second replace: %v", err)
	}
	third, err := services.ExportTourDocument(db)
	if err != nil {
		t.Fatalf("Failed third export: %v", err)
	}
	if !reflect.DeepEqual(second, third) {
		t.Error("Expected replace to be idempotent")
	}
}

// TestReplaceContentDefaults verifies optional fields take documented
// defaults and order is assigned by array position
func TestReplaceContentDefaults(t *testing.T) {
	db := setupTestDB(t)

	doc := &tour.Document{
		Roles: []tour.Role{
			{ID: "r1", Name: "No Icon"},
		},
		Topics: []tour.Topic{
			{ID: "t1", Name: "Second in list"},
			{ID: "t2", Name: "Third in list"},
		},
		CTA: tour.DefaultCTA(),
	}

	result, err := services.ReplaceContent(db, doc)
	if err != nil {
		t.Fatalf("Failed to replace content: %v", err)
	}
	if result.Roles != 1 || result.Topics != 2 {
		t.Errorf("Expected counts {1 role, 2 topics}, got %+v", result)
	}

	var role models.Role
	if err := db.First(&role, "id = ?", "r1").Error; err != nil {
		t.Fatalf("Failed to load role: %v", err)
	}
	if role.Icon != "building" {
		t.Errorf("Expected default role icon, got %s", role.Icon)
	}
	if role.RecommendedTopics == nil || len(role.RecommendedTopics) != 0 {
		t.Errorf("Expected empty recommended topics, got %v", role.RecommendedTopics)
	}

	var topics []models.Topic
	if err := db.Order("display_order asc").Find(&topics).Error; err != nil {
		t.Fatalf("Failed to load topics: %v", err)
	}
	if topics[0].Icon != "folder" {
		t.Errorf("Expected default topic icon, got %s", topics[0].Icon)
	}
	if topics[0].Order != 0 || topics[1].Order != 1 {
		t.Errorf("Expected order by array position, got %d, %d", topics[0].Order, topics[1].Order)
	}
}

// TestReplaceContentDiscardsExisting verifies the old tree is gone after
// an import
func TestReplaceContentDiscardsExisting(t *testing.T) {
	db := setupTestDB(t)

	old := createTestTopic(t, db, "Old Topic")
	screen := createTestScreen(t, db, old.ID, "Old Screen")
	createTestHotspot(t, db, screen.ID, "Old Hotspot", 5, 5)

	doc := &tour.Document{
		Topics: []tour.Topic{{ID: "fresh", Name: "Fresh"}},
		CTA:    tour.DefaultCTA(),
	}
	if _, err := services.ReplaceContent(db, doc); err != nil {
		t.Fatalf("Failed to replace content: %v", err)
	}

	var count int64
	db.Model(&models.Topic{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected only the imported topic, got %d", count)
	}
	db.Model(&models.Hotspot{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected old hotspots removed, got %d", count)
	}
}

// TestPublishHistory verifies the 20 newest records come back first, with
// the user preloaded
func TestPublishHistory(t *testing.T) {
	db := setupTestDB(t)

	user, err := services.EnsureUser(db, 99, "publisher", "")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		record := models.Publish{
			UserID:      user.ID,
			CommitSHA:   fmt.Sprintf("sha-%02d", i),
			PublishedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&record).Error; err != nil {
			t.Fatalf("Failed to create publish record: %v", err)
		}
	}

	history, err := services.PublishHistory(db)
	if err != nil {
		t.Fatalf("Failed to load history: %v", err)
	}
	if len(history) != 20 {
		t.Fatalf("Expected 20 records, got %d", len(history))
	}
	if history[0].CommitSHA != "sha-24" {
		t.Errorf("Expected newest first, got %s", history[0].CommitSHA)
	}
	if history[0].User.GitHubUsername != "publisher" {
		t.Errorf("Expected user preloaded, got %+v", history[0].User)
	}
}
