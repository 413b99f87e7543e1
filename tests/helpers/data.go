package helpers

import (
	"testing"

	"github.com/gobodhi/tour-cms/internal/models"
	"gorm.io/gorm"
)

// ContentTree is the set of ids created by SeedContentTree
type ContentTree struct {
	Role     *models.Role
	Topic    *models.Topic
	Screen   *models.Screen
	Hotspots []*models.Hotspot
}

// SeedContentTree creates one role, one topic with one screen and two
// hotspots, in display order
func SeedContentTree(t *testing.T, db *gorm.DB) *ContentTree {
	t.Helper()

	role := &models.Role{
		Name:              "Property Manager",
		Icon:              "building",
		RecommendedTopics: []string{},
		Order:             1,
	}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("Failed to create role: %v", err)
	}

	topic := &models.Topic{Name: "Dashboard Overview", Icon: "folder", Order: 1}
	if err := db.Create(topic).Error; err != nil {
		t.Fatalf("Failed to create topic: %v", err)
	}

	screen := &models.Screen{TopicID: topic.ID, Title: "Main Dashboard", Order: 1}
	if err := db.Create(screen).Error; err != nil {
		t.Fatalf("Failed to create screen: %v", err)
	}

	tree := &ContentTree{Role: role, Topic: topic, Screen: screen}
	for i, title := range []string{"Energy Widget", "Alert Feed"} {
		hotspot := &models.Hotspot{
			ScreenID: screen.ID,
			Title:    title,
			X:        float64(10 + i*20),
			Y:        float64(20 + i*20),
			Order:    i + 1,
		}
		if err := db.Create(hotspot).Error; err != nil {
			t.Fatalf("Failed to create hotspot: %v", err)
		}
		tree.Hotspots = append(tree.Hotspots, hotspot)
	}

	return tree
}

// CreateTestUser creates a CMS editor row
func CreateTestUser(t *testing.T, db *gorm.DB, githubID int64, username string) *models.User {
	t.Helper()

	user := &models.User{
		GitHubID:       githubID,
		GitHubUsername: username,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}
