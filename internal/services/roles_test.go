package services_test

import (
	"testing"

	"github.com/gobodhi/tour-cms/internal/models"
	"github.com/gobodhi/tour-cms/internal/services"
)

// TestCreateRoleAssignsNextOrder verifies new siblings append at max+1
func TestCreateRoleAssignsNextOrder(t *testing.T) {
	db := setupTestDB(t)

	first := createTestRole(t, db, "Property Manager")
	second := createTestRole(t, db, "Hotel Operator")
	third := createTestRole(t, db, "Systems Integrator")

	if first.Order >= second.Order || second.Order >= third.Order {
		t.Errorf("Expected strictly increasing order, got %d, %d, %d",
			first.Order, second.Order, third.Order)
	}

	roles, err := services.ListRoles(db)
	if err != nil {
		t.Fatalf("Failed to list roles: %v", err)
	}
	if len(roles) != 3 {
		t.Fatalf("Expected 3 roles, got %d", len(roles))
	}
	if roles[0].Name != "Property Manager" || roles[2].Name != "Systems Integrator" {
		t.Errorf("Expected display order, got %s ... %s", roles[0].Name, roles[2].Name)
	}
}

// TestCreateRoleOrderSurvivesDeletion verifies a new role lands after the
// remaining highest order, not in a reused slot
func TestCreateRoleOrderSurvivesDeletion(t *testing.T) {
	db := setupTestDB(t)

	createTestRole(t, db, "First")
	second := createTestRole(t, db, "Second")
	third := createTestRole(t, db, "Third")

	if err := services.DeleteRole(db, second.ID); err != nil {
		t.Fatalf("Failed to delete role: %v", err)
	}

	fourth := createTestRole(t, db, "Fourth")
	if fourth.Order <= third.Order {
		t.Errorf("Expected order above %d, got %d", third.Order, fourth.Order)
	}
}

// TestCreateRoleDefaultsRecommendedTopics verifies a role created without
// recommendations stores an empty list rather than NULL
func TestCreateRoleDefaultsRecommendedTopics(t *testing.T) {
	db := setupTestDB(t)

	role := createTestRole(t, db, "Manager")
	if role.RecommendedTopics == nil {
		t.Fatal("Expected an empty recommendation list, got nil")
	}

	var stored models.Role
	if err := db.First(&stored, "id = ?", role.ID).Error; err != nil {
		t.Fatalf("Failed to reload role: %v", err)
	}
	if stored.RecommendedTopics == nil || len(stored.RecommendedTopics) != 0 {
		t.Errorf("Expected an empty stored list, got %v", stored.RecommendedTopics)
	}
}

func TestCreateRoleRequiresName(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.CreateRole(db, services.RoleInput{})
	assertErrorCode(t, err, 400)

	_, err = services.CreateRole(db, services.RoleInput{Name: strPtr("")})
	assertErrorCode(t, err, 400)
}

// TestUpdateRolePartial verifies nil input fields leave existing values alone
func TestUpdateRolePartial(t *testing.T) {
	db := setupTestDB(t)

	role, err := services.CreateRole(db, services.RoleInput{
		Name:        strPtr("Manager"),
		Description: strPtr("Runs the building"),
		Icon:        strPtr("building"),
	})
	if err != nil {
		t.Fatalf("Failed to create role: %v", err)
	}

	updated, err := services.UpdateRole(db, role.ID, services.RoleInput{
		Description: strPtr("Runs the whole portfolio"),
	})
	if err != nil {
		t.Fatalf("Failed to update role: %v", err)
	}

	if updated.Name != "Manager" {
		t.Errorf("Expected name unchanged, got %s", updated.Name)
	}
	if updated.Icon != "building" {
		t.Errorf("Expected icon unchanged, got %s", updated.Icon)
	}
	if updated.Description != "Runs the whole portfolio" {
		t.Errorf("Expected updated description, got %s", updated.Description)
	}
}

func TestUpdateRoleRecommendedTopics(t *testing.T) {
	db := setupTestDB(t)

	role := createTestRole(t, db, "Operator")
	topics := []string{"topic-a", "topic-b"}

	updated, err := services.UpdateRole(db, role.ID, services.RoleInput{
		RecommendedTopics: &topics,
	})
	if err != nil {
		t.Fatalf("Failed to update role: %v", err)
	}

	var stored models.Role
	if err := db.First(&stored, "id = ?", role.ID).Error; err != nil {
		t.Fatalf("Failed to reload role: %v", err)
	}
	if len(stored.RecommendedTopics) != 2 || stored.RecommendedTopics[0] != "topic-a" {
		t.Errorf("Expected recommended topics persisted, got %v", stored.RecommendedTopics)
	}
	if len(updated.RecommendedTopics) != 2 {
		t.Errorf("Expected recommended topics in result, got %v", updated.RecommendedTopics)
	}
}

func TestGetRoleNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.GetRole(db, "no-such-role")
	assertErrorCode(t, err, 404)
}

func TestDeleteRoleNotFound(t *testing.T) {
	db := setupTestDB(t)

	err := services.DeleteRole(db, "no-such-role")
	assertErrorCode(t, err, 404)
}

// TestReorderRoles verifies list position becomes the new display order
func TestReorderRoles(t *testing.T) {
	db := setupTestDB(t)

	a := createTestRole(t, db, "A")
	b := createTestRole(t, db, "B")
	c := createTestRole(t, db, "C")

	if err := services.ReorderRoles(db, []string{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("Failed to reorder roles: %v", err)
	}

	roles, err := services.ListRoles(db)
	if err != nil {
		t.Fatalf("Failed to list roles: %v", err)
	}

	expected := []string{"C", "A", "B"}
	for i, name := range expected {
		if roles[i].Name != name {
			t.Errorf("Expected %s at position %d, got %s", name, i, roles[i].Name)
		}
	}
}

// TestReorderRolesUnknownIDRollsBack verifies a bad id leaves every order
// untouched
func TestReorderRolesUnknownIDRollsBack(t *testing.T) {
	db := setupTestDB(t)

	a := createTestRole(t, db, "A")
	b := createTestRole(t, db, "B")

	err := services.ReorderRoles(db, []string{b.ID, "no-such-role", a.ID})
	assertErrorCode(t, err, 404)

	roles, err := services.ListRoles(db)
	if err != nil {
		t.Fatalf("Failed to list roles: %v", err)
	}
	if roles[0].Name != "A" || roles[1].Name != "B" {
		t.Errorf("Expected original order preserved, got %s, %s", roles[0].Name, roles[1].Name)
	}
	if roles[0].Order != a.Order || roles[1].Order != b.Order {
		t.Errorf("Expected order values unchanged, got %d, %d", roles[0].Order, roles[1].Order)
	}
}
