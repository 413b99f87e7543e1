package services

import (
	"errors"
	"fmt"

	"github.com/gobodhi/tour-cms/internal/models"
	"github.com/gobodhi/tour-cms/internal/types"
	"gorm.io/gorm"
)

// HotspotInput carries a partial hotspot payload.
type HotspotInput struct {
	ScreenID    *string  `json:"screenId"`
	X           *float64 `json:"x"`
	Y           *float64 `json:"y"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	AIPowered   *bool    `json:"aiPowered"`
	Order       *int     `json:"order"`
}

// HotspotPosition is one entry of a batch position update.
type HotspotPosition struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// validateCoordinate enforces the [0,100] percentage bounds at the API
// boundary; the store itself carries no such constraint.
func validateCoordinate(name string, value float64) error {
	if value < 0 || value > 100 {
		return types.BadRequest(fmt.Sprintf("%s must be between 0 and 100, got %g", name, value))
	}
	return nil
}

// ListHotspotsByScreen returns a screen's hotspots in display order.
func ListHotspotsByScreen(db *gorm.DB, screenID string) ([]models.Hotspot, error) {
	var hotspots []models.Hotspot
	if err := db.Where("screen_id = ?", screenID).
		Order("display_order asc").Find(&hotspots).Error; err != nil {
		return nil, err
	}
	return hotspots, nil
}

// GetHotspot returns one hotspot by id.
func GetHotspot(db *gorm.DB, id string) (*models.Hotspot, error) {
	var hotspot models.Hotspot
	if err := db.First(&hotspot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Hotspot")
		}
		return nil, err
	}
	return &hotspot, nil
}

// CreateHotspot persists a new hotspot at the end of its screen's sequence.
func CreateHotspot(db *gorm.DB, in HotspotInput) (*models.Hotspot, error) {
	if in.ScreenID == nil || *in.ScreenID == "" {
		return nil, types.BadRequest("screenId is required")
	}
	if in.Title == nil || *in.Title == "" {
		return nil, types.BadRequest("title is required")
	}
	if in.X == nil || in.Y == nil {
		return nil, types.BadRequest("x and y are required")
	}
	if err := validateCoordinate("x", *in.X); err != nil {
		return nil, err
	}
	if err := validateCoordinate("y", *in.Y); err != nil {
		return nil, err
	}
	if _, err := GetScreen(db, *in.ScreenID); err != nil {
		return nil, err
	}

	maxOrder, err := maxOrderIn(db, &models.Hotspot{}, "screen_id", *in.ScreenID)
	if err != nil {
		return nil, err
	}

	hotspot := models.Hotspot{
		ScreenID: *in.ScreenID,
		X:        *in.X,
		Y:        *in.Y,
		Title:    *in.Title,
		Order:    maxOrder + 1,
	}
	if in.Description != nil {
		hotspot.Description = *in.Description
	}
	if in.AIPowered != nil {
		hotspot.AIPowered = *in.AIPowered
	}

	if err := db.Create(&hotspot).Error; err != nil {
		return nil, err
	}
	return &hotspot, nil
}

// UpdateHotspot applies the non-nil fields of the input to an existing hotspot.
func UpdateHotspot(db *gorm.DB, id string, in HotspotInput) (*models.Hotspot, error) {
	hotspot, err := GetHotspot(db, id)
	if err != nil {
		return nil, err
	}

	if in.X != nil {
		if err := validateCoordinate("x", *in.X); err != nil {
			return nil, err
		}
		hotspot.X = *in.X
	}
	if in.Y != nil {
		if err := validateCoordinate("y", *in.Y); err != nil {
			return nil, err
		}
		hotspot.Y = *in.Y
	}
	if in.Title != nil {
		hotspot.Title = *in.Title
	}
	if in.Description != nil {
		hotspot.Description = *in.Description
	}
	if in.AIPowered != nil {
		hotspot.AIPowered = *in.AIPowered
	}
	if in.Order != nil {
		hotspot.Order = *in.Order
	}

	if err := db.Save(hotspot).Error; err != nil {
		return nil, err
	}
	return hotspot, nil
}

// DeleteHotspot removes a hotspot.
func DeleteHotspot(db *gorm.DB, id string) error {
	result := db.Delete(&models.Hotspot{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return types.NotFound("Hotspot")
	}
	return nil
}

// BatchUpdatePositions moves several hotspots at once, as one
// all-or-nothing transaction. Used by the editor's drag and drop.
func BatchUpdatePositions(db *gorm.DB, updates []HotspotPosition) error {
	for _, u := range updates {
		if err := validateCoordinate("x", u.X); err != nil {
			return err
		}
		if err := validateCoordinate("y", u.Y); err != nil {
			return err
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			var hotspot models.Hotspot
			if err := tx.First(&hotspot, "id = ?", u.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return types.NotFound("Hotspot")
				}
				return err
			}
			if err := tx.Model(&hotspot).
				Updates(map[string]interface{}{"x": u.X, "y": u.Y}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReorderHotspots reassigns display order by position in orderedIDs,
// all-or-nothing.
func ReorderHotspots(db *gorm.DB, orderedIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for index, id := range orderedIDs {
			var hotspot models.Hotspot
			if err := tx.First(&hotspot, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return types.NotFound("Hotspot")
				}
				return err
			}
			if err := tx.Model(&hotspot).Update("display_order", index).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
