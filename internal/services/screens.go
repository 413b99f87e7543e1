package services

import (
	"errors"

	"github.com/gobodhi/tour-cms/internal/models"
	"github.com/gobodhi/tour-cms/internal/types"
	"gorm.io/gorm"
)

// ScreenInput carries a partial screen payload.
type ScreenInput struct {
	TopicID   *string `json:"topicId"`
	Title     *string `json:"title"`
	ImagePath *string `json:"imagePath"`
	Order     *int    `json:"order"`
}

// ListScreensByTopic returns a topic's screens in display order.
func ListScreensByTopic(db *gorm.DB, topicID string) ([]models.Screen, error) {
	var screens []models.Screen
	if err := db.Where("topic_id = ?", topicID).
		Order("display_order asc").Find(&screens).Error; err != nil {
		return nil, err
	}
	return screens, nil
}

// GetScreen returns one screen by id.
func GetScreen(db *gorm.DB, id string) (*models.Screen, error) {
	var screen models.Screen
	if err := db.First(&screen, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Screen")
		}
		return nil, err
	}
	return &screen, nil
}

// CreateScreen persists a new screen at the end of its topic's sequence.
func CreateScreen(db *gorm.DB, in ScreenInput) (*models.Screen, error) {
	if in.TopicID == nil || *in.TopicID == "" {
		return nil, types.BadRequest("topicId is required")
	}
	if in.Title == nil || *in.Title == "" {
		return nil, types.BadRequest("title is required")
	}
	if _, err := GetTopic(db, *in.TopicID); err != nil {
		return nil, err
	}

	maxOrder, err := maxOrderIn(db, &models.Screen{}, "topic_id", *in.TopicID)
	if err != nil {
		return nil, err
	}

	screen := models.Screen{
		TopicID: *in.TopicID,
		Title:   *in.Title,
		Order:   maxOrder + 1,
	}
	if in.ImagePath != nil {
		screen.ImagePath = *in.ImagePath
	}

	if err := db.Create(&screen).Error; err != nil {
		return nil, err
	}
	return &screen, nil
}

// UpdateScreen applies the non-nil fields of the input to an existing screen.
func UpdateScreen(db *gorm.DB, id string, in ScreenInput) (*models.Screen, error) {
	screen, err := GetScreen(db, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		screen.Title = *in.Title
	}
	if in.ImagePath != nil {
		screen.ImagePath = *in.ImagePath
	}
	if in.Order != nil {
		screen.Order = *in.Order
	}

	if err := db.Save(screen).Error; err != nil {
		return nil, err
	}
	return screen, nil
}

// DeleteScreen removes a screen and its hotspots in one transaction.
func DeleteScreen(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var screen models.Screen
		if err := tx.First(&screen, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Screen")
			}
			return err
		}

		if err := tx.Delete(&models.Hotspot{}, "screen_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&screen).Error
	})
}
