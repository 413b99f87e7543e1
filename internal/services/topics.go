package services

import (
	"errors"

	"github.com/gobodhi/tour-cms/internal/models"
	"github.com/gobodhi/tour-cms/internal/types"
	"gorm.io/gorm"
)

// TopicInput carries a partial topic payload.
type TopicInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}

// ListTopics returns all topics in display order.
func ListTopics(db *gorm.DB) ([]models.Topic, error) {
	var topics []models.Topic
	if err := db.Order("display_order asc").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// GetTopic returns one topic by id.
func GetTopic(db *gorm.DB, id string) (*models.Topic, error) {
	var topic models.Topic
	if err := db.First(&topic, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound("Topic")
		}
		return nil, err
	}
	return &topic, nil
}

// CreateTopic persists a new topic at the end of the display sequence.
func CreateTopic(db *gorm.DB, in TopicInput) (*models.Topic, error) {
	if in.Name == nil || *in.Name == "" {
		return nil, types.BadRequest("name is required")
	}

	maxOrder, err := maxOrderIn(db, &models.Topic{}, "", "")
	if err != nil {
		return nil, err
	}

	topic := models.Topic{
		Name:  *in.Name,
		Order: maxOrder + 1,
	}
	if in.Description != nil {
		topic.Description = *in.Description
	}
	if in.Icon != nil {
		topic.Icon = *in.Icon
	}

	if err := db.Create(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// UpdateTopic applies the non-nil fields of the input to an existing topic.
func UpdateTopic(db *gorm.DB, id string, in TopicInput) (*models.Topic, error) {
	topic, err := GetTopic(db, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		topic.Name = *in.Name
	}
	if in.Description != nil {
		topic.Description = *in.Description
	}
	if in.Icon != nil {
		topic.Icon = *in.Icon
	}
	if in.Order != nil {
		topic.Order = *in.Order
	}

	if err := db.Save(topic).Error; err != nil {
		return nil, err
	}
	return topic, nil
}

// DeleteTopic removes a topic and cascades to its screens and their
// hotspots. The cascade is explicit so the contract holds on every
// storage engine, and transactional so a failure leaves the tree intact.
func DeleteTopic(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var topic models.Topic
		if err := tx.First(&topic, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFound("Topic")
			}
			return err
		}

		var screenIDs []string
		if err := tx.Model(&models.Screen{}).Where("topic_id = ?", id).
			Pluck("id", &screenIDs).Error; err != nil {
			return err
		}

		if len(screenIDs) > 0 {
			if err := tx.Delete(&models.Hotspot{}, "screen_id IN ?", screenIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Screen{}, "topic_id = ?", id).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&topic).Error
	})
}
