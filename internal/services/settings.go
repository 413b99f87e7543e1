package services

import (
	"encoding/json"

	"github.com/gobodhi/tour-cms/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetSettings returns every setting as a key→value map.
func GetSettings(db *gorm.DB) (map[string]json.RawMessage, error) {
	var settings []models.Setting
	if err := db.Find(&settings).Error; err != nil {
		return nil, err
	}

	result := make(map[string]json.RawMessage, len(settings))
	for _, s := range settings {
		result[s.Key] = json.RawMessage(s.Value)
	}
	return result, nil
}

// GetSetting returns one setting's value, or (nil, nil) when unset.
func GetSetting(db *gorm.DB, key string) (json.RawMessage, error) {
	var setting models.Setting
	err := db.First(&setting, "key = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return json.RawMessage(setting.Value), nil
}

// UpsertSetting creates or replaces a setting value.
func UpsertSetting(db *gorm.DB, key string, value json.RawMessage) (*models.Setting, error) {
	setting := models.Setting{
		Key:   key,
		Value: datatypes.JSON(value),
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
