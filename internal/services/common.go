package services

import (
	"gorm.io/gorm"
)

// maxOrderIn returns the highest display_order within a parent scope, 0
// when the scope is empty. New siblings are appended at max+1.
func maxOrderIn(db *gorm.DB, model interface{}, scopeColumn, scopeValue string) (int, error) {
	query := db.Model(model).Select("COALESCE(MAX(display_order), 0)")
	if scopeColumn != "" {
		query = query.Where(scopeColumn+" = ?", scopeValue)
	}

	var max int
	if err := query.Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}
