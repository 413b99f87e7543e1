package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role represents an audience role presented on the tour landing page.
// RecommendedTopics is a weak reference list of topic ids, not a foreign key.
type Role struct {
	ID                string                       `gorm:"primaryKey;size:36" json:"id"`
	Name              string                       `gorm:"size:255;not null" json:"name"`
	Description       string                       `gorm:"type:text" json:"description"`
	Icon              string                       `gorm:"size:255" json:"icon"`
	VideoURL          string                       `gorm:"size:512" json:"videoUrl"`
	RecommendedTopics datatypes.JSONSlice[string]  `json:"recommendedTopics"`
	Order             int                          `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt         time.Time                    `json:"createdAt"`
	UpdatedAt         time.Time                    `json:"updatedAt"`
}

// Topic owns an ordered collection of Screens.
type Topic struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"size:255" json:"icon"`
	Order       int       `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Screens     []Screen  `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"screens,omitempty"`
}

// Screen is a single screenshot page inside a Topic.
type Screen struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TopicID   string    `gorm:"size:36;not null;index" json:"topicId"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	ImagePath string    `gorm:"size:512" json:"imagePath"`
	Order     int       `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Hotspots  []Hotspot `gorm:"foreignKey:ScreenID;constraint:OnDelete:CASCADE" json:"hotspots,omitempty"`
}

// Hotspot is a positioned point of interest on a Screen image.
// X and Y are percentages in [0,100].
type Hotspot struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ScreenID    string    `gorm:"size:36;not null;index" json:"screenId"`
	X           float64   `gorm:"not null" json:"x"`
	Y           float64   `gorm:"not null" json:"y"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	AIPowered   bool      `gorm:"not null;default:false" json:"aiPowered"`
	Order       int       `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Setting is a key-value configuration row. Recognized keys are "cta"
// and "allowedUsers".
type Setting struct {
	Key       string         `gorm:"primaryKey;size:64" json:"key"`
	Value     datatypes.JSON `json:"value"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// BeforeCreate assigns a uuid when the id was not supplied by the caller
// (imports supply their own ids to keep round-trips stable).
func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (s *Screen) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (h *Hotspot) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
