package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a CMS editor, created lazily on first successful GitHub login.
type User struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	GitHubID       int64     `gorm:"column:github_id;uniqueIndex;not null" json:"githubId"`
	GitHubUsername string    `gorm:"column:github_username;size:255;not null" json:"githubUsername"`
	AvatarURL      string    `gorm:"size:512" json:"avatarUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Publish is an append-only audit record of a snapshot commit.
type Publish struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;not null;index" json:"userId"`
	User        User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CommitSHA   string    `gorm:"size:64;not null" json:"commitSha"`
	PublishedAt time.Time `gorm:"autoCreateTime" json:"publishedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (p *Publish) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
