package services

import (
	"encoding/json"
	"errors"

	"github.com/gobodhi/tour-cms/internal/models"
	"gorm.io/gorm"
)

// adminUsers are always admitted regardless of the allowedUsers setting.
var adminUsers = []string{"gmr0780"}

// IsAllowedUser reports whether a GitHub username may sign in. An empty
// (or unset) allowedUsers setting means anyone who can authenticate is
// authorized.
func IsAllowedUser(db *gorm.DB, username string) (bool, error) {
	for _, admin := range adminUsers {
		if username == admin {
			return true, nil
		}
	}

	raw, err := GetSetting(db, "allowedUsers")
	if err != nil {
		return false, err
	}
	if raw == nil {
		return true, nil
	}

	var allowed []string
	if err := json.Unmarshal(raw, &allowed); err != nil {
		return false, err
	}
	if len(allowed) == 0 {
		return true, nil
	}

	for _, u := range allowed {
		if u == username {
			return true, nil
		}
	}
	return false, nil
}

// EnsureUser finds the user for a GitHub identity, creating it lazily on
// first login. The username and avatar are refreshed on every login.
func EnsureUser(db *gorm.DB, githubID int64, username, avatarURL string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "github_id = ?", githubID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user = models.User{
			GitHubID:       githubID,
			GitHubUsername: username,
			AvatarURL:      avatarURL,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	if user.GitHubUsername != username || user.AvatarURL != avatarURL {
		user.GitHubUsername = username
		user.AvatarURL = avatarURL
		if err := db.Save(&user).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// GetUser returns a user by id.
func GetUser(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
