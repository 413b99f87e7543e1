package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/gobodhi/tour-cms/internal/config"
	"github.com/gobodhi/tour-cms/internal/gitrepo"
	"github.com/gobodhi/tour-cms/internal/models"
	"github.com/gobodhi/tour-cms/internal/tour"
	"gorm.io/gorm"
)

const publishCommitMessage = "Update tour content from CMS"

// PublishResult reports the snapshot commit back to the editor.
type PublishResult struct {
	Success   bool   `json:"success"`
	CommitSHA string `json:"commitSha"`
	CommitURL string `json:"commitUrl"`
}

// ImportResult reports how many entities a replace-all import created.
type ImportResult struct {
	Roles    int `json:"roles"`
	Topics   int `json:"topics"`
	Screens  int `json:"screens"`
	Hotspots int `json:"hotspots"`
}

// ExportTourDocument serializes the content tree into the denormalized
// document the tour app consumes, everything in display order.
func ExportTourDocument(db *gorm.DB) (*tour.Document, error) {
	roles, err := ListRoles(db)
	if err != nil {
		return nil, err
	}

	var topics []models.Topic
	err = db.Order("display_order asc").
		Preload("Screens", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Preload("Screens.Hotspots", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Find(&topics).Error
	if err != nil {
		return nil, err
	}

	cta := tour.DefaultCTA()
	if raw, err := GetSetting(db, "cta"); err != nil {
		return nil, err
	} else if raw != nil {
		if err := json.Unmarshal(raw, &cta); err != nil {
			return nil, fmt.Errorf("cta setting is not valid: %w", err)
		}
	}

	doc := &tour.Document{
		Roles:  make([]tour.Role, 0, len(roles)),
		Topics: make([]tour.Topic, 0, len(topics)),
		CTA:    cta,
	}

	for _, r := range roles {
		// Rows written before the empty-list default may still hold NULL;
		// the published document always carries an array.
		recommended := []string(r.RecommendedTopics)
		if recommended == nil {
			recommended = []string{}
		}
		doc.Roles = append(doc.Roles, tour.Role{
			ID:                r.ID,
			Name:              r.Name,
			Description:       r.Description,
			Icon:              r.Icon,
			VideoURL:          r.VideoURL,
			RecommendedTopics: recommended,
		})
	}

	for _, t := range topics {
		topic := tour.Topic{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Icon:        t.Icon,
			Screens:     make([]tour.Screen, 0, len(t.Screens)),
		}
		for _, s := range t.Screens {
			screen := tour.Screen{
				ID:       s.ID,
				Title:    s.Title,
				Image:    s.ImagePath,
				Hotspots: make([]tour.Hotspot, 0, len(s.Hotspots)),
			}
			for _, h := range s.Hotspots {
				screen.Hotspots = append(screen.Hotspots, tour.Hotspot{
					ID:          h.ID,
					X:           h.X,
					Y:           h.Y,
					Title:       h.Title,
					Description: h.Description,
					AIPowered:   h.AIPowered,
				})
			}
			topic.Screens = append(topic.Screens, screen)
		}
		doc.Topics = append(doc.Topics, topic)
	}

	return doc, nil
}

// PublishTourData commits a freshly generated snapshot to the content
// repository and appends an audit record. A missing remote file is
// expected on first publish and the write proceeds as a creation.
func PublishTourData(ctx context.Context, db *gorm.DB, repo *gitrepo.Client, cfg *config.Config, userID string) (*PublishResult, error) {
	doc, err := ExportTourDocument(db)
	if err != nil {
		return nil, err
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	commit, err := repo.CommitFile(ctx, cfg.TourDataPath, content, publishCommitMessage)
	if err != nil {
		return nil, err
	}

	record := models.Publish{
		UserID:    userID,
		CommitSHA: commit.SHA,
	}
	if err := db.Create(&record).Error; err != nil {
		// The commit already landed; the audit record is best effort.
		log.Printf("Publish succeeded but audit record failed: %v", err)
	}

	return &PublishResult{
		Success:   true,
		CommitSHA: commit.SHA,
		CommitURL: commit.HTMLURL,
	}, nil
}

// PublishHistory returns the 20 most recent publishes, newest first.
func PublishHistory(db *gorm.DB) ([]models.Publish, error) {
	var history []models.Publish
	if err := db.Order("published_at desc").Limit(20).
		Preload("User").Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

// ImportTourDocument fetches the published snapshot and replaces the
// whole content store with it.
func ImportTourDocument(ctx context.Context, db *gorm.DB, repo *gitrepo.Client, cfg *config.Config) (*ImportResult, error) {
	raw, err := repo.FetchFile(ctx, cfg.TourDataPath)
	if err != nil {
		return nil, err
	}

	var doc tour.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("published tour data is not valid JSON: %w", err)
	}

	return ReplaceContent(db, &doc)
}

// ReplaceContent deletes the entire content tree and recreates it from
// the document in one transaction, so a mid-import failure cannot leave
// the store half replaced. Order is assigned by array position; missing
// optional fields take documented defaults. The cta setting is upserted,
// not recreated.
func ReplaceContent(db *gorm.DB, doc *tour.Document) (*ImportResult, error) {
	result := &ImportResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Dependency order: leaves first.
		for _, model := range []interface{}{
			&models.Hotspot{}, &models.Screen{}, &models.Topic{}, &models.Role{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		for i, r := range doc.Roles {
			role := models.Role{
				ID:                r.ID,
				Name:              r.Name,
				Description:       r.Description,
				Icon:              defaultString(r.Icon, "building"),
				VideoURL:          r.VideoURL,
				RecommendedTopics: r.RecommendedTopics,
				Order:             i,
			}
			if role.RecommendedTopics == nil {
				role.RecommendedTopics = []string{}
			}
			if err := tx.Create(&role).Error; err != nil {
				return err
			}
			result.Roles++
		}

		for i, t := range doc.Topics {
			topic := models.Topic{
				ID:          t.ID,
				Name:        t.Name,
				Description: t.Description,
				Icon:        defaultString(t.Icon, "folder"),
				Order:       i,
			}
			if err := tx.Create(&topic).Error; err != nil {
				return err
			}
			result.Topics++

			for si, s := range t.Screens {
				screen := models.Screen{
					ID:        s.ID,
					TopicID:   t.ID,
					Title:     s.Title,
					ImagePath: s.Image,
					Order:     si,
				}
				if err := tx.Create(&screen).Error; err != nil {
					return err
				}
				result.Screens++

				for hi, h := range s.Hotspots {
					hotspot := models.Hotspot{
						ID:          h.ID,
						ScreenID:    s.ID,
						X:           h.X,
						Y:           h.Y,
						Title:       h.Title,
						Description: h.Description,
						AIPowered:   h.AIPowered,
						Order:       hi,
					}
					if err := tx.Create(&hotspot).Error; err != nil {
						return err
					}
					result.Hotspots++
				}
			}
		}

		ctaValue, err := json.Marshal(doc.CTA)
		if err != nil {
			return err
		}
		if _, err := UpsertSetting(tx, "cta", ctaValue); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
