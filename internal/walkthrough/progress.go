package walkthrough

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/gobodhi/tour-cms/internal/tour"
)

// Store persists the set of completed topic ids between sessions.
type Store interface {
	Load() ([]string, error)
	Save(ids []string) error
}

// FileStore keeps completed topics as a JSON array on disk, the
// standalone equivalent of the tour app's browser-local storage key.
type FileStore struct {
	Path string
}

// Load reads the completed set; a missing file means nothing completed yet.
func (s *FileStore) Load() ([]string, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Save writes the completed set.
func (s *FileStore) Save(ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, raw, 0o644)
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	ids []string
}

func (s *MemoryStore) Load() ([]string, error) { return s.ids, nil }

func (s *MemoryStore) Save(ids []string) error {
	s.ids = append([]string(nil), ids...)
	return nil
}

// Progress is the process-wide completed-topics state: loaded once at
// start and saved on every mutation.
type Progress struct {
	store     Store
	completed map[string]struct{}
	order     []string // insertion order, for stable persistence
}

// LoadProgress reads the persisted completed set from the store.
func LoadProgress(store Store) (*Progress, error) {
	ids, err := store.Load()
	if err != nil {
		return nil, err
	}

	p := &Progress{
		store:     store,
		completed: make(map[string]struct{}, len(ids)),
	}
	for _, id := range ids {
		if _, ok := p.completed[id]; ok {
			continue
		}
		p.completed[id] = struct{}{}
		p.order = append(p.order, id)
	}
	return p, nil
}

// Complete records a finished topic and saves immediately. Recording an
// already completed topic is a no-op.
func (p *Progress) Complete(topicID string) error {
	if _, ok := p.completed[topicID]; ok {
		return nil
	}
	p.completed[topicID] = struct{}{}
	p.order = append(p.order, topicID)
	return p.store.Save(p.order)
}

// IsCompleted reports whether a topic has been finished.
func (p *Progress) IsCompleted(topicID string) bool {
	_, ok := p.completed[topicID]
	return ok
}

// CompletedTopics returns the completed ids in completion order.
func (p *Progress) CompletedTopics() []string {
	return append([]string(nil), p.order...)
}

// NextRecommended returns the first not-yet-completed topic in the
// role's recommended order.
func (p *Progress) NextRecommended(role tour.Role) (string, bool) {
	for _, id := range role.RecommendedTopics {
		if !p.IsCompleted(id) {
			return id, true
		}
	}
	return "", false
}
