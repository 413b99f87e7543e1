package walkthrough_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gobodhi/tour-cms/internal/tour"
	"github.com/gobodhi/tour-cms/internal/walkthrough"
)

func TestFileStoreMissingFile(t *testing.T) {
	store := &walkthrough.FileStore{Path: filepath.Join(t.TempDir(), "progress.json")}

	ids, err := store.Load()
	if err != nil {
		t.Fatalf("Expected missing file to mean empty progress, got %v", err)
	}
	if ids != nil {
		t.Errorf("Expected nil, got %v", ids)
	}
}

func TestFileStorePersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")

	p, err := walkthrough.LoadProgress(&walkthrough.FileStore{Path: path})
	if err != nil {
		t.Fatalf("Failed to load progress: %v", err)
	}
	if err := p.Complete("t1"); err != nil {
		t.Fatalf("Failed to complete topic: %v", err)
	}
	if err := p.Complete("t2"); err != nil {
		t.Fatalf("Failed to complete topic: %v", err)
	}

	// A fresh load sees the same set
	again, err := walkthrough.LoadProgress(&walkthrough.FileStore{Path: path})
	if err != nil {
		t.Fatalf("Failed to reload progress: %v", err)
	}
	if !again.IsCompleted("t1") || !again.IsCompleted("t2") {
		t.Errorf("Expected persisted completions, got %v", again.CompletedTopics())
	}
	if again.IsCompleted("t3") {
		t.Error("Expected t3 not completed")
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	p, _ := walkthrough.LoadProgress(&walkthrough.MemoryStore{})

	p.Complete("t1")
	p.Complete("t1")
	p.Complete("t2")

	got := p.CompletedTopics()
	if len(got) != 2 || got[0] != "t1" || got[1] != "t2" {
		t.Errorf("Expected [t1 t2], got %v", got)
	}
}

func TestLoadProgressDeduplicates(t *testing.T) {
	store := &walkthrough.MemoryStore{}
	store.Save([]string{"t1", "t2", "t1"})

	p, err := walkthrough.LoadProgress(store)
	if err != nil {
		t.Fatalf("Failed to load progress: %v", err)
	}
	if got := p.CompletedTopics(); len(got) != 2 {
		t.Errorf("Expected duplicates dropped, got %v", got)
	}
}

func TestFileStoreRejectsBadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := (&walkthrough.FileStore{Path: path}).Load(); err == nil {
		t.Error("Expected error for corrupt progress file")
	}
}

// TestNextRecommended verifies the first uncompleted topic in the role's
// recommended order wins
func TestNextRecommended(t *testing.T) {
	p, _ := walkthrough.LoadProgress(&walkthrough.MemoryStore{})
	role := tour.Role{ID: "r1", RecommendedTopics: []string{"t1", "t2", "t3"}}

	next, ok := p.NextRecommended(role)
	if !ok || next != "t1" {
		t.Errorf("Expected t1 recommended, got %s %v", next, ok)
	}

	p.Complete("t1")
	next, ok = p.NextRecommended(role)
	if !ok || next != "t2" {
		t.Errorf("Expected t2 recommended, got %s %v", next, ok)
	}

	// Completion out of recommended order still works
	p.Complete("t3")
	next, ok = p.NextRecommended(role)
	if !ok || next != "t2" {
		t.Errorf("Expected t2 still recommended, got %s %v", next, ok)
	}

	p.Complete("t2")
	if _, ok := p.NextRecommended(role); ok {
		t.Error("Expected no recommendation when everything is completed")
	}
}
