package walkthrough_test

import (
	"testing"

	"github.com/gobodhi/tour-cms/internal/tour"
	"github.com/gobodhi/tour-cms/internal/walkthrough"
)

func twoScreenTopic() tour.Topic {
	return tour.Topic{
		ID:   "t1",
		Name: "Dashboard",
		Screens: []tour.Screen{
			{ID: "s1", Hotspots: []tour.Hotspot{{ID: "a"}, {ID: "b"}}},
			{ID: "s2", Hotspots: []tour.Hotspot{{ID: "c"}}},
		},
	}
}

func newProgress(t *testing.T) *walkthrough.Progress {
	t.Helper()
	p, err := walkthrough.LoadProgress(&walkthrough.MemoryStore{})
	if err != nil {
		t.Fatalf("Failed to load progress: %v", err)
	}
	return p
}

// TestTopicWalkthrough steps through both screens and verifies completion
// is recorded exactly once, at the end
func TestTopicWalkthrough(t *testing.T) {
	progress := newProgress(t)
	tw := walkthrough.NewTopicWalkthrough(twoScreenTopic(), progress)

	if tw.Screen().Phase() != walkthrough.PhaseIntro {
		t.Fatalf("Expected intro on first screen, got %s", tw.Screen().Phase())
	}

	// Finish the first screen, then advance
	if err := tw.Advance(); err != nil {
		t.Fatalf("Failed to advance: %v", err)
	}
	if tw.ScreenIndex() != 1 {
		t.Fatalf("Expected second screen, got index %d", tw.ScreenIndex())
	}
	if tw.Screen().Phase() != walkthrough.PhaseExploring {
		t.Errorf("Expected no intro on second screen, got %s", tw.Screen().Phase())
	}
	if tw.Screen().ViewedCount() != 0 {
		t.Errorf("Expected fresh viewed state, got %d", tw.Screen().ViewedCount())
	}
	if progress.IsCompleted("t1") {
		t.Error("Expected topic not completed mid-walkthrough")
	}

	// Advancing past the last screen completes the topic
	if err := tw.Advance(); err != nil {
		t.Fatalf("Failed to advance: %v", err)
	}
	if !tw.Completed() {
		t.Error("Expected topic completed")
	}
	if !progress.IsCompleted("t1") {
		t.Error("Expected completion recorded in progress")
	}

	// A further advance is a no-op
	if err := tw.Advance(); err != nil {
		t.Fatalf("Advance after completion errored: %v", err)
	}
	if got := progress.CompletedTopics(); len(got) != 1 {
		t.Errorf("Expected a single completion record, got %v", got)
	}
}

func TestTopicWalkthroughEmptyTopic(t *testing.T) {
	tw := walkthrough.NewTopicWalkthrough(tour.Topic{ID: "empty"}, newProgress(t))

	if tw.Screen() != nil {
		t.Error("Expected no screen walkthrough for an empty topic")
	}
	if err := tw.Advance(); err != nil {
		t.Errorf("Advance on empty topic errored: %v", err)
	}
}
