package walkthrough_test

import (
	"testing"

	"github.com/gobodhi/tour-cms/internal/tour"
	"github.com/gobodhi/tour-cms/internal/walkthrough"
)

func threeHotspotScreen() tour.Screen {
	return tour.Screen{
		ID:    "s1",
		Title: "Overview",
		Hotspots: []tour.Hotspot{
			{ID: "h1", Title: "First"},
			{ID: "h2", Title: "Second"},
			{ID: "h3", Title: "Third"},
		},
	}
}

// TestGuidedFlow walks intro -> guided steps -> completion
func TestGuidedFlow(t *testing.T) {
	w := walkthrough.NewScreenWalkthrough(threeHotspotScreen(), true)

	if w.Phase() != walkthrough.PhaseIntro {
		t.Fatalf("Expected intro phase on first screen, got %s", w.Phase())
	}

	w.Start()
	if w.Phase() != walkthrough.PhaseExploring || !w.Guided() {
		t.Fatalf("Expected guided exploring after start, got %s guided=%v", w.Phase(), w.Guided())
	}
	if w.GuidedIndex() != 0 {
		t.Errorf("Expected guided index 0, got %d", w.GuidedIndex())
	}

	active, ok := w.ActiveHotspot()
	if !ok || active.ID != "h1" {
		t.Errorf("Expected h1 active, got %v %v", active.ID, ok)
	}

	w.Next()
	w.Next()
	if w.GuidedIndex() != 2 || w.Phase() != walkthrough.PhaseExploring {
		t.Fatalf("Expected index 2 still exploring, got %d %s", w.GuidedIndex(), w.Phase())
	}

	// Advancing past the last hotspot completes the screen
	w.Next()
	if w.Phase() != walkthrough.PhaseCompletion {
		t.Errorf("Expected completion phase, got %s", w.Phase())
	}
	if w.Guided() {
		t.Error("Expected guided mode off in completion")
	}
	if _, ok := w.ActiveHotspot(); ok {
		t.Error("Expected no active hotspot in completion")
	}
	if !w.AllViewed() {
		t.Errorf("Expected all hotspots viewed, got %d", w.ViewedCount())
	}
}

func TestLaterScreenSkipsIntro(t *testing.T) {
	w := walkthrough.NewScreenWalkthrough(threeHotspotScreen(), false)
	if w.Phase() != walkthrough.PhaseExploring {
		t.Errorf("Expected exploring phase on later screens, got %s", w.Phase())
	}
}

func TestSkipIntroFreeExploration(t *testing.T) {
	w := walkthrough.NewScreenWalkthrough(threeHotspotScreen(), true)

	w.Skip()
	if w.Phase() != walkthrough.PhaseExploring || w.Guided() {
		t.Fatalf("Expected free exploration after skip, got %s guided=%v", w.Phase(), w.Guided())
	}
	if _, ok := w.ActiveHotspot(); ok {
		t.Error("Expected no active hotspot after skip")
	}
}

// TestPrevAtFirstStep verifies stepping back at index 0 is a no-op
func TestPrevAtFirstStep(t *testing.T) {
	w := walkthrough.NewScreenWalkthrough(threeHotspotScreen(), false)
	w.StartGuided()

	w.Prev()
	if w.GuidedIndex() != 0 {
		t.Errorf("Expected index to stay at 0, got %d", w.GuidedIndex())
	}

	w.Next()
	w.Prev()
	if w.GuidedIndex() != 0 {
		t.Errorf("Expected index back at 0, got %d", w.GuidedIndex())
	}
}

// TestClickJumpsGuidedStep verifies a click in guided mode moves the step
func TestClickJumpsGuidedStep(t *testing.T) {
	w := walkthrough.NewScreenWalkthrough(threeHotspotScreen(), false)
	w.StartGuided()

	if !w.ClickHotspot("h3") {
		t.Fatal("Expected click on known hotspot to succeed")
	}
	if w.GuidedIndex() != 2 {
		t.Errorf("Expected guided index to jump to 2, got %d", w.GuidedIndex())
	}

	if w.ClickHotspot("nope") {
		t.Error("Expected click on unknown hotspot to fail")
	}
}

// TestViewedIsIdempotent verifies repeat clicks do not inflate the count
func TestViewedIsIdempotent(t *testing.T) {
	w := walkthrough.NewScreenWalkthrough(threeHotspotScreen(), false)

	w.ClickHotspot("h1")
	w.ClickHotspot("h1")
	w.ClickHotspot("h2")
	if w.ViewedCount() != 2 {
		t.Errorf("Expected 2 viewed, got %d", w.ViewedCount())
	}
	if w.AllViewed() {
		t.Error("Expected not all viewed")
	}
}

// TestViewingAllDoesNotComplete verifies completion only happens on an
// explicit advance past the last guided step
func TestViewingAllDoesNotComplete(t *testing.T) {
	w := walkthrough.NewScreenWalkthrough(threeHotspotScreen(), false)

	w.ClickHotspot("h1")
	w.ClickHotspot("h2")
	w.ClickHotspot("h3")
	if !w.AllViewed() {
		t.Fatal("Expected all viewed")
	}
	if w.Phase() != walkthrough.PhaseExploring {
		t.Errorf("Expected still exploring after viewing all, got %s", w.Phase())
	}
}

func TestReviewReturnsToExploring(t *testing.T) {
	w := walkthrough.NewScreenWalkthrough(threeHotspotScreen(), false)
	w.StartGuided()
	w.Next()
	w.Next()
	w.Next()

	if w.Phase() != walkthrough.PhaseCompletion {
		t.Fatalf("Expected completion, got %s", w.Phase())
	}

	w.Review()
	if w.Phase() != walkthrough.PhaseExploring || w.Guided() {
		t.Errorf("Expected free exploration after review, got %s guided=%v", w.Phase(), w.Guided())
	}
}

func TestGuidedNeedsHotspots(t *testing.T) {
	w := walkthrough.NewScreenWalkthrough(tour.Screen{ID: "empty"}, false)

	w.StartGuided()
	if w.Guided() {
		t.Error("Expected guided mode unavailable without hotspots")
	}
}

func TestExitGuidedKeepsViewed(t *testing.T) {
	w := walkthrough.NewScreenWalkthrough(threeHotspotScreen(), false)
	w.StartGuided()
	w.Next()

	w.ExitGuided()
	if w.Guided() {
		t.Error("Expected guided mode off")
	}
	if w.ViewedCount() != 2 {
		t.Errorf("Expected viewed state retained, got %d", w.ViewedCount())
	}
}
