// Package walkthrough implements the guided-tour stepping state machine
// and the locally persisted topic progress that drives it.
package walkthrough

import (
	"github.com/gobodhi/tour-cms/internal/tour"
)

// Phase is the top-level state of a screen walkthrough.
type Phase int

const (
	// PhaseIntro is the optional overlay shown only on the first screen
	// of a topic.
	PhaseIntro Phase = iota
	// PhaseExploring covers both free clicking and guided stepping.
	PhaseExploring
	// PhaseCompletion is shown after the last guided step.
	PhaseCompletion
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseExploring:
		return "exploring"
	case PhaseCompletion:
		return "completion"
	}
	return "unknown"
}

// ScreenWalkthrough tracks the interactive state of one screen. Viewed
// hotspot state never survives a screen change; each screen starts a
// fresh walkthrough.
type ScreenWalkthrough struct {
	screen tour.Screen

	phase  Phase
	guided bool
	index  int

	active string // active hotspot id, "" when no panel is open
	viewed map[string]struct{}
}

// NewScreenWalkthrough starts the walkthrough for a screen. The intro
// overlay only appears on the first screen of a topic; later screens
// drop straight into exploration.
func NewScreenWalkthrough(screen tour.Screen, firstOfTopic bool) *ScreenWalkthrough {
	phase := PhaseExploring
	if firstOfTopic {
		phase = PhaseIntro
	}
	return &ScreenWalkthrough{
		screen: screen,
		phase:  phase,
		viewed: make(map[string]struct{}),
	}
}

// Phase returns the current top-level state.
func (w *ScreenWalkthrough) Phase() Phase { return w.phase }

// Guided reports whether guided stepping is active.
func (w *ScreenWalkthrough) Guided() bool { return w.guided }

// GuidedIndex returns the current guided step.
func (w *ScreenWalkthrough) GuidedIndex() int { return w.index }

// Start leaves the intro and begins guided stepping at the first hotspot.
func (w *ScreenWalkthrough) Start() {
	if w.phase != PhaseIntro {
		return
	}
	w.phase = PhaseExploring
	w.StartGuided()
}

// Skip leaves the intro into free exploration with no active hotspot.
func (w *ScreenWalkthrough) Skip() {
	if w.phase != PhaseIntro {
		return
	}
	w.phase = PhaseExploring
}

// StartGuided enters guided mode at hotspot index 0. A screen without
// hotspots has nothing to guide through.
func (w *ScreenWalkthrough) StartGuided() {
	if w.phase != PhaseExploring || len(w.screen.Hotspots) == 0 {
		return
	}
	w.guided = true
	w.index = 0
	w.activate(0)
}

// ExitGuided returns to free exploration, keeping viewed state.
func (w *ScreenWalkthrough) ExitGuided() {
	w.guided = false
}

// ClickHotspot marks a hotspot viewed (idempotent) and opens its panel.
// In guided mode a click jumps the step to that hotspot.
func (w *ScreenWalkthrough) ClickHotspot(id string) bool {
	if w.phase != PhaseExploring {
		return false
	}
	for i, h := range w.screen.Hotspots {
		if h.ID == id {
			w.activate(i)
			return true
		}
	}
	return false
}

// Next advances one guided step; past the last hotspot it transitions
// to completion.
func (w *ScreenWalkthrough) Next() {
	if w.phase != PhaseExploring || !w.guided {
		return
	}
	if w.index < len(w.screen.Hotspots)-1 {
		w.activate(w.index + 1)
		return
	}
	w.phase = PhaseCompletion
	w.guided = false
	w.active = ""
}

// Prev steps back one guided hotspot; a no-op at index 0.
func (w *ScreenWalkthrough) Prev() {
	if w.phase != PhaseExploring || !w.guided || w.index == 0 {
		return
	}
	w.activate(w.index - 1)
}

// Review returns from the completion overlay to free exploration.
func (w *ScreenWalkthrough) Review() {
	if w.phase != PhaseCompletion {
		return
	}
	w.phase = PhaseExploring
}

// ActiveHotspot returns the hotspot whose panel is open.
func (w *ScreenWalkthrough) ActiveHotspot() (tour.Hotspot, bool) {
	if w.active == "" {
		return tour.Hotspot{}, false
	}
	for _, h := range w.screen.Hotspots {
		if h.ID == w.active {
			return h, true
		}
	}
	return tour.Hotspot{}, false
}

// ViewedCount returns how many distinct hotspots have been viewed.
func (w *ScreenWalkthrough) ViewedCount() int { return len(w.viewed) }

// AllViewed reports whether every hotspot on the screen has been viewed.
func (w *ScreenWalkthrough) AllViewed() bool {
	return len(w.viewed) == len(w.screen.Hotspots)
}

func (w *ScreenWalkthrough) activate(index int) {
	h := w.screen.Hotspots[index]
	w.active = h.ID
	w.viewed[h.ID] = struct{}{}
	if w.guided {
		w.index = index
	}
}
