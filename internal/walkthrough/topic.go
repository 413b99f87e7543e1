package walkthrough

import (
	"github.com/gobodhi/tour-cms/internal/tour"
)

// TopicWalkthrough sequences a topic's screens. Topic completion is only
// recorded when the final screen's completion step explicitly advances,
// never as a side effect of viewing hotspots.
type TopicWalkthrough struct {
	topic    tour.Topic
	progress *Progress

	screenIndex int
	screen      *ScreenWalkthrough
	completed   bool
}

// NewTopicWalkthrough starts a topic at its first screen, with the intro
// overlay.
func NewTopicWalkthrough(topic tour.Topic, progress *Progress) *TopicWalkthrough {
	t := &TopicWalkthrough{
		topic:    topic,
		progress: progress,
	}
	if len(topic.Screens) > 0 {
		t.screen = NewScreenWalkthrough(topic.Screens[0], true)
	}
	return t
}

// Screen returns the walkthrough of the current screen.
func (t *TopicWalkthrough) Screen() *ScreenWalkthrough { return t.screen }

// ScreenIndex returns the position of the current screen.
func (t *TopicWalkthrough) ScreenIndex() int { return t.screenIndex }

// Completed reports whether the topic has been finished in this session.
func (t *TopicWalkthrough) Completed() bool { return t.completed }

// Advance moves from a finished screen to the next one, or records topic
// completion after the last screen. Hotspot view state does not carry
// over; the next screen starts fresh without an intro.
func (t *TopicWalkthrough) Advance() error {
	if t.screen == nil || t.completed {
		return nil
	}

	if t.screenIndex < len(t.topic.Screens)-1 {
		t.screenIndex++
		t.screen = NewScreenWalkthrough(t.topic.Screens[t.screenIndex], false)
		return nil
	}

	t.completed = true
	if t.progress != nil {
		return t.progress.Complete(t.topic.ID)
	}
	return nil
}
