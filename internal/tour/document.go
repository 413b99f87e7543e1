// Package tour defines the published tour document and a client that
// fetches it from the content repository with a bundled fallback.
package tour

// Document is the denormalized snapshot the tour app consumes. Nesting
// implies ownership, so child entities carry no parent ids.
type Document struct {
	Roles  []Role  `json:"roles"`
	Topics []Topic `json:"topics"`
	CTA    CTA     `json:"cta"`
}

// Role as serialized in the published document.
type Role struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Icon              string   `json:"icon"`
	VideoURL          string   `json:"videoUrl"`
	RecommendedTopics []string `json:"recommendedTopics"`
}

// Topic embeds its Screens in display order.
type Topic struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Screens     []Screen `json:"screens"`
}

// Screen embeds its Hotspots in display order.
type Screen struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Image    string    `json:"image"`
	Hotspots []Hotspot `json:"hotspots"`
}

// Hotspot positions are percentages in [0,100].
type Hotspot struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AIPowered   bool    `json:"aiPowered"`
}

// CTA is the call-to-action button configuration.
type CTA struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// DefaultCTA is used when no cta setting has been configured.
func DefaultCTA() CTA {
	return CTA{
		Text: "Book a Demo",
		URL:  "https://meetings.hubspot.com/greg-michelier/website-booking-a-meeting?uuid=c942b5d3-92ea-40a2-b382-7d9556ac33ff",
	}
}

// clone deep-copies the document. Fallback hands out clones so a caller
// mutating one cannot reach the shared bundled copy through its slices.
func (d *Document) clone() *Document {
	out := &Document{
		Roles:  make([]Role, len(d.Roles)),
		Topics: make([]Topic, len(d.Topics)),
		CTA:    d.CTA,
	}
	for i, r := range d.Roles {
		r.RecommendedTopics = append([]string(nil), r.RecommendedTopics...)
		out.Roles[i] = r
	}
	for i, topic := range d.Topics {
		topic.Screens = append([]Screen(nil), topic.Screens...)
		for j, s := range topic.Screens {
			s.Hotspots = append([]Hotspot(nil), s.Hotspots...)
			topic.Screens[j] = s
		}
		out.Topics[i] = topic
	}
	return out
}

// FindRole returns the role with the given id.
func (d *Document) FindRole(id string) (Role, bool) {
	for _, r := range d.Roles {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}

// FindTopic returns the topic with the given id.
func (d *Document) FindTopic(id string) (Topic, bool) {
	for _, t := range d.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}
