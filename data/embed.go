package data

import (
	_ "embed"
)

// TourData is the bundled copy of the published tour document, used as
// the offline fallback and as seed content.
//
//go:embed tourData.json
var TourData []byte
