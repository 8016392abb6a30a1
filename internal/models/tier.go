package model

// NextTier describes the band above the current one and what it takes to
// reach it. Absent for the top band.
type NextTier struct {
	Name         string   `json:"name"`
	PointsNeeded int      `json:"pointsNeeded"`
	Benefits     []string `json:"benefits"`
}

// TierInfo is the derived tier view for a point total. Never stored;
// recomputed from config thresholds on every read.
type TierInfo struct {
	Name          string    `json:"name"`
	CurrentPoints int       `json:"currentPoints"`
	Progress      float64   `json:"progress"`
	Benefits      []string  `json:"benefits"`
	Next          *NextTier `json:"nextTier,omitempty"`
}
