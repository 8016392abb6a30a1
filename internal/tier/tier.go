// Package tier derives tier information from a point total. Pure
// computation: thresholds come from configuration at construction and no
// call here touches I/O, so every consumer sees the same bands.
package tier

import (
	"github.com/rayaadinda/bot-discord/internal/config"
	model "github.com/rayaadinda/bot-discord/internal/models"
)

// Calculator classifies point totals against an ordered set of bands.
type Calculator struct {
	bands []config.TierBand
}

// NewCalculator takes the bands ordered lowest to highest. The first band
// must start at zero.
func NewCalculator(bands []config.TierBand) *Calculator {
	return &Calculator{bands: bands}
}

// Classify maps a point total to its tier, progress percentage and, below
// the top band, the next tier target. Monotonic in points: a higher total
// never classifies to a lower band.
func (c *Calculator) Classify(points int) model.TierInfo {
	idx := c.bandIndex(points)
	band := c.bands[idx]

	info := model.TierInfo{
		Name:          band.Name,
		CurrentPoints: points,
		Benefits:      band.Benefits,
	}

	last := len(c.bands) - 1
	if idx == last {
		info.Progress = 100
		return info
	}

	next := c.bands[idx+1]
	if idx == 0 {
		// Lowest band measures against the literal upper bound.
		info.Progress = float64(points) / float64(next.MinPoints) * 100
	} else {
		span := next.MinPoints - band.MinPoints + 1
		info.Progress = float64(points-band.MinPoints+1) / float64(span) * 100
	}
	if info.Progress > 100 {
		info.Progress = 100
	}

	needed := next.MinPoints - points
	if needed < 0 {
		needed = 0
	}
	info.Next = &model.NextTier{
		Name:         next.Name,
		PointsNeeded: needed,
		Benefits:     next.Benefits,
	}

	return info
}

// Name returns just the tier name for a point total.
func (c *Calculator) Name(points int) string {
	return c.bands[c.bandIndex(points)].Name
}

// Emoji returns the display marker for the band a total falls in.
func (c *Calculator) Emoji(points int) string {
	switch c.bandIndex(points) {
	case 0:
		return "🏁"
	case 1:
		return "🏍️"
	default:
		return "🏆"
	}
}

func (c *Calculator) bandIndex(points int) int {
	idx := 0
	for i, band := range c.bands {
		if points >= band.MinPoints {
			idx = i
		}
	}
	return idx
}
