package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayaadinda/bot-discord/internal/config"
)

func testBands() []config.TierBand {
	return []config.TierBand{
		{Name: "Rookie", MinPoints: 0, Benefits: []string{"Starter kit digital"}},
		{Name: "Pro", MinPoints: 500, Benefits: []string{"Bonus poin"}},
		{Name: "Legend", MinPoints: 1500, Benefits: []string{"Produk gratis"}},
	}
}

func TestClassifyBoundaries(t *testing.T) {
	c := NewCalculator(testBands())

	cases := []struct {
		points int
		want   string
	}{
		{0, "Rookie"},
		{499, "Rookie"},
		{500, "Pro"},
		{1499, "Pro"},
		{1500, "Legend"},
		{5000, "Legend"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Classify(tc.points).Name, "points=%d", tc.points)
	}
}

func TestClassifyIsMonotonic(t *testing.T) {
	c := NewCalculator(testBands())

	order := map[string]int{"Rookie": 0, "Pro": 1, "Legend": 2}
	prev := 0
	for p := 0; p <= 2000; p++ {
		cur := order[c.Classify(p).Name]
		require.GreaterOrEqual(t, cur, prev, "tier regressed at %d points", p)
		prev = cur
	}
}

func TestClassifyRookieProgress(t *testing.T) {
	c := NewCalculator(testBands())

	// 150 points: 30% toward the Pro boundary, 350 still needed.
	info := c.Classify(150)
	assert.Equal(t, "Rookie", info.Name)
	assert.InDelta(t, 30.0, info.Progress, 0.001)
	require.NotNil(t, info.Next)
	assert.Equal(t, "Pro", info.Next.Name)
	assert.Equal(t, 350, info.Next.PointsNeeded)
	assert.Equal(t, []string{"Bonus poin"}, info.Next.Benefits)
}

func TestClassifyMiddleBandProgress(t *testing.T) {
	c := NewCalculator(testBands())

	info := c.Classify(1000)
	assert.Equal(t, "Pro", info.Name)
	// (1000-500+1) / (1500-500+1) * 100
	assert.InDelta(t, 50.05, info.Progress, 0.01)
	require.NotNil(t, info.Next)
	assert.Equal(t, 500, info.Next.PointsNeeded)

	// The last point before Legend clamps to 100.
	info = c.Classify(1499)
	assert.InDelta(t, 99.9, info.Progress, 0.01)
	assert.Equal(t, 1, info.Next.PointsNeeded)
}

func TestClassifyTopBand(t *testing.T) {
	c := NewCalculator(testBands())

	info := c.Classify(1500)
	assert.Equal(t, "Legend", info.Name)
	assert.Equal(t, 100.0, info.Progress)
	assert.Nil(t, info.Next, "top band has no next tier")

	info = c.Classify(999999)
	assert.Equal(t, "Legend", info.Name)
	assert.Equal(t, 100.0, info.Progress)
}

func TestClassifyBoundaryCrossingOnAward(t *testing.T) {
	c := NewCalculator(testBands())

	// An account at 1000 awarded +500 lands exactly on the inclusive
	// Legend boundary.
	before := c.Classify(1000)
	after := c.Classify(1000 + 500)
	assert.Equal(t, "Pro", before.Name)
	assert.Equal(t, "Legend", after.Name)
}

func TestEmojiFollowsBand(t *testing.T) {
	c := NewCalculator(testBands())

	assert.Equal(t, "🏁", c.Emoji(0))
	assert.Equal(t, "🏍️", c.Emoji(500))
	assert.Equal(t, "🏆", c.Emoji(1500))
}
