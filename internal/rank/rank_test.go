package rank

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/rayaadinda/bot-discord/internal/models"
)

type fakeBoard struct {
	rows  []model.LeaderboardRow
	err   error
	limit int
}

func (f *fakeBoard) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardRow, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func window() []model.LeaderboardRow {
	return []model.LeaderboardRow{
		{DiscordID: "d-100", DiscordUsername: "budi", TotalPoints: 1800},
		{DiscordID: "d-200", DiscordUsername: "sari", TotalPoints: 700},
		{DiscordID: "d-300", DiscordUsername: "andi", TotalPoints: 700},
		{DiscordID: "d-400", DiscordUsername: "tono", TotalPoints: 50},
	}
}

func TestRankOfReturnsOneBasedPosition(t *testing.T) {
	src := &fakeBoard{rows: window()}
	r := NewResolver(src, 100)

	pos, ok := r.RankOf(context.Background(), "d-100")
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	pos, ok = r.RankOf(context.Background(), "d-400")
	require.True(t, ok)
	assert.Equal(t, 4, pos)

	assert.Equal(t, 100, src.limit)
}

func TestRankOfKeepsBackendTieOrder(t *testing.T) {
	// d-200 and d-300 are tied on points; the backend already broke the tie
	// by account age and the resolver must not reorder.
	src := &fakeBoard{rows: window()}
	r := NewResolver(src, 100)

	pos, ok := r.RankOf(context.Background(), "d-200")
	require.True(t, ok)
	assert.Equal(t, 2, pos)

	pos, ok = r.RankOf(context.Background(), "d-300")
	require.True(t, ok)
	assert.Equal(t, 3, pos)
}

func TestRankOfOutsideWindowIsNotFound(t *testing.T) {
	src := &fakeBoard{rows: window()}
	r := NewResolver(src, 100)

	pos, ok := r.RankOf(context.Background(), "d-999")
	assert.False(t, ok)
	assert.Zero(t, pos)
}

func TestRankOfDegradesOnBackendError(t *testing.T) {
	src := &fakeBoard{err: errors.New("connection refused")}
	r := NewResolver(src, 100)

	pos, ok := r.RankOf(context.Background(), "d-100")
	assert.False(t, ok)
	assert.Zero(t, pos)
}
