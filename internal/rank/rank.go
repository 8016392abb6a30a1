// Package rank resolves a member's ordinal position in the points
// leaderboard.
package rank

import (
	"context"

	"github.com/rayaadinda/bot-discord/internal/logger"
	model "github.com/rayaadinda/bot-discord/internal/models"
)

// BoardSource provides the ranked window. The store's dual path sits behind
// it, so a procedure failure already degrades to the table query before a
// rank lookup ever sees it.
type BoardSource interface {
	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardRow, error)
}

// Resolver locates a member inside a bounded leaderboard window. A member
// ranked beyond the window resolves to not-found: with the window at its
// default of 100 that member has no meaningful rank to show, and scanning
// the full population every call is not worth it.
type Resolver struct {
	store  BoardSource
	window int
}

func NewResolver(s BoardSource, window int) *Resolver {
	return &Resolver{store: s, window: window}
}

// RankOf returns the 1-based rank of the Discord identity, or ok=false when
// the member is unranked, outside the window, or the backend is unreachable
// (logged, degraded to a safe negative).
func (r *Resolver) RankOf(ctx context.Context, discordID string) (int, bool) {
	board, err := r.store.Leaderboard(ctx, r.window)
	if err != nil {
		logger.Error("rank lookup for %s: %v", discordID, err)
		return 0, false
	}

	for i, row := range board {
		if row.DiscordID == discordID {
			return i + 1, true
		}
	}
	return 0, false
}
