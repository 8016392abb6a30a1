package model

import (
	"encoding/json"
	"time"
)

// PointCategory names one of the four independently tracked point buckets.
type PointCategory string

const (
	CategorySubmission PointCategory = "submission"
	CategoryApproval   PointCategory = "approval"
	CategoryEngagement PointCategory = "engagement"
	CategoryWeeklyWin  PointCategory = "weekly_win"
)

// PointsTotals mirrors the user_points row. Total is always the sum of the
// four categories; the store reconciles it on every write.
type PointsTotals struct {
	Submission int       `json:"submissionPoints"`
	Approval   int       `json:"approvalPoints"`
	Engagement int       `json:"engagementPoints"`
	WeeklyWin  int       `json:"weeklyWinPoints"`
	Total      int       `json:"totalPoints"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// Sum recomputes the total from the category buckets.
func (p PointsTotals) Sum() int {
	return p.Submission + p.Approval + p.Engagement + p.WeeklyWin
}

// ActivityEntry is one append-only audit row. Entries are never mutated or
// deleted; points mutations of nonzero amount write exactly one entry.
type ActivityEntry struct {
	ID            string          `json:"id"`
	AccountID     string          `json:"accountId,omitempty"`
	DiscordID     string          `json:"discordId,omitempty"`
	ActivityType  string          `json:"activityType"`
	ActivityData  json.RawMessage `json:"activityData,omitempty"`
	PointsAwarded int             `json:"pointsAwarded"`
	CreatedAt     time.Time       `json:"createdAt"`
}
