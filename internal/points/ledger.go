// Package points is the ledger over the backend store: it resolves a source
// tag to a point category and activity type, then hands the mutation to the
// dual-path store.
package points

import (
	"context"

	"github.com/rayaadinda/bot-discord/internal/logger"
	model "github.com/rayaadinda/bot-discord/internal/models"
	"github.com/rayaadinda/bot-discord/internal/store"
)

// Source tags accepted by Award. Unmapped tags land in the engagement
// bucket as mission_completed: a deliberate catch-all so a new dashboard
// source never drops points on the floor.
const (
	SourceAccountLinking    = "account_linking"
	SourceDailyCheckin      = "daily_checkin"
	SourceContentSubmission = "content_submission"
	SourceContentApproved   = "content_approved"
	SourceCommunityHelp     = "community_help"
	SourceReferral          = "referral_discord"
	SourceWeeklyWin         = "weekly_win"
)

type mapping struct {
	category     model.PointCategory
	activityType string
}

var sourceMap = map[string]mapping{
	SourceAccountLinking:    {model.CategoryEngagement, "account_linked"},
	SourceDailyCheckin:      {model.CategoryEngagement, "daily_checkin"},
	SourceContentSubmission: {model.CategorySubmission, "content_submitted"},
	SourceContentApproved:   {model.CategoryApproval, "mission_completed"},
	SourceCommunityHelp:     {model.CategoryEngagement, "mission_completed"},
	SourceReferral:          {model.CategoryEngagement, "referral_completed"},
	SourceWeeklyWin:         {model.CategoryWeeklyWin, "achievement_unlocked"},
}

var defaultMapping = mapping{model.CategoryEngagement, "mission_completed"}

// Resolve returns the category and activity type for a source tag.
func Resolve(source string) (model.PointCategory, string) {
	m, ok := sourceMap[source]
	if !ok {
		m = defaultMapping
	}
	return m.category, m.activityType
}

// Backend is the slice of the store the ledger needs.
type Backend interface {
	AwardPoints(ctx context.Context, req store.AwardRequest) error
	RecentActivity(ctx context.Context, discordID string, limit int) ([]model.ActivityEntry, error)
}

// Ledger awards points against the backend. All durable state stays remote;
// the ledger holds nothing between calls.
type Ledger struct {
	store Backend
}

func NewLedger(s Backend) *Ledger {
	return &Ledger{store: s}
}

// Award applies amount to the account's category bucket and records the
// activity. Amount may be zero or negative (corrections). Returns false on
// any unrecoverable error; it never reports a partial success.
func (l *Ledger) Award(ctx context.Context, accountID, discordID string, amount int, source, description string) bool {
	category, activityType := Resolve(source)

	err := l.store.AwardPoints(ctx, store.AwardRequest{
		AccountID:    accountID,
		DiscordID:    discordID,
		Amount:       amount,
		Category:     category,
		ActivityType: activityType,
		Source:       source,
		Description:  description,
	})
	if err != nil {
		logger.Error("award %d points (source=%s, account=%s): %v", amount, source, accountID, err)
		return false
	}

	logger.Debug("awarded %d points to %s (source=%s)", amount, accountID, source)
	return true
}

// History returns the newest-first activity page for a linked member.
// Transport failures degrade to an empty page with a logged cause.
func (l *Ledger) History(ctx context.Context, discordID string, limit int) []model.ActivityEntry {
	entries, err := l.store.RecentActivity(ctx, discordID, limit)
	if err != nil {
		logger.Error("activity history for %s: %v", discordID, err)
		return nil
	}
	return entries
}
