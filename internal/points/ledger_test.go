package points

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/rayaadinda/bot-discord/internal/models"
	"github.com/rayaadinda/bot-discord/internal/store"
)

type fakeBackend struct {
	awardErr    error
	activityErr error
	entries     []model.ActivityEntry

	awards        []store.AwardRequest
	activityCalls int
}

func (f *fakeBackend) AwardPoints(ctx context.Context, req store.AwardRequest) error {
	f.awards = append(f.awards, req)
	return f.awardErr
}

func (f *fakeBackend) RecentActivity(ctx context.Context, discordID string, limit int) ([]model.ActivityEntry, error) {
	f.activityCalls++
	if f.activityErr != nil {
		return nil, f.activityErr
	}
	return f.entries, nil
}

func TestResolveKnownSources(t *testing.T) {
	cases := []struct {
		source       string
		category     model.PointCategory
		activityType string
	}{
		{SourceAccountLinking, model.CategoryEngagement, "account_linked"},
		{SourceDailyCheckin, model.CategoryEngagement, "daily_checkin"},
		{SourceContentSubmission, model.CategorySubmission, "content_submitted"},
		{SourceContentApproved, model.CategoryApproval, "mission_completed"},
		{SourceCommunityHelp, model.CategoryEngagement, "mission_completed"},
		{SourceReferral, model.CategoryEngagement, "referral_completed"},
		{SourceWeeklyWin, model.CategoryWeeklyWin, "achievement_unlocked"},
	}
	for _, tc := range cases {
		category, activityType := Resolve(tc.source)
		assert.Equal(t, tc.category, category, tc.source)
		assert.Equal(t, tc.activityType, activityType, tc.source)
	}
}

func TestResolveUnknownSourceFallsBackToEngagement(t *testing.T) {
	category, activityType := Resolve("dashboard_experiment_42")
	assert.Equal(t, model.CategoryEngagement, category)
	assert.Equal(t, "mission_completed", activityType)
}

func TestAwardPassesResolvedRequestThrough(t *testing.T) {
	backend := &fakeBackend{}
	ledger := NewLedger(backend)

	ok := ledger.Award(context.Background(), "acct-1", "d-1", 25, SourceContentApproved, "konten disetujui")
	require.True(t, ok)

	require.Len(t, backend.awards, 1)
	req := backend.awards[0]
	assert.Equal(t, "acct-1", req.AccountID)
	assert.Equal(t, "d-1", req.DiscordID)
	assert.Equal(t, 25, req.Amount)
	assert.Equal(t, model.CategoryApproval, req.Category)
	assert.Equal(t, "mission_completed", req.ActivityType)
	assert.Equal(t, SourceContentApproved, req.Source)
	assert.Equal(t, "konten disetujui", req.Description)
}

func TestAwardAllowsZeroAndNegativeAmounts(t *testing.T) {
	backend := &fakeBackend{}
	ledger := NewLedger(backend)

	assert.True(t, ledger.Award(context.Background(), "acct-1", "d-1", 0, SourceDailyCheckin, ""))
	assert.True(t, ledger.Award(context.Background(), "acct-1", "d-1", -10, SourceContentApproved, "koreksi"))
	assert.Len(t, backend.awards, 2)
	assert.Equal(t, -10, backend.awards[1].Amount)
}

func TestAwardReportsFailure(t *testing.T) {
	backend := &fakeBackend{awardErr: errors.New("connection refused")}
	ledger := NewLedger(backend)

	ok := ledger.Award(context.Background(), "acct-1", "d-1", 25, SourceWeeklyWin, "")
	assert.False(t, ok)
}

func TestHistoryDegradesToEmptyOnError(t *testing.T) {
	backend := &fakeBackend{activityErr: errors.New("timeout")}
	ledger := NewLedger(backend)

	assert.Nil(t, ledger.History(context.Background(), "d-1", 3))
	assert.Equal(t, 1, backend.activityCalls)
}

func TestHistoryReturnsBackendPage(t *testing.T) {
	backend := &fakeBackend{entries: []model.ActivityEntry{
		{ActivityType: "daily_checkin", PointsAwarded: 2},
		{ActivityType: "content_submitted", PointsAwarded: 10},
	}}
	ledger := NewLedger(backend)

	page := ledger.History(context.Background(), "d-1", 3)
	require.Len(t, page, 2)
	assert.Equal(t, "daily_checkin", page[0].ActivityType)
}
