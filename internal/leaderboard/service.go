// Package leaderboard keeps one canonical leaderboard message per channel in
// sync with the backend on a fixed cadence.
package leaderboard

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rayaadinda/bot-discord/internal/config"
	"github.com/rayaadinda/bot-discord/internal/logger"
	model "github.com/rayaadinda/bot-discord/internal/models"
	"github.com/rayaadinda/bot-discord/internal/tier"
)

// BoardSource provides the ranked top-N from the backend.
type BoardSource interface {
	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardRow, error)
}

// State is the sync cycle's explicit position. Every cycle starts from
// Idle and returns to Idle; nothing persists between cycles.
type State int32

const (
	StateIdle State = iota
	StateFetching
	StateRendering
	StatePublishing
)

func (s State) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateRendering:
		return "rendering"
	case StatePublishing:
		return "publishing"
	default:
		return "idle"
	}
}

// Message is a published channel message as the sync service sees it.
type Message struct {
	ID       string
	AuthorID string
	Content  string
}

// Publisher is the chat-platform boundary: enough surface to find, edit and
// create the summary message in the target channel.
type Publisher interface {
	SelfID() string
	RecentMessages(channelID string, limit int) ([]Message, error)
	SendMessage(channelID, content string) error
	EditMessage(channelID, messageID, content string) error
}

const cycleTimeout = time.Minute

// Service is the recurring sync job. One delayed initial run, then a fixed
// ticker; an atomic guard drops ticks that arrive while a cycle is still
// running so the find-or-create publish is never raced by this process.
type Service struct {
	store BoardSource
	pub   Publisher
	tiers *tier.Calculator

	channelID    string
	topN         int
	scanWindow   int
	interval     time.Duration
	initialDelay time.Duration

	running atomic.Bool
	state   atomic.Int32
	stop    chan struct{}
}

func NewService(s BoardSource, pub Publisher, tiers *tier.Calculator, cfg *config.Config) *Service {
	return &Service{
		store:        s,
		pub:          pub,
		tiers:        tiers,
		channelID:    cfg.LeaderboardChannelID,
		topN:         cfg.LeaderboardTopN,
		scanWindow:   cfg.ScanWindow,
		interval:     cfg.SyncInterval,
		initialDelay: cfg.SyncInitialDelay,
	}
}

// State returns the current cycle state.
func (s *Service) State() State {
	return State(s.state.Load())
}

// Start launches the schedule on its own goroutine. No-op without a
// configured channel.
func (s *Service) Start() {
	if s.channelID == "" {
		logger.Warning("leaderboard channel not configured, sync disabled")
		return
	}

	s.stop = make(chan struct{})
	go s.loop()
	logger.Info("Leaderboard sync started (every %s, first run in %s)", s.interval, s.initialDelay)
}

// Stop ends the schedule. An in-flight cycle finishes on its own.
func (s *Service) Stop() {
	if s.stop != nil {
		close(s.stop)
	}
}

func (s *Service) loop() {
	initial := time.NewTimer(s.initialDelay)
	defer initial.Stop()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-initial.C:
			s.runOnce()
		case <-ticker.C:
			s.runOnce()
		case <-s.stop:
			return
		}
	}
}

func (s *Service) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	if err := s.RunCycle(ctx); err != nil {
		logger.Error("leaderboard sync cycle: %v", err)
	}
}

// RunCycle executes one Fetching → Rendering → Publishing pass. A cycle that
// arrives while another is running is skipped; a failed step abandons the
// cycle and the next tick retries independently.
func (s *Service) RunCycle(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		logger.Warning("leaderboard sync still in progress, skipping tick")
		return nil
	}
	defer s.running.Store(false)
	defer s.state.Store(int32(StateIdle))

	s.state.Store(int32(StateFetching))
	board, err := s.store.Leaderboard(ctx, s.topN)
	if err != nil {
		return fmt.Errorf("fetch leaderboard: %w", err)
	}

	s.state.Store(int32(StateRendering))
	var content string
	if len(board) == 0 {
		// Valid terminal outcome for the cycle, not an error.
		content = renderEmpty()
	} else {
		content = s.render(board)
	}

	s.state.Store(int32(StatePublishing))
	if err := s.publish(content); err != nil {
		return fmt.Errorf("publish leaderboard: %w", err)
	}

	logger.Debug("leaderboard sync cycle complete (%d entries)", len(board))
	return nil
}

// publish edits the existing summary message when one is found in the recent
// window, otherwise sends a new one. This bounds the channel to a single
// live summary under normal operation.
func (s *Service) publish(content string) error {
	messages, err := s.pub.RecentMessages(s.channelID, s.scanWindow)
	if err != nil {
		return fmt.Errorf("scan channel: %w", err)
	}

	for _, msg := range messages {
		if msg.AuthorID == s.pub.SelfID() && strings.Contains(msg.Content, titleMarker) {
			return s.pub.EditMessage(s.channelID, msg.ID, content)
		}
	}
	return s.pub.SendMessage(s.channelID, content)
}
