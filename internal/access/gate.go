// Package access decides whether an invoking identity may run a command.
package access

import (
	"context"
	"fmt"

	"github.com/rayaadinda/bot-discord/internal/logger"
)

// Level is the minimum requirement a command declares. Admin is reserved;
// no command uses it yet.
type Level int

const (
	LevelUnlinked Level = iota
	LevelLinked
	LevelAdmin
)

// LinkChecker is the identity-resolver dependency: true when the Discord id
// maps to a linked account.
type LinkChecker interface {
	IsLinked(ctx context.Context, discordID string) (bool, error)
}

// Decision is the gate's answer. Reason is non-empty exactly when access is
// denied.
type Decision struct {
	Allowed bool
	Reason  string
}

// commandLevels is the static policy table. Adding a command without an
// entry here is a wiring bug that Check reports as an error, not a denial.
var commandLevels = map[string]Level{
	"faq":         LevelUnlinked,
	"status":      LevelUnlinked,
	"link":        LevelUnlinked,
	"unlink":      LevelLinked,
	"point":       LevelLinked,
	"misi":        LevelLinked,
	"tierku":      LevelLinked,
	"upgrade":     LevelLinked,
	"leaderboard": LevelUnlinked,
}

const linkRequiredReason = "This command requires a linked account. Use /link to connect your Discord account."

// Gate enforces the table against the identity resolver.
type Gate struct {
	links LinkChecker
}

func NewGate(links LinkChecker) *Gate {
	return &Gate{links: links}
}

// Check returns the access decision for a command invocation. An unknown
// command name is an error distinct from a denial. A transport failure on
// the linked-check collapses to a denial with a logged cause.
func (g *Gate) Check(ctx context.Context, commandName, discordID string) (Decision, error) {
	level, ok := commandLevels[commandName]
	if !ok {
		return Decision{}, fmt.Errorf("unknown command %q", commandName)
	}

	if level >= LevelLinked {
		linked, err := g.links.IsLinked(ctx, discordID)
		if err != nil {
			logger.Error("linked-check for %s on /%s: %v", discordID, commandName, err)
			linked = false
		}
		if !linked {
			return Decision{Allowed: false, Reason: linkRequiredReason}, nil
		}
	}

	return Decision{Allowed: true}, nil
}

// UserLevel reports the identity's current access level.
func (g *Gate) UserLevel(ctx context.Context, discordID string) Level {
	linked, err := g.links.IsLinked(ctx, discordID)
	if err != nil {
		logger.Error("linked-check for %s: %v", discordID, err)
		return LevelUnlinked
	}
	if linked {
		return LevelLinked
	}
	return LevelUnlinked
}
