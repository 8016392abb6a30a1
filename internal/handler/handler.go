// Package handler is the slash-command glue: it routes interactions through
// the access gate into the core services and renders short replies.
package handler

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/rayaadinda/bot-discord/internal/access"
	"github.com/rayaadinda/bot-discord/internal/config"
	"github.com/rayaadinda/bot-discord/internal/logger"
	"github.com/rayaadinda/bot-discord/internal/points"
	"github.com/rayaadinda/bot-discord/internal/rank"
	"github.com/rayaadinda/bot-discord/internal/store"
	"github.com/rayaadinda/bot-discord/internal/tier"
)

const commandTimeout = 15 * time.Second

const genericErrorReply = "Terjadi kesalahan. Coba lagi nanti ya."

type Handler struct {
	cfg    *config.Config
	store  store.Store
	ledger *points.Ledger
	ranks  *rank.Resolver
	tiers  *tier.Calculator
	gate   *access.Gate
}

func New(cfg *config.Config, st store.Store, ledger *points.Ledger, ranks *rank.Resolver, tiers *tier.Calculator, gate *access.Gate) *Handler {
	return &Handler{
		cfg:    cfg,
		store:  st,
		ledger: ledger,
		ranks:  ranks,
		tiers:  tiers,
		gate:   gate,
	}
}

// Register attaches the interaction dispatcher to the gateway session.
func (h *Handler) Register(dg *discordgo.Session) {
	dg.AddHandler(h.onInteraction)
}

func (h *Handler) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	discordID := invokerID(i)
	if discordID == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	decision, err := h.gate.Check(ctx, name, discordID)
	if err != nil {
		// Wiring bug, not a user mistake.
		logger.Error("access check for /%s: %v", name, err)
		respond(s, i, genericErrorReply, true)
		return
	}
	if !decision.Allowed {
		respond(s, i, decision.Reason, true)
		return
	}

	switch name {
	case "link":
		h.handleLink(ctx, s, i, discordID)
	case "unlink":
		h.handleUnlink(ctx, s, i, discordID)
	case "point":
		h.handlePoint(ctx, s, i, discordID)
	case "tierku":
		h.handleTierku(ctx, s, i, discordID)
	case "upgrade":
		h.handleUpgrade(ctx, s, i, discordID)
	case "misi":
		h.handleMisi(ctx, s, i)
	case "leaderboard":
		h.handleLeaderboard(ctx, s, i)
	case "status":
		h.handleStatus(ctx, s, i, discordID)
	case "faq":
		h.handleFaq(ctx, s, i)
	default:
		logger.Error("command /%s passed the gate but has no handler", name)
		respond(s, i, genericErrorReply, true)
	}
}

func invokerID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func invokerName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return ""
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string, ephemeral bool) {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   flags,
		},
	})
	if err != nil {
		logger.Error("interaction respond: %v", err)
	}
}

func stringOption(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
