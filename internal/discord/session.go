// Package discord wraps the gateway session behind the narrow surfaces the
// core consumes: publishing to a channel and replying to interactions.
package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/rayaadinda/bot-discord/internal/leaderboard"
)

// Session owns the gateway connection.
type Session struct {
	dg *discordgo.Session
}

func New(token string) (*Session, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages
	return &Session{dg: dg}, nil
}

// Open connects to the gateway.
func (s *Session) Open() error {
	if err := s.dg.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	return nil
}

func (s *Session) Close() error {
	return s.dg.Close()
}

// Raw exposes the underlying session for handler registration.
func (s *Session) Raw() *discordgo.Session {
	return s.dg
}

// SelfID is the bot's own user id, used to recognize its messages.
func (s *Session) SelfID() string {
	if s.dg.State != nil && s.dg.State.User != nil {
		return s.dg.State.User.ID
	}
	return ""
}

// RecentMessages fetches the newest messages of a channel, newest first.
func (s *Session) RecentMessages(channelID string, limit int) ([]leaderboard.Message, error) {
	msgs, err := s.dg.ChannelMessages(channelID, limit, "", "", "")
	if err != nil {
		return nil, fmt.Errorf("fetch channel messages: %w", err)
	}

	out := make([]leaderboard.Message, 0, len(msgs))
	for _, m := range msgs {
		authorID := ""
		if m.Author != nil {
			authorID = m.Author.ID
		}
		out = append(out, leaderboard.Message{
			ID:       m.ID,
			AuthorID: authorID,
			Content:  m.Content,
		})
	}
	return out, nil
}

func (s *Session) SendMessage(channelID, content string) error {
	_, err := s.dg.ChannelMessageSend(channelID, content)
	return err
}

func (s *Session) EditMessage(channelID, messageID, content string) error {
	_, err := s.dg.ChannelMessageEdit(channelID, messageID, content)
	return err
}
