// Package discord wraps the Discord session used for role grants.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Client owns a Discord session with an explicit open/close lifecycle
type Client struct {
	session *discordgo.Session
}

// New creates a Discord client. Call Open before use and Close on shutdown.
func New(botToken string) (*Client, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	return &Client{session: session}, nil
}

// Open logs the session in
func (c *Client) Open() error {
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("error opening discord connection: %w", err)
	}
	log.Info("Discord session opened")
	return nil
}

// Close closes the session
func (c *Client) Close() error {
	return c.session.Close()
}

// GrantRole resolves the guild and member, then adds the role to the
// member's role set
func (c *Client) GrantRole(ctx context.Context, guildID, discordID, roleID string) error {
	if _, err := c.session.Guild(guildID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to fetch guild %s: %w", guildID, err)
	}

	if _, err := c.session.GuildMember(guildID, discordID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to fetch member %s in guild %s: %w", discordID, guildID, err)
	}

	if err := c.session.GuildMemberRoleAdd(guildID, discordID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to add role %s to member %s: %w", roleID, discordID, err)
	}

	log.WithFields(log.Fields{
		"guildID":   guildID,
		"discordID": discordID,
		"roleID":    roleID,
	}).Info("Granted role")

	return nil
}
