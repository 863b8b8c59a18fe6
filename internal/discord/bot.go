// Package discord is the Discord transport: slash commands, direct
// messages and mentions in, replies and scheduled notifications out.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/toolmaker/internal/command"
	"github.com/keshon/toolmaker/internal/config"
	"github.com/keshon/toolmaker/internal/engine"
	"github.com/keshon/toolmaker/pkg/cmd"
	"github.com/keshon/toolmaker/pkg/jobmgr"
	"github.com/rs/zerolog/log"
)

// Bot is a Discord bot
type Bot struct {
	dg        *discordgo.Session
	cfg       *config.Config
	workshop  *engine.Workshop
	registry  *cmd.Registry
	hashCache string
}

func NewBot(cfg *config.Config, workshop *engine.Workshop, registry *cmd.Registry) *Bot {
	return &Bot{
		cfg:       cfg,
		workshop:  workshop,
		registry:  registry,
		hashCache: commandHashPath(cfg.StoragePath),
	}
}

// Run connects, starts the tick loop and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	jobs := jobmgr.NewManager()
	notifier := &DMNotifier{dg: dg}
	if err := jobs.Start(ctx, "scheduler", func(ctx context.Context) error {
		b.workshop.Run(ctx, b.cfg.TickInterval, notifier)
		return nil
	}); err != nil {
		return err
	}
	log.Info().Str("component", "discord").Strs("jobs", jobs.List()).Msg("Background jobs started")

	<-ctx.Done()
	log.Info().Str("component", "discord").Msg("Shutdown signal received, cleaning up")
	// Let an in-flight tick save before the session and storage close.
	jobs.Shutdown()
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if b.cfg.InitSlashCommands {
		if err := b.registerCommands(); err != nil {
			log.Error().Str("component", "discord").Err(err).Msg("Error registering slash commands")
		}
	} else {
		log.Info().Str("component", "discord").Msg("Registering slash commands skipped")
	}
	log.Info().Str("component", "discord").Str("user", r.User.Username).Msg("Discord bot is running")
}

// onInteractionCreate defers the response first: rendering a reply may wait
// on image generation far longer than the interaction deadline.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	name := data.Name
	c := b.registry.Get(name)
	if c == nil {
		log.Warn().Str("component", "discord").Str("command", name).Msg("Unknown command")
		return
	}

	if err := RespondDeferred(s, i); err != nil {
		log.Error().Str("component", "discord").Str("command", name).Err(err).Msg("Failed to defer interaction")
		return
	}

	reply := &followupResponder{s: s, i: i}
	inv := &cmd.Invocation{UserID: interactionUserID(i), Args: optionArgs(data.Options), Reply: reply, Data: i}
	if err := c.Run(context.Background(), inv); err != nil {
		log.Error().Str("component", "discord").Str("command", name).Err(err).Msg("Error running slash command")
		_ = FollowupEphemeral(s, i, fmt.Sprintf("Error running command: %v", err))
		return
	}
	if !reply.sent {
		_ = s.InteractionResponseDelete(i.Interaction)
	}
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}
	if m.GuildID != "" && !mentions(m.Mentions, s.State.User.ID) {
		return
	}
	text := stripMention(m.Content, s.State.User.ID)
	if text == "" {
		return
	}

	c := b.registry.Get(command.TextCommand)
	if c == nil {
		return
	}
	inv := &cmd.Invocation{
		UserID: m.Author.ID,
		Args:   []string{text},
		Reply:  &channelResponder{s: s, channelID: m.ChannelID},
		Data:   m,
	}
	if err := c.Run(context.Background(), inv); err != nil {
		log.Error().Str("component", "discord").Err(err).Msg("Error handling message")
		_, _ = s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Error: %v", err))
	}
}

// optionArgs flattens the top-level option values in declaration order.
func optionArgs(opts []*discordgo.ApplicationCommandInteractionDataOption) []string {
	args := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Value != nil {
			args = append(args, fmt.Sprint(o.Value))
		}
	}
	return args
}

// interactionUserID returns the invoking user in guilds and in DMs.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
