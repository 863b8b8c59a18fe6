package discord

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/toolmaker/internal/command"
	"github.com/keshon/toolmaker/pkg/cmd"
	"github.com/rs/zerolog/log"
)

// registerCommands overwrites the global slash commands when their
// definitions changed since the last registration. Global commands are
// the ones Discord offers in direct messages.
func (b *Bot) registerCommands() error {
	appID, err := b.appID()
	if err != nil {
		return err
	}

	defs := buildCommandDefinitions(b.registry)
	hash := hashCommands(defs)
	if cached, err := os.ReadFile(b.hashCache); err == nil && string(cached) == hash {
		log.Info().Str("component", "discord").Msg("Slash commands unchanged")
		return nil
	}

	if _, err := b.dg.ApplicationCommandBulkOverwrite(appID, "", defs); err != nil {
		return fmt.Errorf("overwrite commands: %w", err)
	}
	log.Info().Str("component", "discord").Int("count", len(defs)).Msg("Slash commands registered")

	if err := os.MkdirAll(filepath.Dir(b.hashCache), 0o755); err == nil {
		_ = os.WriteFile(b.hashCache, []byte(hash), 0o644)
	}
	return nil
}

// buildCommandDefinitions returns the slash definitions of the registered
// commands, walking through middleware wrappers via cmd.Root.
func buildCommandDefinitions(r *cmd.Registry) []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, c := range r.GetAll() {
		if p, ok := cmd.Root(c).(command.SlashProvider); ok {
			if def := p.SlashDefinition(); def != nil {
				defs = append(defs, def)
			}
		}
	}
	return defs
}

// appID returns the bot's application ID, fetching from Discord if not cached in State.
func (b *Bot) appID() (string, error) {
	if b.dg.State != nil && b.dg.State.User != nil && b.dg.State.User.ID != "" {
		return b.dg.State.User.ID, nil
	}
	u, err := b.dg.User("@me")
	if err != nil {
		return "", fmt.Errorf("failed to fetch bot user: %w", err)
	}
	return u.ID, nil
}

func commandHashPath(storagePath string) string {
	return filepath.Join(filepath.Dir(storagePath), "commands.sha1")
}

// hashCommands returns a deterministic SHA-1 of the stable fields of defs.
func hashCommands(defs []*discordgo.ApplicationCommand) string {
	stable := make([]map[string]any, 0, len(defs))
	for _, c := range defs {
		entry := map[string]any{
			"name":        c.Name,
			"description": c.Description,
			"type":        c.Type,
		}
		if len(c.Options) > 0 {
			entry["options"] = normalizeOptions(c.Options)
		}
		stable = append(stable, entry)
	}
	sort.Slice(stable, func(i, j int) bool {
		return stable[i]["name"].(string) < stable[j]["name"].(string)
	})
	data, _ := json.Marshal(stable)
	return fmt.Sprintf("%x", sha1.Sum(data))
}

func normalizeOptions(opts []*discordgo.ApplicationCommandOption) []map[string]any {
	out := make([]map[string]any, len(opts))
	for i, o := range opts {
		entry := map[string]any{
			"name":        o.Name,
			"description": o.Description,
			"type":        o.Type,
			"required":    o.Required,
		}
		if len(o.Options) > 0 {
			entry["options"] = normalizeOptions(o.Options)
		}
		if len(o.Choices) > 0 {
			choices := make([]string, len(o.Choices))
			for j, c := range o.Choices {
				choices[j] = fmt.Sprintf("%s=%v", c.Name, c.Value)
			}
			entry["choices"] = choices
		}
		out[i] = entry
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i]["name"].(string) < out[j]["name"].(string)
	})
	return out
}
