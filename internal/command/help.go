package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/toolmaker/pkg/cmd"
)

type HelpCommand struct{ Registry *cmd.Registry }

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "List the workshop commands" }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand { return slash(c) }

func (c *HelpCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	return inv.Reply.Send(ctx, inv.UserID, buildHelp(c.Registry), nil)
}

func buildHelp(r *cmd.Registry) string {
	var b strings.Builder
	b.WriteString("⚒️ Workshop commands\n")
	for _, c := range r.GetAll() {
		if _, ok := cmd.Root(c).(SlashProvider); !ok {
			continue
		}
		fmt.Fprintf(&b, "\n/%s: %s", c.Name(), c.Description())
	}
	b.WriteString("\n\nPlain words work too: \"done\", \"tried\", \"failed\".")
	return b.String()
}
