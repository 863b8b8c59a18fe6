// Package command holds the toolmaker commands. Every command runs one
// workshop operation for the invoking user and renders the reply through
// the invocation's responder.
package command

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/toolmaker/internal/notify"
	"github.com/keshon/toolmaker/pkg/cmd"
)

// Workshop is the part of the engine the commands drive.
type Workshop interface {
	Start(ctx context.Context, subject string) ([]notify.Message, error)
	Done(ctx context.Context, subject string) ([]notify.Message, error)
	Tried(ctx context.Context, subject string) ([]notify.Message, error)
	Penalty(ctx context.Context, subject string) ([]notify.Message, error)
	AnswerPlan(ctx context.Context, subject, text string) ([]notify.Message, error)
	Status(ctx context.Context) ([]notify.Message, error)
	HandleText(ctx context.Context, subject, text string) ([]notify.Message, error)
	Deliver(ctx context.Context, n notify.Notifier, recipient string, msgs []notify.Message) error
}

// SlashProvider is implemented by commands exposed as Discord slash commands.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// TextCommand is the name of the free-text command that receives direct
// messages and mentions.
const TextCommand = "text"

func slash(c cmd.Command) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

// reply delivers msgs to the caller.
func reply(ctx context.Context, w Workshop, inv *cmd.Invocation, msgs []notify.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	return w.Deliver(ctx, inv.Reply, inv.UserID, msgs)
}

// Register adds every command to r, each wrapped by mws.
func Register(r *cmd.Registry, w Workshop, mws ...cmd.Middleware) {
	commands := []cmd.Command{
		&StartCommand{Workshop: w},
		&DoneCommand{Workshop: w},
		&TriedCommand{Workshop: w},
		&PenaltyCommand{Workshop: w},
		&StatusCommand{Workshop: w},
		&PlanCommand{Workshop: w},
		&TextHandlerCommand{Workshop: w},
		&HelpCommand{Registry: r},
	}
	for _, c := range commands {
		r.Register(cmd.Apply(c, mws...))
	}
}
