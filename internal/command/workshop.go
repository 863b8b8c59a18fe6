package command

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/toolmaker/pkg/cmd"
)

type StartCommand struct{ Workshop Workshop }

func (c *StartCommand) Name() string        { return "start" }
func (c *StartCommand) Description() string { return "Open the workshop and bind it to you" }

func (c *StartCommand) SlashDefinition() *discordgo.ApplicationCommand { return slash(c) }

func (c *StartCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	msgs, err := c.Workshop.Start(ctx, inv.UserID)
	if err != nil {
		return err
	}
	return reply(ctx, c.Workshop, inv, msgs)
}

type DoneCommand struct{ Workshop Workshop }

func (c *DoneCommand) Name() string        { return "done" }
func (c *DoneCommand) Description() string { return "A tool is ready (+12h, +18h every 10th)" }

func (c *DoneCommand) SlashDefinition() *discordgo.ApplicationCommand { return slash(c) }

func (c *DoneCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	msgs, err := c.Workshop.Done(ctx, inv.UserID)
	if err != nil {
		return err
	}
	return reply(ctx, c.Workshop, inv, msgs)
}

type TriedCommand struct{ Workshop Workshop }

func (c *TriedCommand) Name() string        { return "tried" }
func (c *TriedCommand) Description() string { return "Working on the shape (+4h)" }

func (c *TriedCommand) SlashDefinition() *discordgo.ApplicationCommand { return slash(c) }

func (c *TriedCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	msgs, err := c.Workshop.Tried(ctx, inv.UserID)
	if err != nil {
		return err
	}
	return reply(ctx, c.Workshop, inv, msgs)
}

type PenaltyCommand struct{ Workshop Workshop }

func (c *PenaltyCommand) Name() string        { return "penalty" }
func (c *PenaltyCommand) Description() string { return "A mishap in the workshop (-1h)" }

func (c *PenaltyCommand) SlashDefinition() *discordgo.ApplicationCommand { return slash(c) }

func (c *PenaltyCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	msgs, err := c.Workshop.Penalty(ctx, inv.UserID)
	if err != nil {
		return err
	}
	return reply(ctx, c.Workshop, inv, msgs)
}

type StatusCommand struct{ Workshop Workshop }

func (c *StatusCommand) Name() string        { return "status" }
func (c *StatusCommand) Description() string { return "Check the supplies" }

func (c *StatusCommand) SlashDefinition() *discordgo.ApplicationCommand { return slash(c) }

func (c *StatusCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	msgs, err := c.Workshop.Status(ctx)
	if err != nil {
		return err
	}
	return reply(ctx, c.Workshop, inv, msgs)
}

// PlanCommand answers the morning question explicitly. Its slash form
// offers the two answers as choices.
type PlanCommand struct{ Workshop Workshop }

func (c *PlanCommand) Name() string        { return "plan" }
func (c *PlanCommand) Description() string { return "Answer the morning question: is there a plan for today?" }

func (c *PlanCommand) SlashDefinition() *discordgo.ApplicationCommand {
	def := slash(c)
	def.Options = []*discordgo.ApplicationCommandOption{{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "answer",
		Description: "Four tasks for today?",
		Required:    true,
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "yes", Value: "yes"},
			{Name: "no", Value: "no"},
		},
	}}
	return def
}

func (c *PlanCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	msgs, err := c.Workshop.AnswerPlan(ctx, inv.UserID, strings.Join(inv.Args, " "))
	if err != nil {
		return err
	}
	return reply(ctx, c.Workshop, inv, msgs)
}
