package command

import (
	"context"
	"strings"

	"github.com/keshon/toolmaker/pkg/cmd"
)

// TextHandlerCommand interprets free text: plan answers and the production,
// attempt and penalty vocabulary. It has no slash form.
type TextHandlerCommand struct{ Workshop Workshop }

func (c *TextHandlerCommand) Name() string        { return TextCommand }
func (c *TextHandlerCommand) Description() string { return "Talk to the workshop in plain words" }

func (c *TextHandlerCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	text := strings.TrimSpace(strings.Join(inv.Args, " "))
	if text == "" {
		return nil
	}
	msgs, err := c.Workshop.HandleText(ctx, inv.UserID, text)
	if err != nil {
		return err
	}
	return reply(ctx, c.Workshop, inv, msgs)
}
