package middleware

import (
	"context"
	"errors"

	"github.com/keshon/toolmaker/internal/engine"
	"github.com/keshon/toolmaker/internal/texts"
	"github.com/keshon/toolmaker/pkg/cmd"
)

// WithErrorReplies turns the expected rejections into fixed replies to the
// caller. Other errors pass through to the transport.
func WithErrorReplies() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			err := c.Run(ctx, inv)
			var text string
			switch {
			case errors.Is(err, engine.ErrInactive):
				text = texts.Inactive
			case errors.Is(err, engine.ErrForeignSubject):
				text = texts.ForeignSubject
			default:
				return err
			}
			if inv.Reply == nil {
				return nil
			}
			return inv.Reply.Send(ctx, inv.UserID, text, nil)
		})
	}
}
