// Package middleware holds the cross-cutting command wrappers.
package middleware

import (
	"context"
	"time"

	"github.com/keshon/toolmaker/pkg/cmd"
	"github.com/rs/zerolog/log"
)

// WithCommandLogger logs every command execution with its caller, duration
// and error.
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			start := time.Now()
			err := c.Run(ctx, inv)

			ev := log.Info()
			if err != nil {
				ev = log.Warn().Err(err)
			}
			ev.Str("component", "command").
				Str("command", c.Name()).
				Str("subject", inv.UserID).
				Dur("took", time.Since(start)).
				Msg("Command executed")
			return err
		})
	}
}
