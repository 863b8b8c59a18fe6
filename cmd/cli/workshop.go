package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keshon/toolmaker/internal/command"
	"github.com/keshon/toolmaker/pkg/cmd"
)

// workshopCmds mirrors the bot commands one to one.
func workshopCmds(o *options) []*cobra.Command {
	var out []*cobra.Command
	for _, c := range []cmd.Command{
		&command.StartCommand{},
		&command.DoneCommand{},
		&command.TriedCommand{},
		&command.PenaltyCommand{},
		&command.StatusCommand{},
	} {
		name := c.Name()
		out = append(out, &cobra.Command{
			Use:   name,
			Short: c.Description(),
			Args:  cobra.NoArgs,
			RunE: func(cc *cobra.Command, _ []string) error {
				return o.invoke(cc, name, nil)
			},
		})
	}
	return out
}

func newSayCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "say <text>",
		Short:   "Talk to the workshop in plain words",
		Example: `  toolmaker say "yes"` + "\n" + `  toolmaker say "сделал скребок"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			return o.invoke(cc, command.TextCommand, []string{strings.Join(args, " ")})
		},
	}
}

func newPlanCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:       "plan <yes|no>",
		Short:     "Answer the morning question: is there a plan for today?",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"yes", "no"},
		RunE: func(cc *cobra.Command, args []string) error {
			return o.invoke(cc, "plan", args)
		},
	}
}

func (o *options) invoke(cc *cobra.Command, name string, args []string) error {
	a, done, err := o.open()
	if err != nil {
		return err
	}
	defer done()

	c := a.Registry.Get(name)
	if c == nil {
		return fmt.Errorf("unknown command %q", name)
	}
	return c.Run(cc.Context(), &cmd.Invocation{
		UserID: o.user,
		Args:   args,
		Reply:  o.printer(cc.OutOrStdout()),
	})
}

func newTickCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tick",
		Short: "Run the scheduler once and print whatever it sends",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			a, done, err := o.open()
			if err != nil {
				return err
			}
			defer done()

			recipient, msgs, err := a.Workshop.Tick(cc.Context())
			if err != nil {
				return err
			}
			if len(msgs) == 0 {
				fmt.Fprintln(cc.ErrOrStderr(), "nothing due")
				return nil
			}
			fmt.Fprintf(cc.OutOrStdout(), "to %s:\n\n", recipient)
			return a.Workshop.Deliver(cc.Context(), o.printer(cc.OutOrStdout()), recipient, msgs)
		},
	}
}
