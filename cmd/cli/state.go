package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/keshon/toolmaker/internal/hunger"
	"github.com/keshon/toolmaker/internal/state"
)

type stateView struct {
	Now       time.Time    `json:"now"`
	Active    bool         `json:"active"`
	Mode      string       `json:"mode"`
	Deficit   float64      `json:"deficit_hours"`
	Remaining float64      `json:"remaining_hours"`
	State     *state.State `json:"state"`
}

func newStateCmd(o *options) *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   "state",
		Short: "Dump the persisted workshop state",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			a, done, err := o.open()
			if err != nil {
				return err
			}
			defer done()

			s, now, err := a.Workshop.Snapshot(cc.Context())
			if err != nil {
				return err
			}
			mode, left := hunger.Remaining(s, now)
			view := stateView{
				Now:       now,
				Active:    a.Workshop.Active(now),
				Mode:      mode.String(),
				Deficit:   hunger.DeficitHours(s, now),
				Remaining: left,
				State:     s,
			}

			switch output {
			case "json":
				enc := json.NewEncoder(cc.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			case "yaml":
				// Round-trip through JSON so YAML keys follow the json tags.
				raw, err := json.Marshal(view)
				if err != nil {
					return err
				}
				var doc map[string]any
				if err := json.Unmarshal(raw, &doc); err != nil {
					return err
				}
				enc := yaml.NewEncoder(cc.OutOrStdout())
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(doc)
			default:
				return fmt.Errorf("unknown output %q (json|yaml)", output)
			}
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "yaml", "output format: json|yaml")
	return c
}
