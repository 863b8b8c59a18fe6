package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/keshon/toolmaker/internal/app"
	"github.com/keshon/toolmaker/internal/clock"
	"github.com/keshon/toolmaker/internal/config"
	"github.com/keshon/toolmaker/internal/logging"
	v "github.com/keshon/toolmaker/internal/version"
)

const atLayout = "2006-01-02 15:04"

type options struct {
	at         string
	user       string
	imageDir   string
	verbose    bool
	skipDotEnv bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "toolmaker",
		Short:        v.AppDescription,
		Long:         v.AppName + " drives the workshop from a terminal against the same storage as the bot.",
		Version:      v.Version,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.at, "at", "", `act at this local time ("`+atLayout+`" or RFC3339) instead of now`)
	pf.StringVar(&o.user, "user", "cli", "subject id to act as")
	pf.StringVar(&o.imageDir, "save-images", "", "write generated images into this directory")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log at debug level")
	pf.BoolVar(&o.skipDotEnv, "no-dotenv", false, "ignore .env and read only the environment")

	root.AddCommand(workshopCmds(o)...)
	root.AddCommand(newSayCmd(o), newPlanCmd(o), newTickCmd(o), newStateCmd(o))
	return root
}

// open loads the configuration and assembles the workshop. The returned
// func releases storage and the log file.
func (o *options) open() (*app.App, func(), error) {
	load := config.Load
	if o.skipDotEnv {
		load = config.Parse
	}
	cfg, err := load()
	if err != nil {
		return nil, nil, err
	}

	level := "warn"
	if o.verbose {
		level = "debug"
	}
	logFile, err := logging.Setup(logging.Options{
		Level:      level,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	if err != nil {
		return nil, nil, err
	}

	var clk clock.Clock
	if o.at != "" {
		t, err := parseAt(o.at, cfg.Location())
		if err != nil {
			logFile.Close()
			return nil, nil, err
		}
		clk = clock.NewManual(t)
	}

	a, err := app.New(cfg, clk)
	if err != nil {
		logFile.Close()
		return nil, nil, err
	}
	return a, func() {
		a.Close()
		logFile.Close()
	}, nil
}

func parseAt(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(atLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at %q: want %q or RFC3339", s, atLayout)
	}
	return t.In(loc), nil
}

func (o *options) printer(w io.Writer) *printer {
	return &printer{w: w, dir: o.imageDir}
}
