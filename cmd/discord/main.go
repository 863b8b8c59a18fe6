// cmd/discord/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/rs/zerolog/log"

	"github.com/keshon/toolmaker/internal/app"
	"github.com/keshon/toolmaker/internal/config"
	"github.com/keshon/toolmaker/internal/discord"
	"github.com/keshon/toolmaker/internal/logging"
	v "github.com/keshon/toolmaker/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logFile, err := logging.Setup(logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	log.Info().Str("version", v.Version).Msgf("Starting %v bot...", v.AppName)

	if err := cfg.RequireDiscord(); err != nil {
		log.Fatal().Err(err).Msg("Discord is not configured")
	}

	a, err := app.New(cfg, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to assemble the workshop")
	}
	defer a.Close()

	bot := discord.NewBot(cfg, a.Workshop, a.Registry)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	if err := serve(bot.Run, sig, shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("Discord bot error")
		return
	}
	log.Info().Msg("Discord bot exited cleanly")
}

const shutdownTimeout = 30 * time.Second

// serve runs run until it fails or a signal arrives. After a signal it
// cancels run and waits up to timeout for it to return, so storage is
// closed only once the bot has stopped using it.
func serve(run func(context.Context) error, sig <-chan os.Signal, timeout time.Duration) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx) }()

	select {
	case s := <-sig:
		log.Info().Msgf("Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		return err
	}

	select {
	case err := <-errCh:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("shutdown did not finish within %s", timeout)
	}
}
