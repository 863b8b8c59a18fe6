// Package app assembles the workshop from the configuration for the
// binaries.
package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/keshon/toolmaker/internal/ai"
	"github.com/keshon/toolmaker/internal/clock"
	"github.com/keshon/toolmaker/internal/command"
	"github.com/keshon/toolmaker/internal/config"
	"github.com/keshon/toolmaker/internal/engine"
	"github.com/keshon/toolmaker/internal/middleware"
	"github.com/keshon/toolmaker/internal/scheduler"
	"github.com/keshon/toolmaker/internal/storage"
	"github.com/keshon/toolmaker/pkg/cmd"
)

type App struct {
	Config   *config.Config
	Clock    clock.Clock
	Store    storage.Storage
	Workshop *engine.Workshop
	Registry *cmd.Registry
}

// New wires storage, the image generator, the workshop and the commands.
// A nil clk means the wall clock in the configured timezone.
func New(cfg *config.Config, clk clock.Clock) (*App, error) {
	if clk == nil {
		clk = clock.NewLocal(cfg.Location())
	}

	store, err := storage.Open(cfg.StorageDriver, cfg.StoragePath, cfg.StorageBackups, clk)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	images, err := ai.New(cfg)
	if err != nil {
		store.Close()
		return nil, err
	}

	from, until := cfg.Window()
	workshop := engine.New(engine.Options{
		Store:    store,
		Clock:    clk,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Images:   images,
		Schedule: scheduler.FromConfig(cfg),
		From:     from,
		Until:    until,
	})

	registry := cmd.NewRegistry()
	command.Register(registry, workshop,
		middleware.WithCommandLogger(),
		middleware.WithErrorReplies(),
	)

	return &App{
		Config:   cfg,
		Clock:    clk,
		Store:    store,
		Workshop: workshop,
		Registry: registry,
	}, nil
}

func (a *App) Close() error { return a.Store.Close() }
