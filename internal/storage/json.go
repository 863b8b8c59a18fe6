package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/keshon/toolmaker/datastore"
	"github.com/keshon/toolmaker/internal/clock"
	"github.com/keshon/toolmaker/internal/state"
)

// JSONStore keeps the state as one JSON document on disk.
type JSONStore struct {
	file  *datastore.File
	clock clock.Clock
}

func NewJSON(path string, backups int, clk clock.Clock) (*JSONStore, error) {
	cfg := datastore.DefaultConfig(path)
	cfg.BackupCount = backups
	file, err := datastore.New(cfg)
	if err != nil {
		return nil, err
	}
	return &JSONStore{file: file, clock: clk}, nil
}

func (s *JSONStore) Load(_ context.Context) (*state.State, error) {
	data, err := s.file.Read()
	if errors.Is(err, datastore.ErrNotExist) {
		return nil, state.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load state from %s: %w", s.file.Path(), err)
	}
	return state.Decode(data, clock.DateString(s.clock.Now()))
}

func (s *JSONStore) Save(_ context.Context, st *state.State) error {
	data, err := state.Encode(st)
	if err != nil {
		return err
	}
	if err := s.file.Write(data); err != nil {
		return fmt.Errorf("save state to %s: %w", s.file.Path(), err)
	}
	return nil
}

func (s *JSONStore) Close() error { return nil }
