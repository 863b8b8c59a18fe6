// Package jobmgr runs named background jobs that can be stopped and waited
// for. A job is cancelled through its context and removed when it returns.
package jobmgr

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

var ErrRunning = errors.New("job is already running")

// Manager is safe for concurrent use.
type Manager struct {
	mu   sync.Mutex
	jobs map[string]context.CancelFunc
	wg   sync.WaitGroup
}

func NewManager() *Manager {
	return &Manager{jobs: make(map[string]context.CancelFunc)}
}

// Start runs fn in its own goroutine under a context derived from parent.
func (m *Manager) Start(parent context.Context, name string, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[name]; ok {
		return fmt.Errorf("%w: %s", ErrRunning, name)
	}

	ctx, cancel := context.WithCancel(parent)
	m.jobs[name] = cancel
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()
		log.Debug().Str("component", "jobmgr").Str("job", name).Msg("Job started")

		err := fn(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Str("component", "jobmgr").Str("job", name).Err(err).Msg("Job failed")
		} else {
			log.Debug().Str("component", "jobmgr").Str("job", name).Msg("Job finished")
		}

		m.mu.Lock()
		delete(m.jobs, name)
		m.mu.Unlock()
		cancel()
	}()
	return nil
}

// Shutdown cancels every job and waits until all of them return.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	for name, cancel := range m.jobs {
		cancel()
		delete(m.jobs, name)
	}
	m.mu.Unlock()
	m.wg.Wait()
}

// List returns the names of the running jobs, sorted.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.jobs))
	for k := range m.jobs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
