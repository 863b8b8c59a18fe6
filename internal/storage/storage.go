// Package storage implements state.Store over a JSON file or SQLite.
package storage

import (
	"fmt"
	"io"

	"github.com/keshon/toolmaker/internal/clock"
	"github.com/keshon/toolmaker/internal/state"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Storage is a state.Store that holds resources.
type Storage interface {
	state.Store
	io.Closer
}

// Open returns the store for driver. clk supplies the date that seeds the
// defaults of documents missing keys.
func Open(driver, path string, backups int, clk clock.Clock) (Storage, error) {
	switch driver {
	case DriverJSON:
		return NewJSON(path, backups, clk)
	case DriverSQLite:
		return NewSQLite(path, clk)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
