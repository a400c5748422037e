// Package storage implements durable backends for the progress record
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/folio-arcade/progress"
)

// Driver names accepted by Open
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name
var ErrUnknownDriver = errors.New("unknown store driver")

// Open connects the backend named by driver
// dsn is a file path for sqlite, a connection string for postgres and a redis:// URL for redis
func Open(ctx context.Context, driver, dsn string) (progress.Backend, error) {
	var (
		backend progress.Backend
		err     error
	)
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverSQLite, "":
		backend, err = asBackend(OpenSQLite(ctx, dsn))
	case DriverPostgres:
		backend, err = asBackend(OpenPostgres(ctx, dsn))
	case DriverRedis:
		backend, err = asBackend(OpenRedis(ctx, dsn))
	case DriverMemory:
		backend = NewMemory()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
	if err != nil {
		return nil, err
	}
	return backend, nil
}

// asBackend keeps a failed constructor from leaking a typed nil into the interface
func asBackend[B progress.Backend](b B, err error) (progress.Backend, error) {
	if err != nil {
		return nil, err
	}
	return b, nil
}
