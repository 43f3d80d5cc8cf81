package storage

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// Pool hands out SQLite connections keyed by database path. The probed
// databases are owned by other systems, so connections are opened as-is
// with no schema setup. Not safe for concurrent use; consolidation is
// single-threaded by contract.
type Pool struct {
	conns map[string]*sql.DB
}

func NewPool() *Pool {
	return &Pool{conns: map[string]*sql.DB{}}
}

// Get returns the cached connection for path, opening one on first use.
// The database file must already exist: sql.Open would happily create an
// empty database otherwise and every probe would report missing tables.
func (p *Pool) Get(path string) (*sql.DB, error) {
	if conn, ok := p.conns[path]; ok {
		return conn, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("database not found: %s", path)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	p.conns[path] = conn
	return conn, nil
}

// Close closes every pooled connection. Close errors are reported after
// all connections have been attempted.
func (p *Pool) Close() error {
	var firstErr error
	for path, conn := range p.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing %s: %w", path, err)
		}
		delete(p.conns, path)
	}
	return firstErr
}
