// Package postgres stores RSVP records in a PostgreSQL table.
package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/lib/pq"

	"eventrsvp/internal/domain"
)

const schema = `
	CREATE TABLE IF NOT EXISTS rsvps (
		id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		created_seq         BIGSERIAL NOT NULL,
		name                TEXT NOT NULL,
		name_key            TEXT NOT NULL,
		will_attend         BOOLEAN NOT NULL,
		has_children        BOOLEAN NOT NULL,
		children_names      TEXT,
		dietary_restriction TEXT,
		created_at          TIMESTAMPTZ NOT NULL,
		CONSTRAINT rsvps_name_key_unique UNIQUE (name_key)
	);
	CREATE INDEX IF NOT EXISTS rsvps_created_at_desc ON rsvps (created_at DESC, created_seq DESC);
`

// Open opens a pool for databaseURL and verifies it with a ping.
func Open(ctx context.Context, databaseURL string, timeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the rsvps table and its indexes if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return classify("ensure schema", err)
}

func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// 08: connection exception, 57P: operator intervention (shutdown, cannot connect now).
		class := string(pqErr.Code.Class())
		return class == "08" || class == "57"
	}
	return false
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
