package db

import (
	"code.cloudfoundry.org/clock"
	"github.com/campusfm/projectperm/pkg/sqlx"
)

// Store keeps assignments in the project_assignment table. Writes go
// straight to the database, so there is no separate snapshot to fail.
type Store struct {
	conn  *sqlx.DB
	clock clock.Clock
}

type Option func(*Store)

func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

func NewStore(conn *sqlx.DB, opts ...Option) *Store {
	s := &Store{
		conn:  conn,
		clock: clock.NewClock(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
