package inmemory

import (
	"sync"

	"code.cloudfoundry.org/clock"
	"github.com/campusfm/projectperm/pkg/perm"
	"github.com/campusfm/projectperm/pkg/snapshot"
)

// Store keeps assignments in process memory, keyed by project. When a
// snapshotter is configured every mutation rewrites the whole snapshot.
type Store struct {
	lock sync.RWMutex

	clock       clock.Clock
	snapshotter *snapshot.Snapshotter

	projectIDs  []string
	assignments map[string][]perm.Assignment
}

type Option func(*Store)

func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

func WithSnapshotter(snapshotter *snapshot.Snapshotter) Option {
	return func(s *Store) {
		s.snapshotter = snapshotter
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		clock:       clock.NewClock(),
		assignments: make(map[string][]perm.Assignment),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Entries returns a copy of the store contents in project insertion order.
func (s *Store) Entries() []snapshot.Entry {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.entries()
}

func (s *Store) entries() []snapshot.Entry {
	entries := make([]snapshot.Entry, 0, len(s.projectIDs))
	for _, projectID := range s.projectIDs {
		entries = append(entries, snapshot.Entry{
			ProjectID:   projectID,
			Assignments: copyAssignments(s.assignments[projectID]),
		})
	}

	return entries
}

func (s *Store) replace(entries []snapshot.Entry) {
	s.projectIDs = make([]string, 0, len(entries))
	s.assignments = make(map[string][]perm.Assignment, len(entries))

	for _, entry := range entries {
		if _, seen := s.assignments[entry.ProjectID]; !seen {
			s.projectIDs = append(s.projectIDs, entry.ProjectID)
		}
		s.assignments[entry.ProjectID] = copyAssignments(entry.Assignments)
	}
}

func copyAssignments(assignments []perm.Assignment) []perm.Assignment {
	return append(make([]perm.Assignment, 0, len(assignments)), assignments...)
}
