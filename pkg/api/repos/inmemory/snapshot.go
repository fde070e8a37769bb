package inmemory

import (
	"context"

	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/perm"
)

// Load replaces the store contents with the saved snapshot. A missing
// snapshot leaves the store as it is, and so does a failed read.
func (s *Store) Load(ctx context.Context, logger logx.Logger) error {
	if s.snapshotter == nil {
		return nil
	}

	logger = logger.WithName("in-memory-store")

	entries, ok, err := s.snapshotter.Load(ctx, logger)
	if err != nil {
		logger.Error(failedToLoadSnapshot, err)
		return err
	}

	if !ok {
		return nil
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.replace(entries)
	logger.Info(loadedSnapshot, logx.Data{Key: "projects", Value: len(entries)})

	return nil
}

// persist must be called with the write lock held so that snapshots are
// written in mutation order.
func (s *Store) persist(ctx context.Context, logger logx.Logger) error {
	if s.snapshotter == nil {
		return nil
	}

	if err := s.snapshotter.Save(ctx, logger, s.entries()); err != nil {
		logger.Error(failedToSaveSnapshot, err)
		return perm.NewErrPersistenceFailed(err)
	}

	return nil
}
