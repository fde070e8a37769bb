package snapshot

import (
	"context"
	"encoding/json"

	"github.com/campusfm/projectperm/pkg/logx"
)

const DefaultKey = "projectAssignments"

// Snapshotter writes and reads the whole assignment map under one key.
// There is no schema version; a change to the assignment shape breaks
// previously written snapshots.
type Snapshotter struct {
	storage Storage
	key     string
}

func NewSnapshotter(storage Storage, key string) *Snapshotter {
	if key == "" {
		key = DefaultKey
	}

	return &Snapshotter{
		storage: storage,
		key:     key,
	}
}

func (s *Snapshotter) Key() string {
	return s.key
}

func (s *Snapshotter) Save(ctx context.Context, logger logx.Logger, entries []Entry) error {
	logger = logger.WithName("save-snapshot").WithData(logx.Data{Key: "snapshot.key", Value: s.key})

	if entries == nil {
		entries = []Entry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		logger.Error(failedToEncodeSnapshot, err)
		return err
	}

	if err = s.storage.Set(ctx, s.key, string(data)); err != nil {
		logger.Error(failedToWriteSnapshot, err)
		return err
	}

	logger.Debug(success, logx.Data{Key: "projects", Value: len(entries)})
	return nil
}

// Load returns the stored entries, or false when nothing has been saved
// under the key.
func (s *Snapshotter) Load(ctx context.Context, logger logx.Logger) ([]Entry, bool, error) {
	logger = logger.WithName("load-snapshot").WithData(logx.Data{Key: "snapshot.key", Value: s.key})

	data, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		logger.Error(failedToReadSnapshot, err)
		return nil, false, err
	}

	if !ok {
		logger.Debug(snapshotNotFound)
		return nil, false, nil
	}

	var entries []Entry
	if err = json.Unmarshal([]byte(data), &entries); err != nil {
		logger.Error(failedToDecodeSnapshot, err)
		return nil, false, err
	}

	logger.Debug(success, logx.Data{Key: "projects", Value: len(entries)})
	return entries, true, nil
}
