package flags

import (
	"errors"

	"github.com/campusfm/projectperm/pkg/snapshot"
	"github.com/campusfm/projectperm/pkg/sqlx"
)

const (
	SnapshotBackendNone   = "none"
	SnapshotBackendMemory = "memory"
	SnapshotBackendFile   = "file"
	SnapshotBackendSQL    = "sql"
)

var (
	ErrSnapshotDirRequired  = errors.New("the file snapshot backend requires --snapshot-dir; see --help")
	ErrSnapshotConnRequired = errors.New("the sql snapshot backend requires a mysql connection; see --help")
)

type SnapshotFlag struct {
	Backend string `long:"backend" description:"Where the in-memory store saves its snapshot" choice:"none" choice:"memory" choice:"file" choice:"sql" default:"file"`
	Dir     string `long:"dir" description:"Directory for the file snapshot backend" default:"."`
	Key     string `long:"key" description:"Snapshot key" default:"projectAssignments"`
}

// Snapshotter returns nil when snapshots are disabled. conn is only used by
// the sql backend.
func (f SnapshotFlag) Snapshotter(conn *sqlx.DB) (*snapshot.Snapshotter, error) {
	var storage snapshot.Storage

	switch f.Backend {
	case SnapshotBackendNone:
		return nil, nil
	case SnapshotBackendMemory:
		storage = snapshot.NewMemoryStorage()
	case SnapshotBackendFile, "":
		if f.Dir == "" {
			return nil, ErrSnapshotDirRequired
		}
		storage = snapshot.NewFileStorage(f.Dir)
	case SnapshotBackendSQL:
		if conn == nil {
			return nil, ErrSnapshotConnRequired
		}
		storage = snapshot.NewSQLStorage(conn)
	default:
		return nil, errors.New("unknown snapshot backend: " + f.Backend)
	}

	return snapshot.NewSnapshotter(storage, f.Key), nil
}

func (f SnapshotFlag) NeedsConnection() bool {
	return f.Backend == SnapshotBackendSQL
}
