package migrations

import (
	"github.com/campusfm/projectperm/pkg/sqlx"
)

var TableName = "projectperm_migrations"

var Migrations = []sqlx.Migration{
	{
		Name: "create_project_assignment_table",
		Up:   createProjectAssignmentTableUp,
		Down: createProjectAssignmentTableDown,
	},
	{
		Name: "alter_project_assignment_table_add_staff_index",
		Up:   alterProjectAssignmentTableAddStaffIndexUp,
		Down: alterProjectAssignmentTableAddStaffIndexDown,
	},
	{
		Name: "create_snapshot_entry_table",
		Up:   createSnapshotEntryTableUp,
		Down: createSnapshotEntryTableDown,
	},
}

const (
	starting = "starting"
	finished = "finished"
)
