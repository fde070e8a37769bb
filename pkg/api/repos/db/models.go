package db

import "github.com/campusfm/projectperm/pkg/perm"

const projectAssignmentTable = "project_assignment"

var assignmentColumns = []string{
	"project_id",
	"project_title",
	"staff_email",
	"staff_name",
	"role",
	"assigned_by",
	"assigned_date",
	"can_edit",
	"can_delete",
	"can_view_documents",
	"can_upload_documents",
}

type assignment struct {
	ID int64
	perm.Assignment
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAssignment(row scanner) (assignment, error) {
	var a assignment

	err := row.Scan(
		&a.ID,
		&a.ProjectID,
		&a.ProjectTitle,
		&a.StaffEmail,
		&a.StaffName,
		&a.Role,
		&a.AssignedBy,
		&a.AssignedDate,
		&a.Permissions.CanEdit,
		&a.Permissions.CanDelete,
		&a.Permissions.CanViewDocuments,
		&a.Permissions.CanUploadDocuments,
	)

	return a, err
}
