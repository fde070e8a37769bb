package rbac

const (
	pageAccessDenied = "page-access-denied"

	failedToListAssignments = "failed-to-list-assignments"
	failedToFindAssignment  = "failed-to-find-assignment"
)
