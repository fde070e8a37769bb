package db

const (
	starting = "starting"
	finished = "finished"

	assignmentNotFound = "assignment-not-found"

	failedToStartTransaction  = "failed-to-start-transaction"
	failedToUpsertAssignment  = "failed-to-upsert-assignment"
	failedToDeleteAssignment  = "failed-to-delete-assignment"
	failedToFindAssignment    = "failed-to-find-assignment"
	failedToListAssignments   = "failed-to-list-assignments"
	failedToCountAssignments  = "failed-to-count-assignments"
	failedToCountRowsAffected = "failed-to-count-rows-affected"
	failedToScanRow           = "failed-to-scan-row"
	failedToIterateOverRows   = "failed-to-iterate-over-rows"
)
