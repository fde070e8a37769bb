package seed

const (
	starting = "starting"
	success  = "success"
	skipped  = "skipped"

	failedToCountAssignments  = "failed-to-count-assignments"
	failedToSeedAssignment    = "failed-to-seed-assignment"
	failedToPersistAssignment = "failed-to-persist-assignment"
)
