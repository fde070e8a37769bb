package monitor

const (
	starting = "starting"
	finished = "finished"

	failedToRecordHistogramValue = "failed-to-record-histogram-value"

	failedToAssignStaff        = "failed-to-assign-staff"
	failedToRemoveStaff        = "failed-to-remove-staff"
	failedToCheckProjectAccess = "failed-to-check-project-access"
	notPersisted               = "not-persisted"
	incorrectResponse          = "incorrect-response"

	probeFailed        = "probe-failed"
	probeIncorrect     = "probe-incorrect"
	exceededMaxLatency = "exceeded-max-latency"
	cleanupFailed      = "cleanup-failed"
)
