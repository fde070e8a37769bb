package snapshot

const (
	success = "success"

	snapshotNotFound = "snapshot-not-found"

	failedToEncodeSnapshot = "failed-to-encode-snapshot"
	failedToDecodeSnapshot = "failed-to-decode-snapshot"
	failedToWriteSnapshot  = "failed-to-write-snapshot"
	failedToReadSnapshot   = "failed-to-read-snapshot"
)
