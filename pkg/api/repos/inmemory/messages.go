package inmemory

const (
	success = "success"

	projectNotFound = "project-not-found"

	loadedSnapshot       = "loaded-snapshot"
	failedToLoadSnapshot = "failed-to-load-snapshot"
	failedToSaveSnapshot = "failed-to-save-snapshot"
)
