package rpc

const (
	starting = "starting"
	success  = "success"

	persistenceFailed = "persistence-failed"
)
