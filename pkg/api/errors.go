package api

import "errors"

var (
	ErrServerStopped       = errors.New("projectperm: the server has been stopped")
	ErrServerFailedToStart = errors.New("projectperm: the server failed to start")
)
