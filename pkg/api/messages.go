package api

const (
	internal = "internal"
)
