package logx

import (
	"context"
)

//go:generate counterfeiter . SecurityLogger

type SecurityData struct {
	Key   string
	Value string
}

// SecurityLogger records audit events for changes to project access.
type SecurityLogger interface {
	Log(ctx context.Context, signature, name string, args ...SecurityData)
}

func NewNoopSecurityLogger() SecurityLogger {
	return noopSecurityLogger{}
}

type noopSecurityLogger struct{}

func (noopSecurityLogger) Log(context.Context, string, string, ...SecurityData) {}
