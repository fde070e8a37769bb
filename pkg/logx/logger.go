package logx

//go:generate counterfeiter . Logger

type Data struct {
	Key   string
	Value interface{}
}

type Logger interface {
	WithName(name string) Logger
	WithData(data ...Data) Logger

	Debug(msg string, data ...Data)
	Info(msg string, data ...Data)
	Error(msg string, err error, data ...Data)
}

// NewNoopLogger returns a Logger that discards everything.
func NewNoopLogger() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (l noopLogger) WithName(string) Logger { return l }
func (l noopLogger) WithData(...Data) Logger { return l }
func (noopLogger) Debug(string, ...Data) {}
func (noopLogger) Info(string, ...Data) {}
func (noopLogger) Error(string, error, ...Data) {}
