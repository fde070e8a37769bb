package flags

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/logx/lagerx"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelError LogLevel = "error"
	LogLevelFatal LogLevel = "fatal"
)

type LagerFlag struct {
	LogLevel LogLevel `long:"log-level" default:"info" choice:"debug" choice:"info" choice:"error" choice:"fatal" description:"Minimum level of logs to see."`
}

func (f LagerFlag) Logger(component string) logx.Logger {
	logger := lager.NewLogger(component)

	sink := lager.NewReconfigurableSink(lager.NewWriterSink(os.Stdout, lager.DEBUG), f.level())
	logger.RegisterSink(sink)

	return lagerx.NewLogger(logger)
}

func (f LagerFlag) level() lager.LogLevel {
	switch f.LogLevel {
	case LogLevelDebug:
		return lager.DEBUG
	case LogLevelInfo, "":
		return lager.INFO
	case LogLevelError:
		return lager.ERROR
	case LogLevelFatal:
		return lager.FATAL
	default:
		panic(fmt.Sprintf("unknown log level: %s", f.LogLevel))
	}
}
