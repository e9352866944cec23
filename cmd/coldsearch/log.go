package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var logLevels = []string{"debug", "info", "warn", "error"}

func addLogLevelFlag(cmd *kingpin.CmdClause) *string {
	return cmd.Flag("log.level", "Only log messages with the given severity or above.").Default("info").Enum(logLevels...)
}

// newLogger returns a logfmt logger on stderr. stdout is left for results.
func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	var filter level.Option
	switch lvl {
	case "debug":
		filter = level.AllowDebug()
	case "warn":
		filter = level.AllowWarn()
	case "error":
		filter = level.AllowError()
	default:
		filter = level.AllowInfo()
	}
	return level.NewFilter(logger, filter)
}
