// Package logger builds the leveled op/go-logging loggers used by the
// minimizers and the gridcut command.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "INFO"

// LogLevelFlag selects the verbosity of every logger created from the CLI.
var LogLevelFlag = cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "level of the logging of the app action (CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG)",
	EnvVars: []string{"GRIDCUT_LOG_LEVEL"},
	Value:   DefaultLogLevel,
}

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
)

// NewLogger returns a logger for module writing to stderr at the given
// level. Unknown levels fall back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	log := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)
	log.SetBackend(leveled)
	// IsEnabledFor consults the package-level backend, keep it in step.
	logging.SetLevel(lvl, module)

	return log
}

// ParseTime splits an elapsed duration into hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	total := uint32(elapsed.Round(time.Second) / time.Second)
	hours := total / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	return hours, minutes, seconds
}
