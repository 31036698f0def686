package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	return SetupLoggingTo(os.Stdout, logrus.InfoLevel)
}

// SetupLoggingTo builds the JSON logger writing to out. The interactive shell owns stdout,
// so the CLI entrypoint sends logs to stderr.
func SetupLoggingTo(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   out,
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}

	return &logger
}

// ParseLevel falls back to info for an empty or unknown level name.
func ParseLevel(name string) logrus.Level {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
