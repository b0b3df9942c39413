// Package logger configures the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formats accepted by Setup
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Setup sets the level and formatter of the standard logrus logger.
// An unknown level falls back to info and is reported as an error.
func Setup(level, format string) error {
	return SetupWithOutput(os.Stderr, level, format)
}

// SetupWithOutput is Setup writing to out
func SetupWithOutput(out io.Writer, level, format string) error {
	logrus.SetOutput(out)

	switch strings.ToLower(format) {
	case FormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	case FormatText, "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	return SetLevel(level)
}

// SetLevel changes the level of the standard logger at runtime
func SetLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(parsed)
	return nil
}
