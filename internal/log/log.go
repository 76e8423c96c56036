// Package log is the process-wide structured logger, backed by logrus.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(textFormatter())
	return l
}

func textFormatter() *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}
}

// SetLevel sets the log level by name. Unknown names leave the level as is.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return
	}
	logger.SetLevel(lvl)
}

// GetLevel returns the current log level.
func GetLevel() logrus.Level {
	return logger.GetLevel()
}

// SetOutput redirects log output. A nil writer is ignored.
func SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	logger.SetOutput(w)
}

// SetJSON switches between the JSON and text formatters.
func SetJSON(enabled bool) {
	if enabled {
		logger.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logger.SetFormatter(textFormatter())
}

// AddHook adds a hook fired on every level.
func AddHook(hook logrus.Hook) {
	logger.AddHook(hook)
}

// WithError returns an entry carrying err in the "error" field.
func WithError(err error) *logrus.Entry {
	return logger.WithError(err)
}

// WithField returns an entry carrying one field.
func WithField(key string, value any) *logrus.Entry {
	return logger.WithField(key, value)
}

// WithFields returns an entry carrying fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Debug(args ...any)                 { logger.Debug(args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Error(args ...any)                 { logger.Error(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Fatal(args ...any)                 { logger.Fatal(args...) }
func Fatalf(format string, args ...any) { logger.Fatalf(format, args...) }
func Panic(args ...any)                 { logger.Panic(args...) }
func Panicf(format string, args ...any) { logger.Panicf(format, args...) }
