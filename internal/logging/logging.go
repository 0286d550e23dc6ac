package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var (
	log  *logrus.Logger
	file *os.File
)

// Init initializes the logger with the given configuration. With neither
// console nor logFile set, output is discarded. A file opened by an earlier
// Init is closed first.
func Init(level, logFile string, console bool) error {
	if err := Close(); err != nil {
		return err
	}
	log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var writers []io.Writer

	if console {
		writers = append(writers, os.Stderr)
	}

	if logFile != "" {
		dir := filepath.Dir(logFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return err
		}
		file = f
		writers = append(writers, f)
	}

	if len(writers) > 0 {
		log.SetOutput(io.MultiWriter(writers...))
	} else {
		log.SetOutput(io.Discard)
	}

	return nil
}

// Close closes the log file opened by Init, if any. Later entries are
// discarded until the next Init.
func Close() error {
	if file == nil {
		return nil
	}
	if log != nil {
		log.SetOutput(io.Discard)
	}
	err := file.Close()
	file = nil
	return err
}

// Get returns the logger instance
func Get() *logrus.Logger {
	if log == nil {
		log = logrus.New()
	}
	return log
}

// WithFields returns an entry carrying fields, e.g. the backend and family
// of a benchmark run.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Get().WithFields(fields)
}

func Debugf(format string, args ...interface{}) {
	Get().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	Get().Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Get().Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Get().Errorf(format, args...)
}
