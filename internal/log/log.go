// internal/log/log.go
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much the viewer logs.
type Options struct {
	Level string
	// File enables a rotating log file next to stdout when non-empty.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var logger = newLogger(os.Stdout)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Init configures the package logger. Until it is called, messages go to
// stdout at info level.
func Init(opts Options) (io.Closer, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level: %w", err)
		}
		level = parsed
	}

	var closer io.Closer = nopCloser{}
	out := io.Writer(os.Stdout)
	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		out = io.MultiWriter(os.Stdout, rotating)
		closer = fileCloser{rotating: rotating}
	}

	logger = newLogger(out)
	logger.SetLevel(level)
	return closer, nil
}

// SetOutput redirects the logger, e.g. into a buffer in tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}

func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { logger.Fatalf(format, args...) }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fileCloser sends later messages back to stdout only, so nothing
// reopens the file after Close.
type fileCloser struct {
	rotating *lumberjack.Logger
}

func (c fileCloser) Close() error {
	logger.SetOutput(os.Stdout)
	return c.rotating.Close()
}
