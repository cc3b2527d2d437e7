// Package logger wraps logrus with the small, fixed set of fields the TNFS
// client actually logs: connect/mount lifecycle, retries, and server
// errors. It mirrors the level/field-oriented shape of a hand-rolled
// logger but delegates formatting, leveling, and output to logrus so the
// client gets the same structured-logging conventions as the rest of the
// corpus instead of a bespoke implementation.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the narrow surface the client needs; it exists so call sites
// read "logger.Debugf(...)" instead of threading *logrus.Logger everywhere
// and to give tests a trivial substitute.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// New returns the default logger: logrus at Info level, writing to
// stderr, matching the teacher's "stdout by default, DEBUG in files"
// convention but simplified to a single stream suitable for a library
// (a host application can always swap it out via WithLogger).
func New() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(os.Stderr)
	return l
}

// Noop discards everything; callers that want silence pass it to
// WithLogger, and tests use it to keep log output out of -v runs. The
// Client's default logger is New(), not Noop.
type Noop struct{}

func (Noop) Debugf(string, ...interface{}) {}
func (Noop) Infof(string, ...interface{})  {}
func (Noop) Warnf(string, ...interface{})  {}
func (Noop) Errorf(string, ...interface{}) {}

var _ Logger = Noop{}
var _ Logger = (*logrus.Logger)(nil)
