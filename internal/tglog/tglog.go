// Package tglog is the timegraph's internal leveled diagnostic logger. It
// wraps glog the way google-mangle's interpreter does, behind a small
// interface so the graph package never imports glog directly and callers
// that don't want glog's global flags can supply a no-op Logger instead.
package tglog

import (
	"fmt"

	log "github.com/golang/glog"
)

// Logger is the leveled logging surface the graph package uses for
// diagnostics: chain renumbering and strictness softening.
// None of it is required for correctness — a Logger is free to discard
// everything.
type Logger interface {
	// V reports whether logging at the given verbosity level is enabled.
	V(level int) bool
	// Infof logs an informational message.
	Infof(format string, args ...interface{})
	// Warningf logs a message worth surfacing even at low verbosity.
	Warningf(format string, args ...interface{})
}

// glogLogger implements Logger on top of github.com/golang/glog.
type glogLogger struct{}

func (glogLogger) V(level int) bool {
	return bool(log.V(log.Level(level)))
}

func (glogLogger) Infof(format string, args ...interface{}) {
	log.InfoDepth(1, fmt.Sprintf(format, args...))
}

func (glogLogger) Warningf(format string, args ...interface{}) {
	log.WarningDepth(1, fmt.Sprintf(format, args...))
}

// Glog is the glog-backed Logger, matching the style of diagnostic logging
// google-mangle's command-line entry point uses.
var Glog Logger = glogLogger{}

// noop discards everything; it is the default when a caller constructs a
// graph.TimeGraph without supplying a Logger option.
type noop struct{}

func (noop) V(int) bool                      { return false }
func (noop) Infof(string, ...interface{})    {}
func (noop) Warningf(string, ...interface{}) {}

// Noop is the default Logger: silent.
var Noop Logger = noop{}
