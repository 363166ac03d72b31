// Package monitoring holds the package-level diagnostic loggers used by the
// library packages. Commands point them at their own logger; tests can mute
// or capture them.
package monitoring

import "log"

// Logf is the informational logger. It defaults to log.Printf.
var Logf func(format string, v ...interface{}) = log.Printf

// Debugf is the debug logger. It is a no-op until SetDebugLogger is called.
var Debugf func(format string, v ...interface{}) = noop

func noop(string, ...interface{}) {}

// SetLogger replaces the informational logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = noop
		return
	}
	Logf = f
}

// SetDebugLogger replaces the debug logger. Passing nil mutes it.
func SetDebugLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Debugf = noop
		return
	}
	Debugf = f
}
