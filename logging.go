package lox

import "github.com/juju/loggo"

// Per-component loggers, one per pipeline stage, named after the
// package/feature they instrument rather than sharing one root logger
// for everything.
var (
	scannerLogger     = loggo.GetLogger("golox.scanner")
	parserLogger      = loggo.GetLogger("golox.parser")
	interpreterLogger = loggo.GetLogger("golox.interpreter")
)

// SetLogLevel adjusts the minimum level for all golox loggers. Used by
// cmd/golox's -v flag; exported so embedders of this package can do the
// same. The level is a loggo.Level, so callers import loggo for it.
func SetLogLevel(level loggo.Level) {
	scannerLogger.SetLogLevel(level)
	parserLogger.SetLogLevel(level)
	interpreterLogger.SetLogLevel(level)
}
