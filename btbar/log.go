package btbar

import (
	"io"
	"log"
)

// Diagnostics are silent unless a logger is installed; the status bar may
// show anything written to stderr.
var logger = log.New(io.Discard, "", 0)

func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

func logf(format string, args ...interface{}) {
	logger.Printf(format, args...)
}
