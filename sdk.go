package sdk

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerMu sync.RWMutex

	// logger is the package-wide logger. Iteration and schema-resolution
	// failures that have no error channel are reported through it.
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// SetLogger replaces the package-wide logger. Safe to call concurrently with
// logging, but callers should configure it once at startup.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// Logger returns the package-wide logger.
func Logger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}
