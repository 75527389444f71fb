// Package loggertest swaps the global logger for test doubles.
package loggertest

import (
	"bytes"

	"github.com/rs/zerolog"

	"github.com/gridkit-dev/gridkit/internal/logger"
)

// Silence discards all log output for the remainder of the test binary.
func Silence() {
	logger.Log = zerolog.Nop()
}

// Capture redirects log output into the returned buffer.
func Capture() *bytes.Buffer {
	buf := &bytes.Buffer{}
	logger.Log = zerolog.New(buf)
	return buf
}
