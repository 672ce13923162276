// Package errors provides cleanup helpers shared by the warehouse backends and servers.
package errors

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// DeferClose closes an io.Closer and logs a failure instead of dropping it.
// Use this in defer statements to avoid suppressing close errors.
func DeferClose(logger zerolog.Logger, closer io.Closer, msg string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Warn().Err(err).Msg(msg)
	}
}

// Must panics if error is not nil.
// Use only for initialization code where failure should halt the program.
func Must(err error, msg string) {
	if err != nil {
		panic(fmt.Sprintf("%s: %v", msg, err))
	}
}
