package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger for console output on stderr.
// VCREG_DEBUG turns on debug-level logging of the individual API steps.
func Init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("VCREG_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
