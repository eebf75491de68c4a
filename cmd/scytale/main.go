package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Set via -ldflags at build time.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		log.Error().Err(err).Msg("scytale failed")
		os.Exit(1)
	}
}
