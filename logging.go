package pnshelper

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/pns-helper/config"
	"github.com/theoremus-urban-solutions/pns-helper/utils"
)

// NewLogger builds the logger described by cfg. Output goes to stderr so
// rendered payloads on stdout stay clean.
func NewLogger(cfg config.LogConfig) zerolog.Logger {
	return utils.NewLoggerTo(os.Stderr, cfg.Level, cfg.Console)
}
