package notification

import (
	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/pns-helper/payload"
)

// Builder produces notification payloads from events
type Builder struct {
	codes    CodeTable
	logger   zerolog.Logger
	warnings *WarningAggregator
}

// NewBuilder creates a builder over a code table. A nil table behaves as an
// empty one.
func NewBuilder(codes CodeTable, logger zerolog.Logger) *Builder {
	if codes == nil {
		codes = CodeTable{}
	}
	return &Builder{
		codes:    codes,
		logger:   logger,
		warnings: NewWarningAggregator(),
	}
}

// Codes returns the code table in use
func (b *Builder) Codes() CodeTable { return b.codes }

// Warnings returns the aggregator collecting conversion warnings
func (b *Builder) Warnings() *WarningAggregator { return b.warnings }

// exampleID names an event in warning examples
func exampleID(ev payload.Event) string {
	if t := ev.EventType(); t != "" {
		return t
	}
	return "<none>"
}
