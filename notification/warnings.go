package notification

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Warning type constants
const (
	WarningUnknownMessageCode = "unknown_message_code"
	WarningNoEventType        = "no_event_type"
	WarningNoLocArgs          = "no_loc_args"
	WarningFalsyCategory      = "falsy_category"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings while building payloads and outputs
// consolidated summaries
type WarningAggregator struct {
	mu       sync.Mutex
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns the number of occurrences recorded for a warning type
func (w *WarningAggregator) Count(warningType string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// Reset drops every recorded warning
func (w *WarningAggregator) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.warnings = make(map[string]*warningInfo)
}

// LogAll outputs all collected warnings in consolidated format and resets
// the aggregator
func (w *WarningAggregator) LogAll(logger zerolog.Logger) {
	w.mu.Lock()
	collected := w.warnings
	w.warnings = make(map[string]*warningInfo)
	w.mu.Unlock()

	if len(collected) == 0 {
		return
	}

	types := make([]string, 0, len(collected))
	for t := range collected {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, warningType := range types {
		info := collected[warningType]
		logger.Warn().
			Str("kind", warningType).
			Int("count", info.count).
			Strs("examples", info.examples).
			Msg(formatWarningMessage(warningType, info))
	}
}

// formatWarningMessage creates a human-readable warning message
func formatWarningMessage(warningType string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningUnknownMessageCode:
		description = "event types missing from the notification code table"
		action = "Building XML output without message-code"
	case WarningNoEventType:
		description = "events with no eventType"
		action = "Using the default booking localization key"
	case WarningNoLocArgs:
		description = "events with args but no args.arg"
		action = "Building alert without loc-args"
	case WarningFalsyCategory:
		description = "descriptions with an empty category"
		action = "Dropping category from the alert"
	default:
		description = "unknown issue"
		action = "Building output with fallback behavior"
	}

	return fmt.Sprintf("%s (%d occurrences). %s. Examples: %s",
		description, info.count, action, strings.Join(info.examples, ", "))
}
