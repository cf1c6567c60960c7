package payload

import (
	"bytes"
	"errors"
	"fmt"
)

// Well-known body fields
const (
	FieldEventType        = "eventType"
	FieldEventDescription = "eventDescription"
	FieldPayload          = "payload"
	FieldArgs             = "args"
	FieldArg              = "arg"
	FieldSubEvent         = "event"
	FieldBody             = "body"
)

// ErrNotMapping is returned when a message is not an object
var ErrNotMapping = errors.New("payload: message is not a mapping")

// Event is a read-only view over a message body
type Event struct {
	body Mapping
}

// NewEvent wraps a message body
func NewEvent(body Mapping) Event {
	return Event{body: body}
}

// Body returns the raw body fields
func (e Event) Body() Mapping { return e.body }

// EventType returns the event type as text; "" when absent or not a scalar
func (e Event) EventType() string {
	v, _ := e.body.Get(FieldEventType)
	return v.Text()
}

// EventTypeValue returns the raw event type value (Null when absent)
func (e Event) EventTypeValue() Value {
	v, _ := e.body.Get(FieldEventType)
	return v
}

// Description returns the preformatted description when it is truthy
func (e Event) Description() (Value, bool) {
	v, ok := e.body.Get(FieldEventDescription)
	if !ok || !v.Truthy() {
		return Value{}, false
	}
	return v, true
}

// Payload returns the passthrough payload; ok is false only when the field is absent
func (e Event) Payload() (Value, bool) {
	return e.body.Get(FieldPayload)
}

// SubEvent returns payload.event when it is truthy, else ""
func (e Event) SubEvent() string {
	p, ok := e.Payload()
	if !ok || !p.Truthy() {
		return ""
	}
	sub, ok := p.Get(FieldSubEvent)
	if !ok || !sub.Truthy() {
		return ""
	}
	return sub.Text()
}

// Args returns the args record when it is truthy
func (e Event) Args() (Value, bool) {
	v, ok := e.body.Get(FieldArgs)
	if !ok || !v.Truthy() {
		return Value{}, false
	}
	return v, true
}

// ParseMessage decodes a message as delivered by the pipeline. Both the
// envelope form {"body": {...}} and a bare event body are accepted; JSON input
// is detected by its leading bracket, anything else is read as YAML.
func ParseMessage(data []byte) (Event, error) {
	trimmed := bytes.TrimSpace(data)
	var (
		v   Value
		err error
	)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		v, err = ParseJSON(trimmed)
	} else {
		v, err = ParseYAML(trimmed)
	}
	if err != nil {
		return Event{}, fmt.Errorf("decode message: %w", err)
	}
	return EventFromValue(v)
}

// EventFromValue unwraps the optional envelope and returns the event view
func EventFromValue(v Value) (Event, error) {
	if v.Kind() != KindMapping {
		return Event{}, fmt.Errorf("%w: got %s", ErrNotMapping, v.Kind())
	}
	if body, ok := v.Get(FieldBody); ok && body.Kind() == KindMapping {
		return NewEvent(body.Mapping()), nil
	}
	return NewEvent(v.Mapping()), nil
}
