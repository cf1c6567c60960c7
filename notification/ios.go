package notification

import (
	"github.com/theoremus-urban-solutions/pns-helper/payload"
)

// Alert field names
const (
	AlertLocKey         = "loc-key"
	AlertLocArgs        = "loc-args"
	AlertMutableContent = "mutable-content"
	AlertCategory       = "category"
)

// Aps is the push gateway block. Alert is either a string or a mapping.
type Aps struct {
	Alert            payload.Value  `json:"alert"`
	MutableContent   int            `json:"mutable-content,omitempty"`
	Category         *payload.Value `json:"category,omitempty"`
	ContentAvailable int            `json:"content-available"`
}

// IosNotification is the payload handed to the Apple push gateway
type IosNotification struct {
	Aps     Aps            `json:"aps"`
	Payload *payload.Value `json:"payload,omitempty"`
}

// CreateIosNotification builds the push payload for an event. The event is
// never modified.
func (b *Builder) CreateIosNotification(ev payload.Event) IosNotification {
	var aps Aps
	if desc, ok := ev.Description(); ok {
		aps = b.apsFromDescription(ev, desc)
	} else {
		aps = Aps{Alert: b.localizedAlert(ev)}
	}
	// for fetching data in background
	aps.ContentAvailable = 1

	n := IosNotification{Aps: aps}
	if p, ok := ev.Payload(); ok {
		n.Payload = &p
	}
	return n
}

func (b *Builder) localizedAlert(ev payload.Event) payload.Value {
	if ev.EventType() == "" {
		b.warnings.Add(WarningNoEventType, exampleID(ev))
	}

	var alert payload.Mapping
	if key := GenerateLocKey(ev.EventType(), ev.SubEvent()); key != "" {
		alert.Set(AlertLocKey, payload.String(key))
	}
	if args, ok := ev.Args(); ok {
		if arg, ok := args.Get(payload.FieldArg); ok {
			alert.Set(AlertLocArgs, arg)
		} else {
			b.warnings.Add(WarningNoLocArgs, exampleID(ev))
		}
	}
	return payload.FromMapping(alert)
}

// apsFromDescription uses a preformatted description as the alert. Mapping
// descriptions get their loc-key regenerated and their delivery flags moved
// to the aps block.
func (b *Builder) apsFromDescription(ev payload.Event, desc payload.Value) Aps {
	if desc.Kind() != payload.KindMapping {
		return Aps{Alert: desc}
	}

	var (
		aps   Aps
		alert payload.Mapping
	)
	for _, f := range desc.Mapping().Fields() {
		switch f.Key {
		case AlertLocKey:
			if f.Value.Truthy() {
				alert.Set(AlertLocKey, payload.String(GenerateLocKey(ev.EventType(), ev.SubEvent())))
			}
		case AlertMutableContent:
			if f.Value.Truthy() {
				aps.MutableContent = 1
			}
		case AlertCategory:
			if f.Value.Truthy() {
				category := f.Value
				aps.Category = &category
			} else {
				b.warnings.Add(WarningFalsyCategory, exampleID(ev))
			}
		default:
			alert.Set(f.Key, f.Value)
		}
	}
	aps.Alert = payload.FromMapping(alert)
	return aps
}
