package notification

import (
	"github.com/theoremus-urban-solutions/pns-helper/formatter"
	"github.com/theoremus-urban-solutions/pns-helper/payload"
)

// XML notification layout
const (
	XmlRoot        = "notification"
	XmlMessage     = "message"
	XmlMessageCode = "message-code"
)

// NotificationData assembles the record serialized under <notification>:
// message and message-code first, then the remaining event fields. The
// description only appears as the message.
func (b *Builder) NotificationData(ev payload.Event) payload.Mapping {
	var data payload.Mapping

	rest := ev.Body()
	if desc, ok := ev.Description(); ok {
		data.Set(XmlMessage, desc)
		rest = rest.Without(payload.FieldEventDescription)
	} else {
		data.Set(XmlMessage, ev.EventTypeValue())
	}
	data.Set(XmlMessageCode, b.messageCode(ev))

	return payload.Union(data, rest)
}

func (b *Builder) messageCode(ev payload.Event) payload.Value {
	eventType := ev.EventType()
	if !ev.EventTypeValue().Truthy() {
		return payload.String("")
	}
	code, ok := b.codes.Lookup(eventType)
	if !ok {
		b.warnings.Add(WarningUnknownMessageCode, exampleID(ev))
		return payload.Null()
	}
	return payload.String(code)
}

// BuildXmlNotification returns the fragment tree of the notification document
func (b *Builder) BuildXmlNotification(ev payload.Event) (*formatter.Fragment, error) {
	return formatter.BuildDocument(payload.FromMapping(b.NotificationData(ev)), XmlRoot)
}

// CreateXmlNotification serializes the notification document for an event
func (b *Builder) CreateXmlNotification(ev payload.Event) (string, error) {
	tree, err := b.BuildXmlNotification(ev)
	if err != nil {
		return "", err
	}
	return tree.Render()
}
