// Package notification turns pipeline events into outbound notification payloads.
//
// # Overview
//
// Two formats are produced from the same event:
//   - an Apple push payload (IosNotification) whose alert carries a
//     localization key and arguments, or a preformatted description
//   - a <notification> XML document carrying the message, its numeric
//     message code and the remaining event fields
//
// # Usage
//
//	codes, _ := notification.LoadCodeTable("codes.yml")
//	b := notification.NewBuilder(codes, logger)
//
//	ev, _ := payload.ParseMessage(raw)
//	aps := b.CreateIosNotification(ev)
//	xmlDoc, err := b.CreateXmlNotification(ev)
//
//	// once per batch
//	b.Warnings().LogAll(logger)
//
// # Localization keys
//
// GenerateLocKey derives the client-side template key from the event type and
// optional sub-event: BOOKING_CONFIRMED -> NotificationBookingConfirmedKey,
// FLIGHTSTATS_ALERT + DELAYED -> NotificationFlightstatsAlertDelayedKey.
//
// # Thread Safety
//
// Builders hold only the read-only code table and a mutex-guarded warning
// aggregator; they can be shared across goroutines.
package notification
