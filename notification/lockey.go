package notification

import (
	"strings"

	"github.com/theoremus-urban-solutions/pns-helper/utils"
)

const (
	locKeyPrefix        = "Notification"
	locKeyBookingPrefix = "NotificationBooking"
	locKeySuffix        = "Key"

	bookingWord = "Booking "
)

// Event types whose templates are not booking related
const (
	EventFlightstatsAlert = "FLIGHTSTATS_ALERT"
	EventExpenseStatement = "EXPENSE_STATEMENT"
	EventUploadReceipt    = "UPLOAD_RECEIPT"
)

// GenerateLocKey returns the localization key of the alert template for an
// event type and optional sub-event.
//
// Event type and sub-event are joined by a space, underscores become spaces,
// the result is lower-cased, every word capitalised and the spaces removed.
// Booking templates share the NotificationBooking prefix, so a leading
// "booking" word is not repeated: BOOKING_CONFIRMED and CONFIRMED both map
// to NotificationBookingConfirmedKey.
func GenerateLocKey(eventType, subEvent string) string {
	joined := eventType + " " + subEvent
	words := utils.Ucwords(utils.Lower(strings.ReplaceAll(joined, "_", " ")))

	switch eventType {
	case EventFlightstatsAlert, EventExpenseStatement, EventUploadReceipt:
		return locKeyPrefix + pascal(words) + locKeySuffix
	default:
		words = strings.TrimPrefix(words, bookingWord)
		return locKeyBookingPrefix + pascal(words) + locKeySuffix
	}
}

func pascal(words string) string {
	return strings.ReplaceAll(words, " ", "")
}
