package utils

import (
	"time"
)

// TimestampLayout is ISO-8601 in UTC with a millisecond field
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// GetTimestamp returns the current time in ISO-8601 with milliseconds zeroed
func GetTimestamp() string {
	return TimestampAt(time.Now())
}

// TimestampAt formats t like GetTimestamp
func TimestampAt(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimestampLayout)
}

