package domain

import "time"

// TimestampLayout is the wire format for all timestamps emitted by the
// service: ISO-8601 in UTC with microsecond precision and no timezone
// suffix. Clients relying on the historical format depend on the missing
// "Z", so it must stay this way.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Now returns the current UTC time formatted with TimestampLayout
func Now() string {
	return time.Now().UTC().Format(TimestampLayout)
}
