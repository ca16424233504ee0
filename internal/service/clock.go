package service

import "time"

// now returns the current UTC time truncated to the microsecond precision
// both supported databases store.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
