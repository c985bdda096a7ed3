//go:build e2e

package booking_test

import "time"

func timeNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
