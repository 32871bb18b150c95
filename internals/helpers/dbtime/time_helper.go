// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"sync"
	"time"
)

// LocalZone is where the youth centres operate; dates typed by admins
// (filters, exports) are read in this zone.
const LocalZone = "Africa/Algiers"

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location returns Africa/Algiers, or UTC when tzdata is missing.
func Location() *time.Location {
	locOnce.Do(func() {
		l, err := time.LoadLocation(LocalZone)
		if err != nil {
			l = time.UTC
		}
		loc = l
	})
	return loc
}

// ParseLocalDate reads YYYY-MM-DD as local midnight.
func ParseLocalDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), Location())
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ToLocal converts a stored (UTC) timestamp for display. Zero stays zero.
func ToLocal(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(Location())
}
