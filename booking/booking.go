package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cinebook-tui/model"
)

// newBookingID composes an identifier from the current time plus a
// random suffix, e.g. "MB56789012A3F1". Collisions are tolerated; the
// id only has to be unique within a user's history for display.
func newBookingID(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return "MB" + millis + suffix
}

// Filter narrows a booking history. Zero-value fields match everything,
// so an empty filter returns the list unchanged.
type Filter struct {
	Status model.BookingStatus
	Date   time.Time
}

// FilterBookings returns the subsequence of bookings matching the
// filter's status and booking date (at day granularity). Both
// conditions compose with AND.
func FilterBookings(bookings []model.Booking, f Filter) []model.Booking {
	if f.Status == "" && f.Date.IsZero() {
		return bookings
	}
	var out []model.Booking
	for _, b := range bookings {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if !f.Date.IsZero() && !sameDay(b.BookingDate, f.Date) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func sameDay(a time.Time, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
