package announcement

import "time"

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Upcoming reports whether an event on eventDate is still upcoming as of
// now. The comparison is date-only: an event dated today counts as
// upcoming until the day is over. Calendar components are compared
// directly so the result does not depend on the locations of the two
// values (dates read back from Postgres carry UTC midnight, while now is
// usually in the server location).
func Upcoming(eventDate, now time.Time) bool {
	ey, em, ed := eventDate.Date()
	ny, nm, nd := now.Date()

	if ey != ny {
		return ey > ny
	}
	if em != nm {
		return em > nm
	}
	return ed >= nd
}

// IsUpcoming reports whether the announcement's event is today or later.
func (a *Announcement) IsUpcoming(now time.Time) bool {
	return Upcoming(a.EventDate, now)
}
