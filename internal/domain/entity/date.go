package entity

import "time"

// DateLayout is the calendar-date wire format used for dob, startdate, enddate,
// enrollmentdate and appointmentdate.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate renders t as YYYY-MM-DD; the zero time renders as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
