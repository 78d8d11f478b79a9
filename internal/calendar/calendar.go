// Package calendar answers the one date question the commission engine has:
// how many days the month of a given date has.
package calendar

import "time"

const DateLayout = "2006-01-02"

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysInMonth returns the length of the month t falls in.
func DaysInMonth(t time.Time) int {
	return DaysIn(t.Year(), t.Month())
}

// ParseDate parses "YYYY-MM-DD" without going through time.Parse layout
// handling. It returns false for anything that is not a real calendar date.
func ParseDate(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for i, c := range []byte(s) {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return time.Time{}, false
		}
	}
	y := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	m := time.Month(int(s[5]-'0')*10 + int(s[6]-'0'))
	d := int(s[8]-'0')*10 + int(s[9]-'0')
	if m < 1 || m > 12 || d < 1 || d > DaysIn(y, m) {
		return time.Time{}, false
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}
