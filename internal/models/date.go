package models

import "time"

// Date is a calendar date in YYYY-MM-DD form, the format the API and
// the store both use for blog and meta tag timestamps.
type Date string

const dateLayout = "2006-01-02"

// Today returns the current calendar date.
func Today() Date {
	return Date(time.Now().Format(dateLayout))
}
