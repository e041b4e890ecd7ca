package dateutil

import (
	"time"
)

// Layouts used for report file names and API metadata.
const (
	DateLayout  = "2006-01-02"
	StampLayout = "20060102_150405"
)

// TaxYearOf returns the Irish tax year containing t. The tax year runs with the
// calendar year.
func TaxYearOf(t time.Time) int {
	return t.Year()
}

// TaxYearStart returns 1 January of the tax year, in UTC.
func TaxYearStart(year int) time.Time {
	return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
}

// TaxYearEnd returns the last instant of the tax year, in UTC.
func TaxYearEnd(year int) time.Time {
	return time.Date(year, 12, 31, 23, 59, 59, 999999999, time.UTC)
}

// InTaxYear reports whether t falls in the given tax year.
func InTaxYear(t time.Time, year int) bool {
	return TaxYearOf(t) == year
}

// DateString formats t as an ISO date.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// Stamp formats t for use in a file name.
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
