// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import "fmt"

const (
	// MinYear is the earliest supported year.
	MinYear = 0
	// MaxYear is the latest supported year.
	MaxYear = 3000
)

var (
	daysInMonth     = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInMonthLeap = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	dayOfYear       [13]int // cumulative days before each month, [0, 31, 59 etc]
	dayOfYearLeap   [13]int // cumulative days before each month in a leap year.

	maxEpochDays int
)

func init() {
	for i := 0; i < 12; i++ {
		dayOfYear[i+1] = dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] = dayOfYearLeap[i] + daysInMonthLeap[i]
	}
	maxEpochDays = DaysSinceEpoch(31, 12, MaxYear)
}

// IsLeapYear returns true if the given year is a leap year. Year 0 is
// a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MaxDay returns the number of days in the given month (1-12) for the
// given year. It panics if month is out of range.
func MaxDay(month, year int) int {
	if IsLeapYear(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// IsValidDate returns true if day, month and year denote a real calendar
// day within the supported range of years.
func IsValidDate(day, month, year int) bool {
	return year >= MinYear && year <= MaxYear &&
		month >= 1 && month <= 12 &&
		day >= 1 && day <= MaxDay(month, year)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// leapYearsBefore returns the number of leap years in [0, year).
func leapYearsBefore(year int) int {
	return floorDiv(year+3, 4) - floorDiv(year+99, 100) + floorDiv(year+399, 400)
}

// daysBeforeYear returns the number of days in all of the years in [0, year).
func daysBeforeYear(year int) int {
	return 365*year + leapYearsBefore(year)
}

func cumulativeDays(year int) *[13]int {
	if IsLeapYear(year) {
		return &dayOfYearLeap
	}
	return &dayOfYear
}

// DaysSinceEpoch returns the number of days from the start of year 0 up to
// and including the specified date, so that 01.01.0000 is day 1. The
// month must be in the range 1-12, but the year and day are not validated;
// days beyond the end of the month carry into the following months.
func DaysSinceEpoch(day, month, year int) int {
	return daysBeforeYear(year) + cumulativeDays(year)[month-1] + day
}

// DateFromEpochDays is the inverse of DaysSinceEpoch. It returns
// ErrOutOfRange if total does not fall between 01.01.0000 and
// 31.12.3000 inclusive. A total that lands exactly on the last day
// of a year or month resolves to that year or month.
func DateFromEpochDays(total int) (day, month, year int, err error) {
	if total < 1 || total > maxEpochDays {
		return 0, 0, 0, fmt.Errorf("%w: day %d is outside of %02d.%02d.%04d to %02d.%02d.%04d",
			ErrOutOfRange, total, 1, 1, MinYear, 31, 12, MaxYear)
	}
	// 146097 days per 400 year cycle, the estimate is within a year.
	year = (total - 1) * 400 / 146097
	for daysBeforeYear(year+1) < total {
		year++
	}
	for daysBeforeYear(year) >= total {
		year--
	}
	rem := total - daysBeforeYear(year)
	cum := cumulativeDays(year)
	month = 12
	for cum[month-1] >= rem {
		month--
	}
	return rem - cum[month-1], month, year, nil
}
