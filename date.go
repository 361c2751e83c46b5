// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package caldate provides a proleptic calendar date, valid from 01.01.0000
// to 31.12.3000, and a calendar aware duration that can be added to it.
//
// Dates are created from their day, month and year, or parsed from the
// text form dd.mm.yyyy, and are validated on creation and after every
// arithmetic operation; a Date value always denotes a real calendar day.
// The zero value is 01.01.0000.
package caldate

import (
	"fmt"
	"time"
)

// Date represents a calendar day. It is stored as the number of days
// since 01.01.0000 and hence can be compared using ==.
type Date struct {
	n int32
}

func fromEpochDays(total int) Date {
	return Date{n: int32(total - 1)}
}

// New returns the Date for the given day, month and year, or ErrInvalidDate
// if they do not denote a valid date.
func New(day, month, year int) (Date, error) {
	if !IsValidDate(day, month, year) {
		return Date{}, fmt.Errorf("%w: %02d.%02d.%04d", ErrInvalidDate, day, month, year)
	}
	return fromEpochDays(DaysSinceEpoch(day, month, year)), nil
}

// Parse parses a date in the format dd.mm.yyyy. Each component must
// consist of decimal digits only, leading zeros are optional, eg. 1.2.2020
// is accepted. ErrParse is returned for malformed text and
// ErrInvalidDate for a well formed, but invalid, date.
func Parse(text string) (Date, error) {
	var parts [3]int
	start, idx := 0, 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != '.' {
			continue
		}
		if idx == len(parts) {
			return Date{}, fmt.Errorf("%w: %q, expected dd.mm.yyyy", ErrParse, text)
		}
		n, ok := parseDigits(text[start:i])
		if !ok {
			return Date{}, fmt.Errorf("%w: %q: invalid component %q", ErrParse, text, text[start:i])
		}
		parts[idx] = n
		idx++
		start = i + 1
	}
	if idx != len(parts) {
		return Date{}, fmt.Errorf("%w: %q, expected dd.mm.yyyy", ErrParse, text)
	}
	return New(parts[0], parts[1], parts[2])
}

// parseDigits parses a non-empty, unsigned, decimal integer. Values
// too large to denote any component of a valid date are clamped to
// maxComponent.
func parseDigits(s string) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		if n < maxComponent {
			n = n*10 + int(c-'0')
		}
	}
	return min(n, maxComponent), true
}

const maxComponent = 1 << 20

// MustParse is like Parse but panics on error.
func MustParse(text string) Date {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the Date for the year, month and day of t in t's location.
func FromTime(t time.Time) (Date, error) {
	return New(t.Day(), int(t.Month()), t.Year())
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	day, month, year := d.Split()
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Split returns the day, month and year of d.
func (d Date) Split() (day, month, year int) {
	// A Date is always in range.
	day, month, year, _ = DateFromEpochDays(d.epochDays())
	return
}

// Day returns the day of the month, 1-31.
func (d Date) Day() int {
	day, _, _ := d.Split()
	return day
}

// Month returns the month, 1-12.
func (d Date) Month() int {
	_, month, _ := d.Split()
	return month
}

// Year returns the year, 0-3000.
func (d Date) Year() int {
	_, _, year := d.Split()
	return year
}

func (d Date) epochDays() int {
	return int(d.n) + 1
}

// String returns d in the format dd.mm.yyyy.
func (d Date) String() string {
	day, month, year := d.Split()
	return fmt.Sprintf("%02d.%02d.%04d", day, month, year)
}

// GoString implements fmt.GoStringer.
func (d Date) GoString() string {
	day, month, year := d.Split()
	return fmt.Sprintf("caldate.New(%d, %d, %d)", day, month, year)
}

// Difference returns the number of days from other to d, it is positive
// if d is later than other, negative if earlier and zero if they are
// the same.
func (d Date) Difference(other Date) int {
	return d.epochDays() - other.epochDays()
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same as,
// or after other.
func (d Date) Compare(other Date) int {
	switch diff := d.Difference(other); {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	}
	return 0
}

// Before returns true if d is before other.
func (d Date) Before(other Date) bool {
	return d.Difference(other) < 0
}

// After returns true if d is after other.
func (d Date) After(other Date) bool {
	return d.Difference(other) > 0
}

// yearLimit bounds the intermediate year computed by Add so that the
// day count cannot overflow.
const yearLimit = 1 << 30

// Add returns the result of adding dur to d. The months are added first
// and carried into the year, followed by the years, and finally the days
// are added to the resulting day count. A day that exceeds the length of
// the resulting month carries over into the following month, so that
// 31.01.2021 plus one month is 03.03.2021. ErrOutOfRange is returned if the
// result is not within the supported years.
func (d Date) Add(dur Duration) (Date, error) {
	day, month, year := d.Split()
	// Months are zero based for the carry so that a carried month of zero,
	// eg. December plus no months, stays in December of the same year
	// rather than moving into the next.
	months := month - 1 + dur.Months
	ny := year + dur.Years + floorDiv(months, 12)
	nm := floorMod(months, 12) + 1
	if ny < -yearLimit || ny > yearLimit {
		return Date{}, fmt.Errorf("%w: %v + %v: year %d", ErrOutOfRange, d, dur, ny)
	}
	total := DaysSinceEpoch(day, nm, ny) + dur.Days
	rd, rm, ry, err := DateFromEpochDays(total)
	if err != nil {
		return Date{}, fmt.Errorf("%v + %v: %w", d, dur, err)
	}
	return New(rd, rm, ry)
}

// AddInPlace adds dur to d, d is unchanged if an error is returned.
func (d *Date) AddInPlace(dur Duration) error {
	nd, err := d.Add(dur)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// Sub returns the result of adding the negation of dur to d.
func (d Date) Sub(dur Duration) (Date, error) {
	return d.Add(dur.Negate())
}

// AddValue is like Add but accepts either a Duration or a non-nil
// *Duration, any other value results in ErrTypeMismatch.
func (d Date) AddValue(v any) (Date, error) {
	switch dur := v.(type) {
	case Duration:
		return d.Add(dur)
	case *Duration:
		if dur != nil {
			return d.Add(*dur)
		}
	}
	return Date{}, fmt.Errorf("%w: %T", ErrTypeMismatch, v)
}
