// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"strconv"
	"strings"
)

// Duration represents a calendar relative offset. It has no meaning
// in isolation, rather it is interpreted relative to the Date that it
// is added to, hence one month may be 28, 29, 30 or 31 days.
type Duration struct {
	Days   int
	Months int
	Years  int
}

// NewDuration returns a Duration with the given days, months and years.
func NewDuration(days, months, years int) Duration {
	return Duration{Days: days, Months: months, Years: years}
}

// IsZero returns true if all of the components of dur are zero.
func (dur Duration) IsZero() bool {
	return dur == Duration{}
}

// Negate returns dur with all components negated.
func (dur Duration) Negate() Duration {
	return Duration{Days: -dur.Days, Months: -dur.Months, Years: -dur.Years}
}

// Scale returns dur with all components multiplied by n.
func (dur Duration) Scale(n int) Duration {
	return Duration{Days: dur.Days * n, Months: dur.Months * n, Years: dur.Years * n}
}

// ApproxDays returns an approximation of dur in days assuming 365 day
// years and 30 day months.
func (dur Duration) ApproxDays() int {
	return dur.Years*365 + dur.Months*30 + dur.Days
}

// String returns dur in the format accepted by ParseDuration, eg. 1y2m-3d.
// Zero components are omitted and the zero Duration is returned as 0d.
func (dur Duration) String() string {
	if dur.IsZero() {
		return "0d"
	}
	var out strings.Builder
	for _, c := range []struct {
		v    int
		unit byte
	}{{dur.Years, 'y'}, {dur.Months, 'm'}, {dur.Days, 'd'}} {
		if c.v == 0 {
			continue
		}
		out.WriteString(strconv.Itoa(c.v))
		out.WriteByte(c.unit)
	}
	return out.String()
}

// ParseDuration parses a duration as a sequence of signed integers, each
// followed by one of the units y, m or d, eg. '1y', '-2m15d', '1y+1d'.
// Each unit may appear at most once and in any order.
func ParseDuration(val string) (Duration, error) {
	if len(val) == 0 {
		return Duration{}, fmt.Errorf("%w: empty duration, expected format '1y2m3d'", ErrParse)
	}
	var dur Duration
	seen := map[byte]bool{}
	rest := val
	for len(rest) > 0 {
		idx := strings.IndexAny(rest, "ymd")
		if idx < 0 {
			return Duration{}, fmt.Errorf("%w: %q: missing unit, expected one of y, m or d", ErrParse, val)
		}
		unit := rest[idx]
		if seen[unit] {
			return Duration{}, fmt.Errorf("%w: %q: repeated unit %q", ErrParse, val, unit)
		}
		seen[unit] = true
		n, err := strconv.Atoi(rest[:idx])
		if err != nil {
			return Duration{}, fmt.Errorf("%w: %q: invalid value %q", ErrParse, val, rest[:idx])
		}
		switch unit {
		case 'y':
			dur.Years = n
		case 'm':
			dur.Months = n
		case 'd':
			dur.Days = n
		}
		rest = rest[idx+1:]
	}
	return dur, nil
}
