// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"iter"
	"strings"
)

// Range represents a range of dates, inclusive of the start and end dates.
// The zero value is the single day 01.01.0000.
type Range struct {
	from, to Date
}

// NewRange returns the Range from/to. If from is later than to they are
// swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{from: from, to: to}
}

// From returns the first date in the range.
func (r Range) From() Date {
	return r.from
}

// To returns the last date in the range.
func (r Range) To() Date {
	return r.to
}

// Len returns the number of days in the range.
func (r Range) Len() int {
	return r.to.Difference(r.from) + 1
}

// Contains returns true if d is within the range.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.from) && !d.After(r.to)
}

// Dates returns an iterator that yields each Date in the range.
func (r Range) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for n := r.from.n; n <= r.to.n; n++ {
			if !yield(Date{n: n}) {
				return
			}
		}
	}
}

func (r Range) String() string {
	return r.from.String() + ":" + r.to.String()
}

// Parse ranges in the format 'dd.mm.yyyy:dd.mm.yyyy'. The start date
// must not be later than the end date.
func (r *Range) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q, expected '<from>:<to>'", ErrParse, val)
	}
	from, err := Parse(parts[0])
	if err != nil {
		return fmt.Errorf("invalid from: %s: %w", parts[0], err)
	}
	to, err := Parse(parts[1])
	if err != nil {
		return fmt.Errorf("invalid to: %s: %w", parts[1], err)
	}
	if from.After(to) {
		return fmt.Errorf("%w: from is later than to: %s %s", ErrInvalidDate, from, to)
	}
	*r = Range{from: from, to: to}
	return nil
}

// Series returns an iterator that yields start + k*step for k = 0, 1, ...
// for as long as the result is no later than end. Each date is computed
// from start rather than from its predecessor so that a step of one month
// from the 31st remains on the 31st in months that have one. The iteration
// stops when a result is out of range or does not advance past the
// previously yielded date.
func Series(start Date, step Duration, end Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if start.After(end) {
			return
		}
		if !yield(start) {
			return
		}
		prev := start
		for k := 1; ; k++ {
			next, err := start.Add(step.Scale(k))
			if err != nil || !next.After(prev) || next.After(end) {
				return
			}
			if !yield(next) {
				return
			}
			prev = next
		}
	}
}
