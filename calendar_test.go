// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate_test

import (
	"errors"
	"testing"

	"cloudeng.io/caldate"
)

func TestLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{0, true},
		{1, false},
		{4, true},
		{100, false},
		{400, true},
		{1900, false},
		{2000, true},
		{2020, true},
		{2021, false},
		{2100, false},
		{3000, false},
	} {
		if got, want := caldate.IsLeapYear(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestMaxDay(t *testing.T) {
	common := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for i, days := range common {
		if got, want := caldate.MaxDay(i+1, 2021), days; got != want {
			t.Errorf("month %v: got %v, want %v", i+1, got, want)
		}
		if i == 1 {
			days++
		}
		if got, want := caldate.MaxDay(i+1, 2020), days; got != want {
			t.Errorf("month %v: got %v, want %v", i+1, got, want)
		}
	}
	if got, want := caldate.MaxDay(2, 2020), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := caldate.MaxDay(2, 2021), 28; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIsValidDate(t *testing.T) {
	for _, tc := range []struct {
		d, m, y int
		valid   bool
	}{
		{1, 1, 0, true},
		{31, 12, 3000, true},
		{29, 2, 2020, true},
		{29, 2, 2021, false},
		{30, 2, 2020, false},
		{31, 4, 2021, false},
		{0, 1, 2021, false},
		{1, 0, 2021, false},
		{1, 13, 2021, false},
		{1, 1, -1, false},
		{1, 1, 3001, false},
	} {
		if got, want := caldate.IsValidDate(tc.d, tc.m, tc.y), tc.valid; got != want {
			t.Errorf("%v.%v.%v: got %v, want %v", tc.d, tc.m, tc.y, got, want)
		}
	}
}

func slowDaysSinceEpoch(day, month, year int) int {
	sum := 0
	for y := 0; y < year; y++ {
		if caldate.IsLeapYear(y) {
			sum += 366
		} else {
			sum += 365
		}
	}
	for m := 1; m < month; m++ {
		sum += caldate.MaxDay(m, year)
	}
	return sum + day
}

func TestDaysSinceEpoch(t *testing.T) {
	if got, want := caldate.DaysSinceEpoch(1, 1, 0), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := caldate.DaysSinceEpoch(1, 1, 1), 367; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, year := range []int{0, 1, 3, 4, 5, 99, 100, 101, 399, 400, 401, 1900, 2000, 2020, 2021, 2999, 3000} {
		for month := 1; month <= 12; month++ {
			for _, day := range []int{1, 15, caldate.MaxDay(month, year)} {
				if got, want := caldate.DaysSinceEpoch(day, month, year), slowDaysSinceEpoch(day, month, year); got != want {
					t.Errorf("%v.%v.%v: got %v, want %v", day, month, year, got, want)
				}
			}
		}
	}
}

func TestEpochRoundTrip(t *testing.T) {
	prev := 0
	for year := caldate.MinYear; year <= caldate.MaxYear; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= caldate.MaxDay(month, year); day++ {
				n := caldate.DaysSinceEpoch(day, month, year)
				if n != prev+1 {
					t.Fatalf("%v.%v.%v: not contiguous: got %v, want %v", day, month, year, n, prev+1)
				}
				prev = n
				d, m, y, err := caldate.DateFromEpochDays(n)
				if err != nil {
					t.Fatalf("%v.%v.%v: %v", day, month, year, err)
				}
				if d != day || m != month || y != year {
					t.Fatalf("%v: got %v.%v.%v, want %v.%v.%v", n, d, m, y, day, month, year)
				}
			}
		}
	}
}

func TestDateFromEpochDaysRange(t *testing.T) {
	last := caldate.DaysSinceEpoch(31, 12, 3000)
	for _, n := range []int{-1, 0, last + 1, last + 1000} {
		if _, _, _, err := caldate.DateFromEpochDays(n); !errors.Is(err, caldate.ErrOutOfRange) {
			t.Errorf("%v: expected ErrOutOfRange: got %v", n, err)
		}
	}
	d, m, y, err := caldate.DateFromEpochDays(last)
	if err != nil || d != 31 || m != 12 || y != 3000 {
		t.Errorf("got %v.%v.%v: %v", d, m, y, err)
	}
	// Exactly on a year boundary.
	d, m, y, err = caldate.DateFromEpochDays(366)
	if err != nil || d != 31 || m != 12 || y != 0 {
		t.Errorf("got %v.%v.%v: %v", d, m, y, err)
	}
}
