// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import "errors"

var (
	// ErrParse is returned for text that is not of the form dd.mm.yyyy,
	// or for a malformed duration.
	ErrParse = errors.New("malformed date")

	// ErrInvalidDate is returned for a well formed day, month and year
	// that do not denote a calendar day within the supported years.
	ErrInvalidDate = errors.New("invalid date")

	// ErrOutOfRange is returned when date arithmetic produces a result
	// outside of the supported years.
	ErrOutOfRange = errors.New("date out of range")

	// ErrTypeMismatch is returned when a value other than a Duration
	// is added to a Date.
	ErrTypeMismatch = errors.New("not a duration")
)
