// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"fmt"
	"slices"
	"strings"

	"cloudeng.io/errors"
)

// DateList represents a list of Dates.
type DateList []Date

// Parse a comma separated list of dates in dd.mm.yyyy format, white space
// around each date is ignored. All invalid dates are reported and dl is
// left unchanged if any are found.
func (dl *DateList) Parse(val string) error {
	if len(strings.TrimSpace(val)) == 0 {
		*dl = nil
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(DateList, 0, len(parts))
	errs := &errors.M{}
	for i, part := range parts {
		date, err := Parse(strings.TrimSpace(part))
		if err != nil {
			errs.Append(fmt.Errorf("item %v: %w", i, err))
			continue
		}
		d = append(d, date)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	*dl = d
	return nil
}

// Sort sorts the list into ascending order.
func (dl DateList) Sort() {
	slices.SortFunc(dl, Date.Compare)
}

// Contains returns true if d is in the list.
func (dl DateList) Contains(d Date) bool {
	return slices.Contains(dl, d)
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(",")
		}
		out.WriteString(d.String())
	}
	return out.String()
}
