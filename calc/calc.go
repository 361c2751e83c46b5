// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calc evaluates lists of date calculations specified in YAML, eg:
//
//	- date: 01.01.2020
//	  add: 1y2m
//	- date: 31.12.2020
//	  sub: 365d
//	- date: 01.01.2021
//	  diff: 01.01.2020
//
// Dates are in dd.mm.yyyy format and durations as accepted by
// caldate.ParseDuration.
package calc

import (
	"context"
	"fmt"

	"cloudeng.io/caldate"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCalculation is returned for a calculation that does not
// specify exactly one of add, sub or diff.
var ErrInvalidCalculation = errors.New("invalid calculation")

// Calculation represents a single date calculation, exactly one of
// Add, Sub or Diff must be set.
type Calculation struct {
	Date caldate.Date      `yaml:"date"`
	Add  *caldate.Duration `yaml:"add,omitempty"`
	Sub  *caldate.Duration `yaml:"sub,omitempty"`
	Diff *caldate.Date     `yaml:"diff,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Calculation) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Date *caldate.Date     `yaml:"date"`
		Add  *caldate.Duration `yaml:"add"`
		Sub  *caldate.Duration `yaml:"sub"`
		Diff *caldate.Date     `yaml:"diff"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Date == nil {
		return fmt.Errorf("line %v: %w: missing date", node.Line, ErrInvalidCalculation)
	}
	*c = Calculation{Date: *raw.Date, Add: raw.Add, Sub: raw.Sub, Diff: raw.Diff}
	return nil
}

func (c Calculation) numOps() int {
	n := 0
	if c.Add != nil {
		n++
	}
	if c.Sub != nil {
		n++
	}
	if c.Diff != nil {
		n++
	}
	return n
}

func (c Calculation) String() string {
	switch {
	case c.numOps() != 1:
		return fmt.Sprintf("%v ?", c.Date)
	case c.Add != nil:
		return fmt.Sprintf("%v + %v", c.Date, *c.Add)
	case c.Sub != nil:
		return fmt.Sprintf("%v - %v", c.Date, *c.Sub)
	default:
		return fmt.Sprintf("%v - %v", c.Date, *c.Diff)
	}
}

// IsDiff returns true if the calculation is a difference between two dates.
func (c Calculation) IsDiff() bool {
	return c.Diff != nil
}

// Calculations represents a list of calculations.
type Calculations []Calculation

// Parse parses a YAML list of calculations. Every calculation that does
// not specify exactly one operation is reported.
func Parse(data []byte) (Calculations, error) {
	var calcs Calculations
	if err := yaml.Unmarshal(data, &calcs); err != nil {
		return nil, err
	}
	errs := &errors.M{}
	for i, c := range calcs {
		if c.numOps() != 1 {
			errs.Append(fmt.Errorf("calculation %v: %v: %w: expected exactly one of add, sub or diff", i, c.Date, ErrInvalidCalculation))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return calcs, nil
}

// Result is the result of evaluating a Calculation. Date is set for add
// and sub, Days for diff.
type Result struct {
	Index       int
	Calculation Calculation
	Date        caldate.Date
	Days        int
}

func (r Result) String() string {
	if r.Calculation.IsDiff() {
		return fmt.Sprintf("%v = %v", r.Calculation, r.Days)
	}
	return fmt.Sprintf("%v = %v", r.Calculation, r.Date)
}

// Eval evaluates a single calculation.
func (c Calculation) Eval() (Result, error) {
	res := Result{Calculation: c}
	var err error
	switch {
	case c.numOps() != 1:
		return res, fmt.Errorf("%v: %w", c, ErrInvalidCalculation)
	case c.Add != nil:
		res.Date, err = c.Date.Add(*c.Add)
	case c.Sub != nil:
		res.Date, err = c.Date.Sub(*c.Sub)
	default:
		res.Days = c.Date.Difference(*c.Diff)
	}
	return res, err
}

// Evaluate evaluates all of the calculations, returning the results of those
// that succeeded and an error that reports all of those that failed. Each
// result is logged at debug level, and each failure as a warning, using
// the logger in ctx. Evaluation stops if ctx is canceled.
func (cs Calculations) Evaluate(ctx context.Context) ([]Result, error) {
	logger := ctxlog.Logger(ctx)
	results := make([]Result, 0, len(cs))
	errs := &errors.M{}
	for i, c := range cs {
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}
		res, err := c.Eval()
		if err != nil {
			logger.Warn("calc: failed", "index", i, "calculation", c.String(), "error", err)
			errs.Append(fmt.Errorf("calculation %v: %w", i, err))
			continue
		}
		res.Index = i
		logger.Debug("calc: evaluated", "index", i, "result", res.String())
		results = append(results, res)
	}
	return results, errs.Err()
}
