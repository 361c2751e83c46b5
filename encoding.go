// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	nd, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// MarshalText implements encoding.TextMarshaler.
func (dur Duration) MarshalText() ([]byte, error) {
	return []byte(dur.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dur *Duration) UnmarshalText(text []byte) error {
	nd, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*dur = nd
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (dur Duration) MarshalYAML() (any, error) {
	return dur.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (dur *Duration) UnmarshalYAML(node *yaml.Node) error {
	return dur.UnmarshalText([]byte(node.Value))
}
