// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metadata provides a map of named any elements
// with generic support for type-safe Get and nil-safe Set.
// Tables use it for optional properties such as their
// name, documentation and output precision.
package metadata

import (
	"fmt"
	"maps"

	"cogentcore.org/multivar/base/errors"
)

// Data is metadata as a map of named any elements.
// Keys use CamelCase, as they act like optional struct fields.
type Data map[string]any

func (md *Data) init() {
	if *md == nil {
		*md = make(map[string]any)
	}
}

// Set sets key to given value, ensuring that
// the map is created if not previously.
func (md *Data) Set(key string, value any) {
	md.init()
	(*md)[key] = value
}

// Get gets metadata value of given type.
// returns error if not present or item is a different type.
func Get[T any](md Data, key string) (T, error) {
	var z T
	x, ok := md[key]
	if !ok {
		return z, fmt.Errorf("key %q not found in metadata", key)
	}
	v, ok := x.(T)
	if !ok {
		return z, fmt.Errorf("key %q has a different type than expected %T: is %T", key, z, x)
	}
	return v, nil
}

// Copy does a shallow copy of metadata from source,
// using [maps.Copy].
func (md *Data) Copy(src Data) {
	if src == nil {
		return
	}
	md.init()
	maps.Copy(*md, src)
}

// SetName sets the "Name" standard key.
func (md *Data) SetName(name string) {
	md.Set("Name", name)
}

// Name returns the "Name" standard key value (empty if not set).
func (md Data) Name() string {
	return errors.Ignore1(Get[string](md, "Name"))
}

// SetDoc sets the "Doc" standard key.
func (md *Data) SetDoc(doc string) {
	md.Set("Doc", doc)
}

// Doc returns the "Doc" standard key value (empty if not set).
func (md Data) Doc() string {
	return errors.Ignore1(Get[string](md, "Doc"))
}

// SetPrecision sets the "Precision" standard key, the number of
// significant digits used when writing floating point values as text.
func (md *Data) SetPrecision(prec int) {
	md.Set("Precision", prec)
}

// Precision returns the "Precision" standard key value,
// or -1 (shortest exact representation) if not set.
func (md Data) Precision() int {
	p, err := Get[int](md, "Precision")
	if err != nil {
		return -1
	}
	return p
}
