// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grammar

import (
	"cogentcore.org/scenec/base/errors"
	"cogentcore.org/scenec/scale"
	"github.com/jinzhu/copier"
)

// Attribute is a reference to a named attribute of a data source,
// with an optional chain of scales applied to its values.
type Attribute struct {

	// Name is the name of the attribute in the data source.
	Name string

	// Scale is applied to the raw values, innermost first.
	Scale scale.Chain

	// ResolvedName is the name of the attribute holding the final
	// values, set once the attribute has been computed or renamed.
	ResolvedName string
}

// NewAttribute returns a reference to the named attribute with the given scales.
func NewAttribute(name string, steps ...scale.Step) *Attribute {
	return &Attribute{Name: name, Scale: steps}
}

// Key returns the name under which the attribute values are currently
// stored: the resolved name if set, and the original name otherwise.
func (at *Attribute) Key() string {
	if at.ResolvedName != "" {
		return at.ResolvedName
	}
	return at.Name
}

// Clone returns a deep copy of the reference, scale chain included.
func (at *Attribute) Clone() *Attribute {
	if at == nil {
		return nil
	}
	cp := &Attribute{}
	errors.Log(copier.CopyWithOption(cp, at, copier.Option{DeepCopy: true}))
	return cp
}
