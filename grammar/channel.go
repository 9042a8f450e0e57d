// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grammar

// Channel is a visual binding attached to a layer. The concrete types
// are [Position], [Normal], [Size] and the [Material] types.
type Channel interface {
	isChannel()

	// cloneChannel returns a copy that shares no attribute references.
	cloneChannel() Channel
}

// Position binds the coordinates used to place the marks.
type Position struct {
	Data *Attribute
}

// Normal binds the normal vectors used to shade surfaces.
type Normal struct {
	Data *Attribute
}

// Size binds the size of the marks (e.g. sphere radius for points),
// either to the values of an attribute or, if Data is nil, to the
// constant Value.
type Size struct {
	Data  *Attribute
	Value float32
}

// NewPosition returns a [Position] channel bound to the given attribute.
func NewPosition(at *Attribute) *Position { return &Position{Data: at} }

// NewNormal returns a [Normal] channel bound to the given attribute.
func NewNormal(at *Attribute) *Normal { return &Normal{Data: at} }

// NewSize returns a [Size] channel bound to the given attribute.
func NewSize(at *Attribute) *Size { return &Size{Data: at} }

// NewSizeValue returns a constant [Size] channel.
func NewSizeValue(v float32) *Size { return &Size{Value: v} }

func (*Position) isChannel() {}
func (*Normal) isChannel()   {}
func (*Size) isChannel()     {}

func (ch *Position) cloneChannel() Channel { return &Position{Data: ch.Data.Clone()} }
func (ch *Normal) cloneChannel() Channel   { return &Normal{Data: ch.Data.Clone()} }
func (ch *Size) cloneChannel() Channel     { return &Size{Data: ch.Data.Clone(), Value: ch.Value} }

// CloneChannel returns a deep copy of the given channel, so that
// compiling it cannot affect the original's attribute references.
func CloneChannel(ch Channel) Channel {
	if ch == nil {
		return nil
	}
	return ch.cloneChannel()
}

// CloneChannels returns a deep copy of the given channel list.
func CloneChannels(chs []Channel) []Channel {
	if chs == nil {
		return nil
	}
	cp := make([]Channel, len(chs))
	for i, ch := range chs {
		cp[i] = CloneChannel(ch)
	}
	return cp
}
