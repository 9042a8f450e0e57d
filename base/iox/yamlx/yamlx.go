// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides functions for reading and writing YAML files.
package yamlx

import (
	"io"

	"cogentcore.org/scenec/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new [iox.Decoder]
func NewDecoder(r io.Reader) iox.Decoder {
	return yaml.NewDecoder(r)
}

// Read reads the given object from the given reader,
// using YAML encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// NewEncoder returns a new [iox.Encoder]
func NewEncoder(w io.Writer) iox.Encoder {
	ye := yaml.NewEncoder(w)
	ye.SetIndent(2)
	return &encoder{ye}
}

// encoder closes the yaml encoder after every value, which
// flushes the document to the writer.
type encoder struct {
	*yaml.Encoder
}

func (e *encoder) Encode(v any) error {
	if err := e.Encoder.Encode(v); err != nil {
		return err
	}
	return e.Close()
}

// Write writes the given object using YAML encoding
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, NewEncoder)
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using YAML encoding
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, NewEncoder)
}
