// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a set of reflection helpers for setting
// struct fields, used to apply configuration defaults.
package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// SetFromDefaultTags sets the values of the fields in the given struct
// pointer from their `default:` field tags, recursing into struct fields
// without a tag. Fields without a tag are left unchanged.
func SetFromDefaultTags(obj any) error {
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: need a non-nil struct pointer, not %T", obj)
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: need a non-nil struct pointer, not %T", obj)
	}
	typ := val.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if NonPointerType(f.Type).Kind() == reflect.Struct && !ok {
			if fv.Kind() == reflect.Pointer && fv.IsNil() {
				continue
			}
			if err := SetFromDefaultTags(PointerValue(fv).Interface()); err != nil {
				return err
			}
			continue
		}
		if !ok {
			continue
		}
		if err := SetFromString(PointerValue(fv).Interface(), def); err != nil {
			return fmt.Errorf("reflectx.SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err)
		}
	}
	return nil
}

// SetFromString sets the value pointed to by ptr from the given string.
// It supports [encoding.TextUnmarshaler], strings, bools, numbers and
// durations.
func SetFromString(ptr any, s string) error {
	if tu, ok := ptr.(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	if d, ok := ptr.(*time.Duration); ok {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = v
		return nil
	}
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("need a non-nil pointer, not %T", ptr)
	}
	v = v.Elem()
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported type %v", v.Type())
	}
	return nil
}
