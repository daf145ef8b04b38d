// Package reflectx holds the small amount of reflection shared by the optional
// and rop packages: nil detection, strict equality and named property lookup.
package reflectx

import (
	"reflect"
	"strings"
)

// IsNil reports whether i is a nil interface or a typed nil of a nillable kind.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// IsObject reports whether i is a value that can carry named properties:
// a struct, a pointer to a struct or a map keyed by string.
func IsObject(i any) bool {
	if IsNil(i) {
		return false
	}

	v := reflect.Indirect(reflect.ValueOf(i))
	switch v.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return v.Type().Key().Kind() == reflect.String
	}
	return false
}

// StrictEqual compares two values the way identity comparison would:
// comparable values by ==, reference kinds by the address they point to.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if !va.Type().Comparable() {
		return false
	}

	defer func() {
		// interfaces holding uncomparable dynamic values panic on ==
		_ = recover()
	}()
	return a == b
}

// Property looks up name on an object-like value. Maps are indexed by key,
// structs by exported field name or by the name in their json tag.
// The boolean is false when the value is not object-like or lacks the property.
func Property(i any, name string) (any, bool) {
	if !IsObject(i) {
		return nil, false
	}

	v := reflect.Indirect(reflect.ValueOf(i))
	if v.Kind() == reflect.Map {
		key := reflect.ValueOf(name).Convert(v.Type().Key())
		found := v.MapIndex(key)
		if !found.IsValid() {
			return nil, false
		}
		return found.Interface(), true
	}

	t := v.Type()
	for idx := 0; idx < t.NumField(); idx++ {
		field := t.Field(idx)
		if !field.IsExported() {
			continue
		}
		if field.Name == name || jsonName(field) == name {
			return v.Field(idx).Interface(), true
		}
	}
	return nil, false
}

func jsonName(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}
