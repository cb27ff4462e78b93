package abi

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
)

type fieldKey struct {
	t    reflect.Type
	name string
}

// fieldIndex caches findField results; -1 marks a miss.
var fieldIndex sync.Map

// findField matches by: 1) wit:"name" tag, 2) case-insensitive, 3) kebab-case.
func findField(t reflect.Type, witName string) (int, bool) {
	key := fieldKey{t, witName}
	if idx, ok := fieldIndex.Load(key); ok {
		return idx.(int), idx.(int) >= 0
	}

	idx := -1
	for i := 0; i < t.NumField() && idx < 0; i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tag := f.Tag.Get("wit"); tag != "" {
			if tag == witName {
				idx = i
			}
			continue
		}
		if strings.EqualFold(f.Name, witName) || toKebabCase(f.Name) == witName {
			idx = i
		}
	}

	fieldIndex.Store(key, idx)
	return idx, idx >= 0
}

func toKebabCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// tupleElem returns element i of a tuple held in an array or, for a
// struct, its i-th exported field.
func tupleElem(v reflect.Value, i int) (reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Array:
		if i < v.Len() {
			return v.Index(i), true
		}
	case reflect.Struct:
		n := 0
		for j := 0; j < v.NumField(); j++ {
			if !v.Type().Field(j).IsExported() {
				continue
			}
			if n == i {
				return v.Field(j), true
			}
			n++
		}
	}
	return reflect.Value{}, false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}
