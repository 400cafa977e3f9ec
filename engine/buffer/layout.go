package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
)

// fieldSpec describes one numeric leaf field of a record type: its byte
// offset from the start of the record and its reflected kind. Offsets come
// from the type's actual memory layout, never from caller-supplied constants,
// so bindings survive record reordering.
type fieldSpec struct {
	offset uintptr
	kind   reflect.Kind
}

// layoutOf flattens a record type into its numeric leaf fields. Nested
// structs and fixed-size arrays are walked recursively; any field that is not
// a fixed-width numeric value makes the type unusable as a GPU record.
func layoutOf(t reflect.Type) ([]fieldSpec, error) {
	var fields []fieldSpec
	if err := appendFields(&fields, t, 0); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, &LayoutError{Type: t.String(), Reason: "record has no fields"}
	}
	return fields, nil
}

func appendFields(out *[]fieldSpec, t reflect.Type, base uintptr) error {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		*out = append(*out, fieldSpec{offset: base, kind: t.Kind()})
		return nil
	case reflect.Array:
		elem := t.Elem()
		for i := 0; i < t.Len(); i++ {
			if err := appendFields(out, elem, base+uintptr(i)*elem.Size()); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if err := appendFields(out, f.Type, base+f.Offset); err != nil {
				return err
			}
		}
		return nil
	default:
		return &LayoutError{Type: t.String(), Reason: fmt.Sprintf("field kind %s is not a fixed-width numeric value", t.Kind())}
	}
}

// encodeRecord serializes one record into dst, writing each numeric leaf
// field little-endian at its reflected byte offset. dst must be at least
// the record's size. This is an explicit copy rather than a raw memory view,
// so the upload path never aliases Go-managed memory.
func encodeRecord(dst []byte, v reflect.Value, fields []fieldSpec) {
	for _, f := range fields {
		fv := fieldAt(v, f.offset)
		switch f.kind {
		case reflect.Float32:
			binary.LittleEndian.PutUint32(dst[f.offset:], math.Float32bits(float32(fv.Float())))
		case reflect.Float64:
			binary.LittleEndian.PutUint64(dst[f.offset:], math.Float64bits(fv.Float()))
		case reflect.Int8:
			dst[f.offset] = byte(int8(fv.Int()))
		case reflect.Int16:
			binary.LittleEndian.PutUint16(dst[f.offset:], uint16(int16(fv.Int())))
		case reflect.Int32:
			binary.LittleEndian.PutUint32(dst[f.offset:], uint32(int32(fv.Int())))
		case reflect.Int64:
			binary.LittleEndian.PutUint64(dst[f.offset:], uint64(fv.Int()))
		case reflect.Uint8:
			dst[f.offset] = byte(fv.Uint())
		case reflect.Uint16:
			binary.LittleEndian.PutUint16(dst[f.offset:], uint16(fv.Uint()))
		case reflect.Uint32:
			binary.LittleEndian.PutUint32(dst[f.offset:], uint32(fv.Uint()))
		case reflect.Uint64:
			binary.LittleEndian.PutUint64(dst[f.offset:], fv.Uint())
		}
	}
}

// fieldAt descends from a record value to the leaf value at the given byte
// offset, mirroring the walk appendFields performed over the type.
func fieldAt(v reflect.Value, offset uintptr) reflect.Value {
	for {
		switch v.Kind() {
		case reflect.Struct:
			t := v.Type()
			// Walk backwards so the last field whose offset is <= target wins.
			for i := t.NumField() - 1; i >= 0; i-- {
				f := t.Field(i)
				if f.Offset <= offset {
					v = v.Field(i)
					offset -= f.Offset
					break
				}
			}
		case reflect.Array:
			elemSize := v.Type().Elem().Size()
			idx := int(offset / elemSize)
			v = v.Index(idx)
			offset -= uintptr(idx) * elemSize
		default:
			return v
		}
	}
}

// OffsetOf resolves the byte offset of a top-level field of the record type T
// from T's actual memory layout. Using this instead of a hardcoded constant
// keeps attribute bindings correct when the record type is reordered.
//
// Parameters:
//   - field: the exported or unexported field name on T
//
// Returns:
//   - uintptr: the field's byte offset within T
//   - error: error if T is not a struct or has no such field
func OffsetOf[T any](field string) (uintptr, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() != reflect.Struct {
		return 0, &LayoutError{Type: t.String(), Reason: "record type is not a struct"}
	}
	f, ok := t.FieldByName(field)
	if !ok {
		return 0, &LayoutError{Type: t.String(), Reason: fmt.Sprintf("no field named %q", field)}
	}
	return f.Offset, nil
}

// RecordSize returns the in-memory size of the record type T in bytes, which
// is also the stride used for every attribute binding on a TypedBuffer[T].
//
// Returns:
//   - int: size of T in bytes
func RecordSize[T any]() int {
	var zero T
	return int(reflect.TypeOf(zero).Size())
}
