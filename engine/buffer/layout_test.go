package buffer

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type layoutVertex struct {
	Pos    [3]float32
	Normal [3]float32
	UV     [2]float32
}

type packedVertex struct {
	Pos   [3]float32
	Color [4]uint8
}

func TestOffsetOfMatchesReflectedLayout(t *testing.T) {
	rt := reflect.TypeOf(layoutVertex{})
	for _, name := range []string{"Pos", "Normal", "UV"} {
		field, ok := rt.FieldByName(name)
		require.True(t, ok)

		off, err := OffsetOf[layoutVertex](name)
		require.NoError(t, err)
		assert.Equal(t, field.Offset, off)
	}
}

func TestOffsetOfUnknownField(t *testing.T) {
	_, err := OffsetOf[layoutVertex]("Tangent")
	assert.Error(t, err)
}

func TestRecordSizeMatchesReflectedSize(t *testing.T) {
	assert.Equal(t, int(reflect.TypeOf(layoutVertex{}).Size()), RecordSize[layoutVertex]())
	assert.Equal(t, int(reflect.TypeOf(packedVertex{}).Size()), RecordSize[packedVertex]())
	assert.Equal(t, 2, RecordSize[uint16]())
}

func TestLayoutOfFlattensNestedStructsAndArrays(t *testing.T) {
	type inner struct {
		A float32
		B [2]int16
	}
	type record struct {
		First  inner
		Second uint32
	}

	fields, err := layoutOf(reflect.TypeOf(record{}))
	require.NoError(t, err)
	// A, B[0], B[1], Second
	require.Len(t, fields, 4)
	assert.Equal(t, reflect.Float32, fields[0].kind)
	assert.Equal(t, reflect.Int16, fields[1].kind)
	assert.Equal(t, reflect.Int16, fields[2].kind)
	assert.Equal(t, reflect.Uint32, fields[3].kind)
	assert.Equal(t, uintptr(4), fields[1].offset)
	assert.Equal(t, uintptr(6), fields[2].offset)
}

func TestLayoutOfRejectsUnsupportedFields(t *testing.T) {
	type withString struct {
		Pos  [3]float32
		Name string
	}
	type withSlice struct {
		Data []float32
	}
	type withPointer struct {
		Next *float32
	}
	type withBool struct {
		Flag bool
	}
	type empty struct{}

	tests := []struct {
		name string
		typ  reflect.Type
	}{
		{name: "string field", typ: reflect.TypeOf(withString{})},
		{name: "slice field", typ: reflect.TypeOf(withSlice{})},
		{name: "pointer field", typ: reflect.TypeOf(withPointer{})},
		{name: "bool field", typ: reflect.TypeOf(withBool{})},
		{name: "no fields", typ: reflect.TypeOf(empty{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := layoutOf(tt.typ)
			var layoutErr *LayoutError
			require.ErrorAs(t, err, &layoutErr)
		})
	}
}
