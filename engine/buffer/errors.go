package buffer

import "fmt"

// AllocationError reports a GPU resource allocation that failed during
// buffer or buffer-set construction.
type AllocationError struct {
	// Resource names the resource that could not be allocated
	// (e.g. "vertex buffer", "vertex array").
	Resource string

	// Err is the backend's underlying error, if any.
	Err error
}

func (e *AllocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("buffer: failed to allocate %s: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("buffer: failed to allocate %s", e.Resource)
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}

// LayoutError reports a record type whose memory layout cannot be mapped onto
// GPU attribute bindings (non-numeric fields, variable-size fields, etc.).
type LayoutError struct {
	// Type is the offending record type's name.
	Type string

	// Reason describes why the layout was rejected.
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("buffer: unsupported record layout %s: %s", e.Type, e.Reason)
}

// FieldBoundsError reports a field binding whose declared component layout
// does not fit within one record. Binding such a field would read into the
// adjacent field's bytes, so construction fails fast instead.
type FieldBoundsError struct {
	// Offset is the requested byte offset within the record.
	Offset uintptr

	// Span is the total byte span of the requested components.
	Span int

	// Stride is the record size the span must fit inside.
	Stride int
}

func (e *FieldBoundsError) Error() string {
	return fmt.Sprintf("buffer: field binding at offset %d spanning %d bytes exceeds record stride %d", e.Offset, e.Span, e.Stride)
}
