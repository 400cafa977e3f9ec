package shader

import (
	"fmt"

	"github.com/Carmen-Shannon/prism-go/engine/gpu"
)

// ShaderCompileError reports a shader stage that failed to compile.
// Construction aborts and no partially-built program is returned.
type ShaderCompileError struct {
	// Stage is the pipeline stage whose source failed to compile.
	Stage gpu.ShaderStage

	// Diagnostic is the backend's compiler output.
	Diagnostic string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("shader: %s stage failed to compile: %s", e.Stage, e.Diagnostic)
}

// ShaderLinkError reports a program whose compiled stages failed to link.
type ShaderLinkError struct {
	// Diagnostic is the backend's linker output.
	Diagnostic string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("shader: program failed to link: %s", e.Diagnostic)
}

// UnknownBindingError reports an attribute or uniform name with no matching
// declaration on the linked program. Surfaces both at construction (a declared
// name the shader source never mentions) and on lookups with unregistered
// names, which are programmer errors.
type UnknownBindingError struct {
	// Name is the attribute or uniform name that could not be resolved.
	Name string
}

func (e *UnknownBindingError) Error() string {
	return fmt.Sprintf("shader: unknown binding %q", e.Name)
}
