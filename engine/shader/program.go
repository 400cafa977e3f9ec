// package shader wraps compilation and linking of a vertex/fragment program
// pair and caches attribute and uniform handles resolved by name, so scenes
// never touch raw location integers.
package shader

import (
	"github.com/Carmen-Shannon/prism-go/engine/gpu"
)

// program is the implementation of the Program interface.
// Both location maps are populated exactly once, at construction, and are
// never mutated by lookups.
type program struct {
	// handle is the linked GPU program.
	handle gpu.Program

	// attribLocations maps attribute name to slot index, unique per program.
	attribLocations map[string]uint32

	// uniformLocations maps uniform name to its opaque location handle.
	uniformLocations map[string]gpu.UniformLocation
}

// Program is a linked vertex/fragment shader pair with name-resolved
// attribute and uniform handles. Lookups after construction are pure reads.
type Program interface {
	// FindAttribute retrieves the slot index for a registered attribute name.
	//
	// Parameters:
	//   - name: the attribute name declared at construction
	//
	// Returns:
	//   - uint32: the attribute slot index
	//   - error: *UnknownBindingError if the name was not registered at construction
	FindAttribute(name string) (uint32, error)

	// FindUniform retrieves the location handle for a registered uniform name.
	// The returned handle is stable for the lifetime of the program.
	//
	// Parameters:
	//   - name: the uniform name declared at construction
	//
	// Returns:
	//   - gpu.UniformLocation: the uniform location handle
	//   - error: *UnknownBindingError if the name was not registered at construction
	FindUniform(name string) (gpu.UniformLocation, error)

	// Activate makes this program current for subsequent draw calls. Idempotent.
	//
	// Parameters:
	//   - ctx: the GPU context to issue the call on
	Activate(ctx gpu.Context)

	// Handle returns the underlying linked program handle.
	//
	// Returns:
	//   - gpu.Program: the linked program handle
	Handle() gpu.Program

	// Release deletes the linked program. The program must not be used after.
	//
	// Parameters:
	//   - ctx: the GPU context to issue the call on
	Release(ctx gpu.Context)
}

var _ Program = &program{}

// NewProgram compiles and links a vertex/fragment shader pair and resolves a
// handle for every declared uniform and attribute name. Intermediate shader
// objects are released immediately after a successful link. On any failure the
// partially-built GPU objects are deleted before returning, so no allocation
// is left dangling.
//
// Parameters:
//   - ctx: the GPU context to build the program on
//   - vertexSrc: vertex stage source text
//   - fragmentSrc: fragment stage source text
//   - uniformNames: every uniform name the caller will look up later
//   - attributeNames: every attribute name the caller will look up later
//
// Returns:
//   - Program: the linked program with populated location maps
//   - error: *ShaderCompileError, *ShaderLinkError or *UnknownBindingError
func NewProgram(ctx gpu.Context, vertexSrc, fragmentSrc string, uniformNames, attributeNames []string) (Program, error) {
	vert, err := compileStage(ctx, gpu.StageVertex, vertexSrc)
	if err != nil {
		return nil, err
	}
	frag, err := compileStage(ctx, gpu.StageFragment, fragmentSrc)
	if err != nil {
		ctx.DeleteShader(vert)
		return nil, err
	}

	handle, err := ctx.CreateProgram()
	if err != nil {
		ctx.DeleteShader(vert)
		ctx.DeleteShader(frag)
		return nil, &ShaderLinkError{Diagnostic: err.Error()}
	}
	ctx.AttachShader(handle, vert)
	ctx.AttachShader(handle, frag)
	if err := ctx.LinkProgram(handle); err != nil {
		ctx.DeleteShader(vert)
		ctx.DeleteShader(frag)
		ctx.DeleteProgram(handle)
		return nil, &ShaderLinkError{Diagnostic: err.Error()}
	}
	ctx.DeleteShader(vert)
	ctx.DeleteShader(frag)

	p := &program{
		handle:           handle,
		attribLocations:  make(map[string]uint32, len(attributeNames)),
		uniformLocations: make(map[string]gpu.UniformLocation, len(uniformNames)),
	}
	for _, name := range attributeNames {
		slot, ok := ctx.AttribLocation(handle, name)
		if !ok {
			ctx.DeleteProgram(handle)
			return nil, &UnknownBindingError{Name: name}
		}
		p.attribLocations[name] = slot
	}
	for _, name := range uniformNames {
		loc, ok := ctx.UniformLocation(handle, name)
		if !ok {
			ctx.DeleteProgram(handle)
			return nil, &UnknownBindingError{Name: name}
		}
		p.uniformLocations[name] = loc
	}
	return p, nil
}

// compileStage allocates, sources and compiles one shader stage.
// The shader object is deleted before returning on compile failure.
func compileStage(ctx gpu.Context, stage gpu.ShaderStage, source string) (gpu.Shader, error) {
	sh, err := ctx.CreateShader(stage)
	if err != nil {
		return 0, &ShaderCompileError{Stage: stage, Diagnostic: err.Error()}
	}
	ctx.ShaderSource(sh, source)
	if err := ctx.CompileShader(sh); err != nil {
		ctx.DeleteShader(sh)
		return 0, &ShaderCompileError{Stage: stage, Diagnostic: err.Error()}
	}
	return sh, nil
}

func (p *program) FindAttribute(name string) (uint32, error) {
	slot, ok := p.attribLocations[name]
	if !ok {
		return 0, &UnknownBindingError{Name: name}
	}
	return slot, nil
}

func (p *program) FindUniform(name string) (gpu.UniformLocation, error) {
	loc, ok := p.uniformLocations[name]
	if !ok {
		return 0, &UnknownBindingError{Name: name}
	}
	return loc, nil
}

func (p *program) Activate(ctx gpu.Context) {
	ctx.UseProgram(p.handle)
}

func (p *program) Handle() gpu.Program {
	return p.handle
}

func (p *program) Release(ctx gpu.Context) {
	ctx.DeleteProgram(p.handle)
}
