// package gputest provides a recording, in-memory implementation of the
// gpu.Context capability interface for tests. Buffer uploads are retained
// byte-for-byte so tests can read back exactly what would have reached the
// GPU, and attribute/uniform resolution is simulated by scanning the attached
// shader sources for declared names.
package gputest

import (
	"fmt"
	"regexp"

	"github.com/Carmen-Shannon/prism-go/engine/gpu"
)

// BufferState holds the recorded state of one fake GPU buffer.
type BufferState struct {
	// Data is a copy of the bytes most recently uploaded to this buffer.
	Data []byte

	// Freq is the update-frequency hint supplied with the last upload.
	Freq gpu.UpdateFrequency

	// Uploads counts how many BufferData calls have targeted this buffer.
	Uploads int
}

// ShaderState holds the recorded state of one fake shader object.
type ShaderState struct {
	Stage    gpu.ShaderStage
	Source   string
	Compiled bool
}

// ProgramState holds the recorded state of one fake program object.
type ProgramState struct {
	Shaders []gpu.Shader
	Linked  bool

	// Sources snapshots the attached shader sources at link time, mirroring
	// how a real backend retains active-variable tables after the shader
	// objects themselves are deleted.
	Sources []string

	attribs  map[string]uint32
	uniforms map[string]gpu.UniformLocation
}

// AttribPointerCall records one VertexAttribPointer invocation.
type AttribPointerCall struct {
	Slot           uint32
	ComponentCount int
	ComponentType  gpu.ComponentType
	Normalized     bool
	Stride         int
	Offset         int

	// Buffer is the vertex buffer bound when the pointer was set.
	Buffer gpu.Buffer
}

// DrawCall records one draw invocation of any flavor.
type DrawCall struct {
	Mode      gpu.Primitive
	First     int
	Count     int
	IndexType gpu.ComponentType
	Offset    int
	Instances int

	// Indexed is true for DrawElements/DrawElementsInstanced calls.
	Indexed bool
}

// Context is a fake gpu.Context that records every operation. The zero value
// is not usable; construct instances with NewContext.
type Context struct {
	// FailBuffers makes CreateBuffer return an error when true.
	FailBuffers bool

	// FailVertexArrays makes CreateVertexArray return an error when true.
	FailVertexArrays bool

	// FailCompile maps a shader stage to a diagnostic; CompileShader fails
	// with that diagnostic for shaders of the given stage.
	FailCompile map[gpu.ShaderStage]string

	// FailLink, when non-empty, makes LinkProgram fail with this diagnostic.
	FailLink string

	// AttribCalls records every VertexAttribPointer invocation in order.
	AttribCalls []AttribPointerCall

	// EnabledSlots records attribute slots enabled via EnableVertexAttrib.
	EnabledSlots map[uint32]bool

	// Divisors records per-slot instance divisors.
	Divisors map[uint32]uint32

	// Draws records every draw call in order.
	Draws []DrawCall

	// MatrixUploads records the last mat4 uploaded per uniform location.
	MatrixUploads map[gpu.UniformLocation][]float32

	// Features records enabled capability flags.
	Features map[gpu.Feature]bool

	// ClearCount counts Clear invocations.
	ClearCount int

	// ViewportRect holds the last Viewport call as [x, y, w, h].
	ViewportRect [4]int

	nextHandle uint32

	buffers      map[gpu.Buffer]*BufferState
	bound        map[gpu.BufferKind]gpu.Buffer
	shaders      map[gpu.Shader]*ShaderState
	programs     map[gpu.Program]*ProgramState
	vertexArrays map[gpu.VertexArray]bool
	textures     map[gpu.Texture]bool
	framebuffers map[gpu.Framebuffer]bool

	current  gpu.Program
	boundVA  gpu.VertexArray
	boundTex gpu.Texture
	boundFB  gpu.Framebuffer
}

var _ gpu.Context = &Context{}

// NewContext creates an empty recording context.
func NewContext() *Context {
	return &Context{
		FailCompile:   make(map[gpu.ShaderStage]string),
		EnabledSlots:  make(map[uint32]bool),
		Divisors:      make(map[uint32]uint32),
		MatrixUploads: make(map[gpu.UniformLocation][]float32),
		Features:      make(map[gpu.Feature]bool),
		buffers:       make(map[gpu.Buffer]*BufferState),
		bound:         make(map[gpu.BufferKind]gpu.Buffer),
		shaders:       make(map[gpu.Shader]*ShaderState),
		programs:      make(map[gpu.Program]*ProgramState),
		vertexArrays:  make(map[gpu.VertexArray]bool),
		textures:      make(map[gpu.Texture]bool),
		framebuffers:  make(map[gpu.Framebuffer]bool),
	}
}

func (c *Context) handle() uint32 {
	c.nextHandle++
	return c.nextHandle
}

// BufferBytes returns a copy of the bytes last uploaded to buf, or nil if the
// buffer does not exist or has never been written.
func (c *Context) BufferBytes(buf gpu.Buffer) []byte {
	state, ok := c.buffers[buf]
	if !ok || state.Data == nil {
		return nil
	}
	out := make([]byte, len(state.Data))
	copy(out, state.Data)
	return out
}

// Buffer returns the recorded state of buf, or nil if it does not exist.
func (c *Context) Buffer(buf gpu.Buffer) *BufferState {
	return c.buffers[buf]
}

// BoundBuffer returns the buffer currently bound to kind.
func (c *Context) BoundBuffer(kind gpu.BufferKind) gpu.Buffer {
	return c.bound[kind]
}

// BoundVertexArray returns the currently bound vertex array.
func (c *Context) BoundVertexArray() gpu.VertexArray {
	return c.boundVA
}

// CurrentProgram returns the program made current by the last UseProgram call.
func (c *Context) CurrentProgram() gpu.Program {
	return c.current
}

// LiveBuffers returns the number of allocated, undeleted buffers.
func (c *Context) LiveBuffers() int { return len(c.buffers) }

// LiveShaders returns the number of allocated, undeleted shader objects.
func (c *Context) LiveShaders() int { return len(c.shaders) }

// LivePrograms returns the number of allocated, undeleted program objects.
func (c *Context) LivePrograms() int { return len(c.programs) }

// LiveVertexArrays returns the number of allocated, undeleted vertex arrays.
func (c *Context) LiveVertexArrays() int { return len(c.vertexArrays) }

func (c *Context) CreateBuffer() (gpu.Buffer, error) {
	if c.FailBuffers {
		return 0, fmt.Errorf("gputest: buffer allocation disabled")
	}
	buf := gpu.Buffer(c.handle())
	c.buffers[buf] = &BufferState{}
	return buf, nil
}

func (c *Context) DeleteBuffer(buf gpu.Buffer) {
	delete(c.buffers, buf)
}

func (c *Context) BindBuffer(kind gpu.BufferKind, buf gpu.Buffer) {
	c.bound[kind] = buf
}

func (c *Context) BufferData(kind gpu.BufferKind, data []byte, freq gpu.UpdateFrequency) {
	buf := c.bound[kind]
	state, ok := c.buffers[buf]
	if !ok {
		return
	}
	state.Data = make([]byte, len(data))
	copy(state.Data, data)
	state.Freq = freq
	state.Uploads++
}

func (c *Context) CreateShader(stage gpu.ShaderStage) (gpu.Shader, error) {
	sh := gpu.Shader(c.handle())
	c.shaders[sh] = &ShaderState{Stage: stage}
	return sh, nil
}

func (c *Context) ShaderSource(sh gpu.Shader, source string) {
	if state, ok := c.shaders[sh]; ok {
		state.Source = source
	}
}

func (c *Context) CompileShader(sh gpu.Shader) error {
	state, ok := c.shaders[sh]
	if !ok {
		return fmt.Errorf("gputest: unknown shader %d", sh)
	}
	if diag, failed := c.FailCompile[state.Stage]; failed {
		return fmt.Errorf("%s", diag)
	}
	state.Compiled = true
	return nil
}

func (c *Context) DeleteShader(sh gpu.Shader) {
	delete(c.shaders, sh)
}

func (c *Context) CreateProgram() (gpu.Program, error) {
	prog := gpu.Program(c.handle())
	c.programs[prog] = &ProgramState{
		attribs:  make(map[string]uint32),
		uniforms: make(map[string]gpu.UniformLocation),
	}
	return prog, nil
}

func (c *Context) AttachShader(prog gpu.Program, sh gpu.Shader) {
	if state, ok := c.programs[prog]; ok {
		state.Shaders = append(state.Shaders, sh)
	}
}

func (c *Context) LinkProgram(prog gpu.Program) error {
	state, ok := c.programs[prog]
	if !ok {
		return fmt.Errorf("gputest: unknown program %d", prog)
	}
	if c.FailLink != "" {
		return fmt.Errorf("%s", c.FailLink)
	}
	state.Linked = true
	state.Sources = state.Sources[:0]
	for _, sh := range state.Shaders {
		if shState, ok := c.shaders[sh]; ok {
			state.Sources = append(state.Sources, shState.Source)
		}
	}
	return nil
}

func (c *Context) DeleteProgram(prog gpu.Program) {
	delete(c.programs, prog)
}

func (c *Context) UseProgram(prog gpu.Program) {
	c.current = prog
}

// declares reports whether any source linked into the program mentions name
// as a whole word. This stands in for the backend's active-variable tables.
func (c *Context) declares(state *ProgramState, name string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	for _, src := range state.Sources {
		if re.MatchString(src) {
			return true
		}
	}
	return false
}

func (c *Context) AttribLocation(prog gpu.Program, name string) (uint32, bool) {
	state, ok := c.programs[prog]
	if !ok || !state.Linked {
		return 0, false
	}
	if loc, ok := state.attribs[name]; ok {
		return loc, true
	}
	if !c.declares(state, name) {
		return 0, false
	}
	loc := uint32(len(state.attribs))
	state.attribs[name] = loc
	return loc, true
}

func (c *Context) UniformLocation(prog gpu.Program, name string) (gpu.UniformLocation, bool) {
	state, ok := c.programs[prog]
	if !ok || !state.Linked {
		return 0, false
	}
	if loc, ok := state.uniforms[name]; ok {
		return loc, true
	}
	if !c.declares(state, name) {
		return 0, false
	}
	loc := gpu.UniformLocation(len(state.uniforms))
	state.uniforms[name] = loc
	return loc, true
}

func (c *Context) VertexAttribPointer(slot uint32, componentCount int, componentType gpu.ComponentType, normalized bool, stride, offset int) {
	c.AttribCalls = append(c.AttribCalls, AttribPointerCall{
		Slot:           slot,
		ComponentCount: componentCount,
		ComponentType:  componentType,
		Normalized:     normalized,
		Stride:         stride,
		Offset:         offset,
		Buffer:         c.bound[gpu.BufferKindVertex],
	})
}

func (c *Context) EnableVertexAttrib(slot uint32) {
	c.EnabledSlots[slot] = true
}

func (c *Context) VertexAttribDivisor(slot uint32, divisor uint32) {
	c.Divisors[slot] = divisor
}

func (c *Context) CreateVertexArray() (gpu.VertexArray, error) {
	if c.FailVertexArrays {
		return 0, fmt.Errorf("gputest: vertex array allocation disabled")
	}
	va := gpu.VertexArray(c.handle())
	c.vertexArrays[va] = true
	return va, nil
}

func (c *Context) BindVertexArray(va gpu.VertexArray) {
	c.boundVA = va
}

func (c *Context) DeleteVertexArray(va gpu.VertexArray) {
	delete(c.vertexArrays, va)
}

func (c *Context) Uniform1f(loc gpu.UniformLocation, v float32)       {}
func (c *Context) Uniform1i(loc gpu.UniformLocation, v int32)         {}
func (c *Context) Uniform2f(loc gpu.UniformLocation, x, y float32)    {}
func (c *Context) Uniform3f(loc gpu.UniformLocation, x, y, z float32) {}
func (c *Context) Uniform4f(loc gpu.UniformLocation, x, y, z, w float32) {
}

func (c *Context) UniformMatrix4fv(loc gpu.UniformLocation, value []float32) {
	m := make([]float32, len(value))
	copy(m, value)
	c.MatrixUploads[loc] = m
}

func (c *Context) DrawArrays(mode gpu.Primitive, first, count int) {
	c.Draws = append(c.Draws, DrawCall{Mode: mode, First: first, Count: count})
}

func (c *Context) DrawElements(mode gpu.Primitive, count int, indexType gpu.ComponentType, offset int) {
	c.Draws = append(c.Draws, DrawCall{Mode: mode, Count: count, IndexType: indexType, Offset: offset, Indexed: true})
}

func (c *Context) DrawElementsInstanced(mode gpu.Primitive, count int, indexType gpu.ComponentType, offset, instanceCount int) {
	c.Draws = append(c.Draws, DrawCall{Mode: mode, Count: count, IndexType: indexType, Offset: offset, Instances: instanceCount, Indexed: true})
}

func (c *Context) ClearColor(r, g, b, a float32) {}

func (c *Context) Clear(mask gpu.ClearMask) {
	c.ClearCount++
}

func (c *Context) Viewport(x, y, width, height int) {
	c.ViewportRect = [4]int{x, y, width, height}
}

func (c *Context) Enable(f gpu.Feature) {
	c.Features[f] = true
}

func (c *Context) Disable(f gpu.Feature) {
	c.Features[f] = false
}

func (c *Context) CreateTexture() (gpu.Texture, error) {
	tex := gpu.Texture(c.handle())
	c.textures[tex] = true
	return tex, nil
}

func (c *Context) DeleteTexture(tex gpu.Texture) {
	delete(c.textures, tex)
}

func (c *Context) BindTexture(tex gpu.Texture) {
	c.boundTex = tex
}

func (c *Context) AllocateTexture(width, height int, pixels []byte) {}

func (c *Context) CreateFramebuffer() (gpu.Framebuffer, error) {
	fb := gpu.Framebuffer(c.handle())
	c.framebuffers[fb] = true
	return fb, nil
}

func (c *Context) DeleteFramebuffer(fb gpu.Framebuffer) {
	delete(c.framebuffers, fb)
}

func (c *Context) BindFramebuffer(fb gpu.Framebuffer) {
	c.boundFB = fb
}

func (c *Context) AttachColorTexture(tex gpu.Texture) {}
