// package gpu defines the capability interface the rendering core consumes,
// along with a desktop OpenGL 3.3 core implementation. Higher layers (shader,
// buffer, scene) talk exclusively to the Context interface so tests can swap
// in a recording backend.
package gpu

// Context is the GPU capability interface. All operations are issued on the
// single UI/render thread; implementations are not required to be safe for
// concurrent use.
type Context interface {
	// CreateBuffer allocates a new GPU buffer object.
	//
	// Returns:
	//   - Buffer: the new buffer handle
	//   - error: error if the backend could not allocate a buffer
	CreateBuffer() (Buffer, error)

	// DeleteBuffer releases a GPU buffer object.
	//
	// Parameters:
	//   - buf: the buffer handle to release
	DeleteBuffer(buf Buffer)

	// BindBuffer makes buf the current buffer for the given binding point.
	//
	// Parameters:
	//   - kind: the binding point (vertex or index)
	//   - buf: the buffer handle to bind
	BindBuffer(kind BufferKind, buf Buffer)

	// BufferData replaces the full contents of the buffer currently bound to kind.
	//
	// Parameters:
	//   - kind: the binding point whose bound buffer receives the data
	//   - data: the raw bytes to upload (may be empty)
	//   - freq: update-frequency hint for the backend's allocation strategy
	BufferData(kind BufferKind, data []byte, freq UpdateFrequency)

	// CreateShader allocates a shader object for the given stage.
	//
	// Parameters:
	//   - stage: the pipeline stage the shader compiles against
	//
	// Returns:
	//   - Shader: the new shader handle
	//   - error: error if the backend could not allocate a shader object
	CreateShader(stage ShaderStage) (Shader, error)

	// ShaderSource sets the source text of a shader object.
	//
	// Parameters:
	//   - sh: the shader handle
	//   - source: the shader source text
	ShaderSource(sh Shader, source string)

	// CompileShader compiles a shader object.
	//
	// Parameters:
	//   - sh: the shader handle to compile
	//
	// Returns:
	//   - error: error carrying the backend's diagnostic text on compile failure
	CompileShader(sh Shader) error

	// DeleteShader releases a shader object.
	//
	// Parameters:
	//   - sh: the shader handle to release
	DeleteShader(sh Shader)

	// CreateProgram allocates an empty program object.
	//
	// Returns:
	//   - Program: the new program handle
	//   - error: error if the backend could not allocate a program object
	CreateProgram() (Program, error)

	// AttachShader attaches a compiled shader stage to a program.
	//
	// Parameters:
	//   - prog: the program handle
	//   - sh: the compiled shader handle to attach
	AttachShader(prog Program, sh Shader)

	// LinkProgram links the attached stages of a program.
	//
	// Parameters:
	//   - prog: the program handle to link
	//
	// Returns:
	//   - error: error carrying the backend's diagnostic text on link failure
	LinkProgram(prog Program) error

	// DeleteProgram releases a program object.
	//
	// Parameters:
	//   - prog: the program handle to release
	DeleteProgram(prog Program)

	// UseProgram makes prog the current program for subsequent draw calls.
	//
	// Parameters:
	//   - prog: the program handle to activate
	UseProgram(prog Program)

	// AttribLocation resolves a named vertex attribute on a linked program.
	//
	// Parameters:
	//   - prog: the linked program handle
	//   - name: the attribute name as declared in the shader source
	//
	// Returns:
	//   - uint32: the attribute slot index
	//   - bool: false if the program declares no active attribute with that name
	AttribLocation(prog Program, name string) (uint32, bool)

	// UniformLocation resolves a named uniform on a linked program.
	//
	// Parameters:
	//   - prog: the linked program handle
	//   - name: the uniform name as declared in the shader source
	//
	// Returns:
	//   - UniformLocation: the uniform location handle
	//   - bool: false if the program declares no active uniform with that name
	UniformLocation(prog Program, name string) (UniformLocation, bool)

	// VertexAttribPointer configures an attribute slot to read componentCount
	// values of componentType from the buffer currently bound to the vertex
	// binding point, starting at offset bytes into each stride-sized record.
	//
	// Parameters:
	//   - slot: the attribute slot index
	//   - componentCount: number of components per vertex (1-4)
	//   - componentType: numeric encoding of each component
	//   - normalized: whether integer values are normalized to [0,1]/[-1,1]
	//   - stride: byte distance between consecutive records
	//   - offset: byte offset of the first component within a record
	VertexAttribPointer(slot uint32, componentCount int, componentType ComponentType, normalized bool, stride, offset int)

	// EnableVertexAttrib enables an attribute slot for drawing.
	//
	// Parameters:
	//   - slot: the attribute slot index to enable
	EnableVertexAttrib(slot uint32)

	// VertexAttribDivisor sets the instance divisor for an attribute slot.
	// A divisor of 1 advances the attribute once per instance instead of per vertex.
	//
	// Parameters:
	//   - slot: the attribute slot index
	//   - divisor: the instance divisor (0 = per vertex)
	VertexAttribDivisor(slot uint32, divisor uint32)

	// CreateVertexArray allocates a vertex-array object.
	//
	// Returns:
	//   - VertexArray: the new vertex-array handle
	//   - error: error if the backend could not allocate a vertex array
	CreateVertexArray() (VertexArray, error)

	// BindVertexArray makes va the current vertex array.
	//
	// Parameters:
	//   - va: the vertex-array handle to bind
	BindVertexArray(va VertexArray)

	// DeleteVertexArray releases a vertex-array object.
	//
	// Parameters:
	//   - va: the vertex-array handle to release
	DeleteVertexArray(va VertexArray)

	// Uniform1f sets a scalar float uniform on the current program.
	Uniform1f(loc UniformLocation, v float32)

	// Uniform1i sets a scalar integer uniform on the current program.
	Uniform1i(loc UniformLocation, v int32)

	// Uniform2f sets a vec2 uniform on the current program.
	Uniform2f(loc UniformLocation, x, y float32)

	// Uniform3f sets a vec3 uniform on the current program.
	Uniform3f(loc UniformLocation, x, y, z float32)

	// Uniform4f sets a vec4 uniform on the current program.
	Uniform4f(loc UniformLocation, x, y, z, w float32)

	// UniformMatrix4fv sets a 4x4 matrix uniform (column-major, 16 elements)
	// on the current program.
	//
	// Parameters:
	//   - loc: the uniform location handle
	//   - value: the matrix values, column-major, at least 16 elements
	UniformMatrix4fv(loc UniformLocation, value []float32)

	// DrawArrays draws count vertices starting at first from the active vertex array.
	//
	// Parameters:
	//   - mode: the primitive interpretation
	//   - first: index of the first vertex
	//   - count: number of vertices to draw
	DrawArrays(mode Primitive, first, count int)

	// DrawElements draws count indices of indexType from the bound index buffer.
	//
	// Parameters:
	//   - mode: the primitive interpretation
	//   - count: number of indices to draw
	//   - indexType: numeric encoding of each index (u8, u16 or u32)
	//   - offset: byte offset into the index buffer
	DrawElements(mode Primitive, count int, indexType ComponentType, offset int)

	// DrawElementsInstanced draws count indices instanceCount times.
	//
	// Parameters:
	//   - mode: the primitive interpretation
	//   - count: number of indices per instance
	//   - indexType: numeric encoding of each index (u8, u16 or u32)
	//   - offset: byte offset into the index buffer
	//   - instanceCount: number of instances to draw
	DrawElementsInstanced(mode Primitive, count int, indexType ComponentType, offset, instanceCount int)

	// ClearColor sets the color used by Clear for the color plane.
	ClearColor(r, g, b, a float32)

	// Clear resets the selected framebuffer planes.
	//
	// Parameters:
	//   - mask: bitwise OR of ClearColor and/or ClearDepth
	Clear(mask ClearMask)

	// Viewport sets the pixel rectangle rendering maps onto.
	//
	// Parameters:
	//   - x, y: lower-left corner in pixels
	//   - width, height: rectangle size in pixels
	Viewport(x, y, width, height int)

	// Enable turns on a fixed-function capability.
	Enable(f Feature)

	// Disable turns off a fixed-function capability.
	Disable(f Feature)

	// CreateTexture allocates a GPU texture object.
	//
	// Returns:
	//   - Texture: the new texture handle
	//   - error: error if the backend could not allocate a texture
	CreateTexture() (Texture, error)

	// DeleteTexture releases a GPU texture object.
	DeleteTexture(tex Texture)

	// BindTexture makes tex the current 2D texture.
	BindTexture(tex Texture)

	// AllocateTexture sizes the currently bound 2D texture as an RGBA8 target
	// with nearest filtering and edge clamping, suitable for use as a color
	// attachment.
	//
	// Parameters:
	//   - width, height: texture size in pixels
	//   - pixels: initial pixel data (RGBA, 4 bytes per pixel), or nil
	AllocateTexture(width, height int, pixels []byte)

	// CreateFramebuffer allocates an off-screen render target.
	//
	// Returns:
	//   - Framebuffer: the new framebuffer handle
	//   - error: error if the backend could not allocate a framebuffer
	CreateFramebuffer() (Framebuffer, error)

	// DeleteFramebuffer releases an off-screen render target.
	DeleteFramebuffer(fb Framebuffer)

	// BindFramebuffer makes fb the current render target. Binding handle 0
	// restores the default (on-screen) framebuffer.
	BindFramebuffer(fb Framebuffer)

	// AttachColorTexture attaches tex as the color attachment of the currently
	// bound framebuffer.
	AttachColorTexture(tex Texture)
}
