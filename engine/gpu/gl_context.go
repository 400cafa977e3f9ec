package gpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// glContext implements Context over a desktop OpenGL 3.3 core profile context.
// The calling goroutine must hold the thread the GL context is current on.
type glContext struct{}

var _ Context = &glContext{}

// NewContext initializes the OpenGL function pointers and returns a Context
// backed by the calling thread's current GL context. The window must have made
// its context current before this is called.
//
// Returns:
//   - Context: the OpenGL-backed context
//   - error: error if the OpenGL bindings could not be initialized
func NewContext() (Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gpu: failed to initialize OpenGL bindings: %w", err)
	}
	return &glContext{}, nil
}

func (c *glContext) CreateBuffer() (Buffer, error) {
	var handle uint32
	gl.GenBuffers(1, &handle)
	if handle == 0 {
		return 0, fmt.Errorf("gpu: glGenBuffers returned no buffer")
	}
	return Buffer(handle), nil
}

func (c *glContext) DeleteBuffer(buf Buffer) {
	handle := uint32(buf)
	gl.DeleteBuffers(1, &handle)
}

func (c *glContext) BindBuffer(kind BufferKind, buf Buffer) {
	gl.BindBuffer(bufferTarget(kind), uint32(buf))
}

func (c *glContext) BufferData(kind BufferKind, data []byte, freq UpdateFrequency) {
	usage := uint32(gl.STATIC_DRAW)
	if freq == UpdateDynamic {
		usage = gl.DYNAMIC_DRAW
	}
	if len(data) == 0 {
		gl.BufferData(bufferTarget(kind), 0, nil, usage)
		return
	}
	gl.BufferData(bufferTarget(kind), len(data), gl.Ptr(data), usage)
}

func (c *glContext) CreateShader(stage ShaderStage) (Shader, error) {
	var glStage uint32
	switch stage {
	case StageVertex:
		glStage = gl.VERTEX_SHADER
	case StageFragment:
		glStage = gl.FRAGMENT_SHADER
	default:
		return 0, fmt.Errorf("gpu: unsupported shader stage %d", stage)
	}
	handle := gl.CreateShader(glStage)
	if handle == 0 {
		return 0, fmt.Errorf("gpu: glCreateShader returned no shader object")
	}
	return Shader(handle), nil
}

func (c *glContext) ShaderSource(sh Shader, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(sh), 1, csources, nil)
	free()
}

func (c *glContext) CompileShader(sh Shader) error {
	gl.CompileShader(uint32(sh))

	var status int32
	gl.GetShaderiv(uint32(sh), gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(uint32(sh), gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(uint32(sh), logLength, nil, gl.Str(infoLog))
		return fmt.Errorf("%s", strings.TrimRight(infoLog, "\x00"))
	}
	return nil
}

func (c *glContext) DeleteShader(sh Shader) {
	gl.DeleteShader(uint32(sh))
}

func (c *glContext) CreateProgram() (Program, error) {
	handle := gl.CreateProgram()
	if handle == 0 {
		return 0, fmt.Errorf("gpu: glCreateProgram returned no program object")
	}
	return Program(handle), nil
}

func (c *glContext) AttachShader(prog Program, sh Shader) {
	gl.AttachShader(uint32(prog), uint32(sh))
}

func (c *glContext) LinkProgram(prog Program) error {
	gl.LinkProgram(uint32(prog))

	var status int32
	gl.GetProgramiv(uint32(prog), gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(uint32(prog), gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(uint32(prog), logLength, nil, gl.Str(infoLog))
		return fmt.Errorf("%s", strings.TrimRight(infoLog, "\x00"))
	}
	return nil
}

func (c *glContext) DeleteProgram(prog Program) {
	gl.DeleteProgram(uint32(prog))
}

func (c *glContext) UseProgram(prog Program) {
	gl.UseProgram(uint32(prog))
}

func (c *glContext) AttribLocation(prog Program, name string) (uint32, bool) {
	loc := gl.GetAttribLocation(uint32(prog), gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}

func (c *glContext) UniformLocation(prog Program, name string) (UniformLocation, bool) {
	loc := gl.GetUniformLocation(uint32(prog), gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, false
	}
	return UniformLocation(loc), true
}

func (c *glContext) VertexAttribPointer(slot uint32, componentCount int, componentType ComponentType, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(slot, int32(componentCount), componentGLType(componentType), normalized, int32(stride), uintptr(offset))
}

func (c *glContext) EnableVertexAttrib(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

func (c *glContext) VertexAttribDivisor(slot uint32, divisor uint32) {
	gl.VertexAttribDivisor(slot, divisor)
}

func (c *glContext) CreateVertexArray() (VertexArray, error) {
	var handle uint32
	gl.GenVertexArrays(1, &handle)
	if handle == 0 {
		return 0, fmt.Errorf("gpu: glGenVertexArrays returned no vertex array")
	}
	return VertexArray(handle), nil
}

func (c *glContext) BindVertexArray(va VertexArray) {
	gl.BindVertexArray(uint32(va))
}

func (c *glContext) DeleteVertexArray(va VertexArray) {
	handle := uint32(va)
	gl.DeleteVertexArrays(1, &handle)
}

func (c *glContext) Uniform1f(loc UniformLocation, v float32) {
	gl.Uniform1f(int32(loc), v)
}

func (c *glContext) Uniform1i(loc UniformLocation, v int32) {
	gl.Uniform1i(int32(loc), v)
}

func (c *glContext) Uniform2f(loc UniformLocation, x, y float32) {
	gl.Uniform2f(int32(loc), x, y)
}

func (c *glContext) Uniform3f(loc UniformLocation, x, y, z float32) {
	gl.Uniform3f(int32(loc), x, y, z)
}

func (c *glContext) Uniform4f(loc UniformLocation, x, y, z, w float32) {
	gl.Uniform4f(int32(loc), x, y, z, w)
}

func (c *glContext) UniformMatrix4fv(loc UniformLocation, value []float32) {
	gl.UniformMatrix4fv(int32(loc), 1, false, &value[0])
}

func (c *glContext) DrawArrays(mode Primitive, first, count int) {
	gl.DrawArrays(primitiveGLMode(mode), int32(first), int32(count))
}

func (c *glContext) DrawElements(mode Primitive, count int, indexType ComponentType, offset int) {
	gl.DrawElementsWithOffset(primitiveGLMode(mode), int32(count), componentGLType(indexType), uintptr(offset))
}

func (c *glContext) DrawElementsInstanced(mode Primitive, count int, indexType ComponentType, offset, instanceCount int) {
	gl.DrawElementsInstanced(primitiveGLMode(mode), int32(count), componentGLType(indexType), gl.PtrOffset(offset), int32(instanceCount))
}

func (c *glContext) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *glContext) Clear(mask ClearMask) {
	var bits uint32
	if mask&ClearColor != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&ClearDepth != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (c *glContext) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (c *glContext) Enable(f Feature) {
	gl.Enable(featureGLCap(f))
}

func (c *glContext) Disable(f Feature) {
	gl.Disable(featureGLCap(f))
}

func (c *glContext) CreateTexture() (Texture, error) {
	var handle uint32
	gl.GenTextures(1, &handle)
	if handle == 0 {
		return 0, fmt.Errorf("gpu: glGenTextures returned no texture")
	}
	return Texture(handle), nil
}

func (c *glContext) DeleteTexture(tex Texture) {
	handle := uint32(tex)
	gl.DeleteTextures(1, &handle)
}

func (c *glContext) BindTexture(tex Texture) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
}

func (c *glContext) AllocateTexture(width, height int, pixels []byte) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	if len(pixels) > 0 {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}
}

func (c *glContext) CreateFramebuffer() (Framebuffer, error) {
	var handle uint32
	gl.GenFramebuffers(1, &handle)
	if handle == 0 {
		return 0, fmt.Errorf("gpu: glGenFramebuffers returned no framebuffer")
	}
	return Framebuffer(handle), nil
}

func (c *glContext) DeleteFramebuffer(fb Framebuffer) {
	handle := uint32(fb)
	gl.DeleteFramebuffers(1, &handle)
}

func (c *glContext) BindFramebuffer(fb Framebuffer) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(fb))
}

func (c *glContext) AttachColorTexture(tex Texture) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, uint32(tex), 0)
}

// bufferTarget maps a BufferKind to its GL binding target.
func bufferTarget(kind BufferKind) uint32 {
	if kind == BufferKindIndex {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

// componentGLType maps a ComponentType to its GL enum.
func componentGLType(t ComponentType) uint32 {
	switch t {
	case ComponentUint8:
		return gl.UNSIGNED_BYTE
	case ComponentUint16:
		return gl.UNSIGNED_SHORT
	case ComponentUint32:
		return gl.UNSIGNED_INT
	case ComponentInt32:
		return gl.INT
	default:
		return gl.FLOAT
	}
}

// primitiveGLMode maps a Primitive to its GL draw mode.
func primitiveGLMode(mode Primitive) uint32 {
	switch mode {
	case PrimitiveTriangleStrip:
		return gl.TRIANGLE_STRIP
	case PrimitiveLines:
		return gl.LINES
	case PrimitivePoints:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

// featureGLCap maps a Feature to its GL capability enum.
func featureGLCap(f Feature) uint32 {
	switch f {
	case FeatureBlend:
		return gl.BLEND
	case FeatureCullFace:
		return gl.CULL_FACE
	default:
		return gl.DEPTH_TEST
	}
}
