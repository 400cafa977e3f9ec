package gpu

// Buffer is an opaque handle to a GPU buffer object.
type Buffer uint32

// Shader is an opaque handle to a single compiled shader stage.
type Shader uint32

// Program is an opaque handle to a linked shader program.
type Program uint32

// VertexArray is an opaque handle to a vertex-array object bundling buffer bindings.
type VertexArray uint32

// Texture is an opaque handle to a GPU texture.
type Texture uint32

// Framebuffer is an opaque handle to an off-screen render target.
type Framebuffer uint32

// UniformLocation is an opaque handle to a named uniform on a linked program.
// A negative value never refers to a valid uniform.
type UniformLocation int32

// BufferKind declares the binding point a buffer is used with.
type BufferKind int

const (
	// BufferKindVertex holds per-vertex attribute data (ARRAY_BUFFER).
	BufferKindVertex BufferKind = iota

	// BufferKindIndex holds element indices (ELEMENT_ARRAY_BUFFER).
	BufferKindIndex
)

// String returns a human-readable name for the buffer kind.
func (k BufferKind) String() string {
	switch k {
	case BufferKindVertex:
		return "vertex"
	case BufferKindIndex:
		return "index"
	default:
		return "unknown"
	}
}

// UpdateFrequency hints how often a buffer's contents will be replaced.
type UpdateFrequency int

const (
	// UpdateStatic marks buffer contents that are uploaded once and drawn many times.
	UpdateStatic UpdateFrequency = iota

	// UpdateDynamic marks buffer contents that are re-uploaded frequently (e.g. every frame).
	UpdateDynamic
)

// ComponentType identifies the numeric encoding of one attribute component.
type ComponentType int

const (
	// ComponentFloat32 is a 32-bit IEEE 754 float.
	ComponentFloat32 ComponentType = iota

	// ComponentUint8 is an unsigned 8-bit integer.
	ComponentUint8

	// ComponentUint16 is an unsigned 16-bit integer.
	ComponentUint16

	// ComponentUint32 is an unsigned 32-bit integer.
	ComponentUint32

	// ComponentInt32 is a signed 32-bit integer.
	ComponentInt32
)

// Size returns the width of one component in bytes.
//
// Returns:
//   - int: the component width in bytes (0 for an unknown type)
func (t ComponentType) Size() int {
	switch t {
	case ComponentFloat32, ComponentUint32, ComponentInt32:
		return 4
	case ComponentUint16:
		return 2
	case ComponentUint8:
		return 1
	default:
		return 0
	}
}

// ShaderStage identifies the pipeline stage a shader source compiles against.
type ShaderStage int

const (
	// StageVertex is the vertex processing stage.
	StageVertex ShaderStage = iota

	// StageFragment is the fragment processing stage.
	StageFragment
)

// String returns a human-readable name for the shader stage.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Primitive selects the geometric interpretation of vertex streams for draw calls.
type Primitive int

const (
	// PrimitiveTriangles draws independent triangles from each group of three vertices.
	PrimitiveTriangles Primitive = iota

	// PrimitiveTriangleStrip draws a connected strip of triangles.
	PrimitiveTriangleStrip

	// PrimitiveLines draws independent line segments from each pair of vertices.
	PrimitiveLines

	// PrimitivePoints draws one point per vertex.
	PrimitivePoints
)

// ClearMask selects which framebuffer planes a Clear call resets. Values combine with |.
type ClearMask int

const (
	// ClearColor clears the color plane.
	ClearColor ClearMask = 1 << iota

	// ClearDepth clears the depth plane.
	ClearDepth
)

// Feature is a toggleable fixed-function capability.
type Feature int

const (
	// FeatureDepthTest enables depth-buffered rendering.
	FeatureDepthTest Feature = iota

	// FeatureBlend enables alpha blending.
	FeatureBlend

	// FeatureCullFace enables back-face culling.
	FeatureCullFace
)
