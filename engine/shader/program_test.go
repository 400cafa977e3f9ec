package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/prism-go/engine/gpu"
	"github.com/Carmen-Shannon/prism-go/engine/gpu/gputest"
)

const testVertexSrc = `#version 330 core
in vec3 a_position;
in vec3 a_color;

uniform mat4 u_view_proj;

out vec3 v_color;

void main() {
	v_color = a_color;
	gl_Position = u_view_proj * vec4(a_position, 1.0);
}
`

const testFragmentSrc = `#version 330 core
in vec3 v_color;

uniform float u_alpha;

out vec4 frag_color;

void main() {
	frag_color = vec4(v_color, u_alpha);
}
`

func newTestProgram(t *testing.T, ctx *gputest.Context) Program {
	t.Helper()
	prog, err := NewProgram(ctx, testVertexSrc, testFragmentSrc,
		[]string{"u_view_proj", "u_alpha"},
		[]string{"a_position", "a_color"},
	)
	require.NoError(t, err)
	return prog
}

func TestNewProgramResolvesAllBindings(t *testing.T) {
	ctx := gputest.NewContext()
	prog := newTestProgram(t, ctx)

	for _, name := range []string{"a_position", "a_color"} {
		_, err := prog.FindAttribute(name)
		assert.NoError(t, err, name)
	}
	for _, name := range []string{"u_view_proj", "u_alpha"} {
		_, err := prog.FindUniform(name)
		assert.NoError(t, err, name)
	}

	// Attribute slots are unique per program.
	posSlot, _ := prog.FindAttribute("a_position")
	colorSlot, _ := prog.FindAttribute("a_color")
	assert.NotEqual(t, posSlot, colorSlot)
}

func TestNewProgramReleasesStageObjectsAfterLink(t *testing.T) {
	ctx := gputest.NewContext()
	newTestProgram(t, ctx)

	assert.Equal(t, 1, ctx.LivePrograms())
	assert.Zero(t, ctx.LiveShaders())
}

func TestFindUniformIsStableAcrossLookups(t *testing.T) {
	ctx := gputest.NewContext()
	prog := newTestProgram(t, ctx)

	first, err := prog.FindUniform("u_view_proj")
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		loc, err := prog.FindUniform("u_view_proj")
		require.NoError(t, err)
		require.Equal(t, first, loc)
	}
}

func TestLookupUnregisteredName(t *testing.T) {
	ctx := gputest.NewContext()
	prog := newTestProgram(t, ctx)

	_, err := prog.FindAttribute("a_normal")
	var bindErr *UnknownBindingError
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, "a_normal", bindErr.Name)

	_, err = prog.FindUniform("u_model")
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, "u_model", bindErr.Name)
}

func TestNewProgramCompileFailureReportsStage(t *testing.T) {
	tests := []struct {
		name  string
		stage gpu.ShaderStage
	}{
		{name: "vertex stage", stage: gpu.StageVertex},
		{name: "fragment stage", stage: gpu.StageFragment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := gputest.NewContext()
			ctx.FailCompile[tt.stage] = "0:3: syntax error"

			_, err := NewProgram(ctx, testVertexSrc, testFragmentSrc, nil, nil)
			var compileErr *ShaderCompileError
			require.ErrorAs(t, err, &compileErr)
			assert.Equal(t, tt.stage, compileErr.Stage)
			assert.Contains(t, compileErr.Diagnostic, "syntax error")

			// Nothing dangles after a failed build.
			assert.Zero(t, ctx.LiveShaders())
			assert.Zero(t, ctx.LivePrograms())
		})
	}
}

func TestNewProgramLinkFailure(t *testing.T) {
	ctx := gputest.NewContext()
	ctx.FailLink = "varying v_color not written by vertex stage"

	_, err := NewProgram(ctx, testVertexSrc, testFragmentSrc, nil, nil)
	var linkErr *ShaderLinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Contains(t, linkErr.Diagnostic, "v_color")

	assert.Zero(t, ctx.LiveShaders())
	assert.Zero(t, ctx.LivePrograms())
}

func TestNewProgramUndeclaredBindingFailsConstruction(t *testing.T) {
	ctx := gputest.NewContext()

	_, err := NewProgram(ctx, testVertexSrc, testFragmentSrc,
		[]string{"u_missing"},
		nil,
	)
	var bindErr *UnknownBindingError
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, "u_missing", bindErr.Name)

	assert.Zero(t, ctx.LiveShaders())
	assert.Zero(t, ctx.LivePrograms())
}

func TestActivateAndRelease(t *testing.T) {
	ctx := gputest.NewContext()
	prog := newTestProgram(t, ctx)

	prog.Activate(ctx)
	assert.Equal(t, prog.Handle(), ctx.CurrentProgram())

	prog.Release(ctx)
	assert.Zero(t, ctx.LivePrograms())
}
