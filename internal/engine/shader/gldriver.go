package shader

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDriver implements Driver on top of an OpenGL 4.1 core context.
// gl.Init must have succeeded on the current thread before use.
type GLDriver struct{}

var glStages = map[Stage]uint32{
	Vertex:         gl.VERTEX_SHADER,
	Fragment:       gl.FRAGMENT_SHADER,
	Geometry:       gl.GEOMETRY_SHADER,
	TessControl:    gl.TESS_CONTROL_SHADER,
	TessEvaluation: gl.TESS_EVALUATION_SHADER,
	// Compute shaders need GL 4.3, so they have no entry here.
}

func (GLDriver) CreateShader(stage Stage) uint32 {
	kind, ok := glStages[stage]
	if !ok {
		return 0
	}
	return gl.CreateShader(kind)
}

func (GLDriver) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (GLDriver) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (GLDriver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (GLDriver) ShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (GLDriver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (GLDriver) CreateProgram() uint32 { return gl.CreateProgram() }

func (GLDriver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (GLDriver) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (GLDriver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (GLDriver) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetProgramInfoLog(program, logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (GLDriver) UseProgram(program uint32) { gl.UseProgram(program) }

func (GLDriver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (GLDriver) BindAttribLocation(program, index uint32, name string) {
	gl.BindAttribLocation(program, index, gl.Str(name+"\x00"))
}

func (GLDriver) BindFragDataLocation(program, color uint32, name string) {
	gl.BindFragDataLocation(program, color, gl.Str(name+"\x00"))
}

func (GLDriver) TransformFeedbackVaryings(program uint32, varyings []string) {
	if len(varyings) == 0 {
		return
	}
	terminated := make([]string, len(varyings))
	for i, v := range varyings {
		terminated[i] = v + "\x00"
	}
	cvaryings, free := gl.Strs(terminated...)
	defer free()
	gl.TransformFeedbackVaryings(program, int32(len(varyings)), cvaryings, gl.SEPARATE_ATTRIBS)
}

func (GLDriver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (GLDriver) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (GLDriver) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (GLDriver) Uniform1ui(location int32, v uint32) { gl.Uniform1ui(location, v) }

func (GLDriver) Uniform3f(location int32, x, y, z float32) { gl.Uniform3f(location, x, y, z) }

func (GLDriver) Uniform1fv(location int32, v []float32) {
	if len(v) > 0 {
		gl.Uniform1fv(location, int32(len(v)), &v[0])
	}
}

func (GLDriver) Uniform1iv(location int32, v []int32) {
	if len(v) > 0 {
		gl.Uniform1iv(location, int32(len(v)), &v[0])
	}
}

func (GLDriver) Uniform1uiv(location int32, v []uint32) {
	if len(v) > 0 {
		gl.Uniform1uiv(location, int32(len(v)), &v[0])
	}
}

func (GLDriver) Uniform2fv(location int32, count int32, v []float32) {
	if count > 0 && len(v) > 0 {
		gl.Uniform2fv(location, count, &v[0])
	}
}

func (GLDriver) Uniform3fv(location int32, count int32, v []float32) {
	if count > 0 && len(v) > 0 {
		gl.Uniform3fv(location, count, &v[0])
	}
}

func (GLDriver) Uniform4fv(location int32, count int32, v []float32) {
	if count > 0 && len(v) > 0 {
		gl.Uniform4fv(location, count, &v[0])
	}
}

// Matrices are uploaded column-major, so transpose is always false.

func (GLDriver) UniformMatrix2fv(location int32, count int32, v []float32) {
	if count > 0 && len(v) > 0 {
		gl.UniformMatrix2fv(location, count, false, &v[0])
	}
}

func (GLDriver) UniformMatrix3fv(location int32, count int32, v []float32) {
	if count > 0 && len(v) > 0 {
		gl.UniformMatrix3fv(location, count, false, &v[0])
	}
}

func (GLDriver) UniformMatrix4fv(location int32, count int32, v []float32) {
	if count > 0 && len(v) > 0 {
		gl.UniformMatrix4fv(location, count, false, &v[0])
	}
}
