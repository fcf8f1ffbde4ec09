package shader

// Driver is the subset of the graphics API a Program talks to.
// All methods must be called on the thread that owns the GL context.
type Driver interface {
	// CreateShader returns 0 when the stage object cannot be created.
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	BindAttribLocation(program, index uint32, name string)
	BindFragDataLocation(program, color uint32, name string)
	TransformFeedbackVaryings(program uint32, varyings []string)

	// GetUniformLocation returns -1 for unknown or inactive uniforms.
	GetUniformLocation(program uint32, name string) int32

	Uniform1f(location int32, v float32)
	Uniform1i(location int32, v int32)
	Uniform1ui(location int32, v uint32)
	Uniform3f(location int32, x, y, z float32)
	Uniform1fv(location int32, v []float32)
	Uniform1iv(location int32, v []int32)
	Uniform1uiv(location int32, v []uint32)
	Uniform2fv(location int32, count int32, v []float32)
	Uniform3fv(location int32, count int32, v []float32)
	Uniform4fv(location int32, count int32, v []float32)
	UniformMatrix2fv(location int32, count int32, v []float32)
	UniformMatrix3fv(location int32, count int32, v []float32)
	UniformMatrix4fv(location int32, count int32, v []float32)
}
