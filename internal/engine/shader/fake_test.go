package shader

import (
	"fmt"
	"strings"
)

// fakeDriver records driver calls. Sources containing "error" fail to
// compile, programs whose attached sources contain "nolink" fail to link.
type fakeDriver struct {
	nextID   uint32
	calls    []string
	sources  map[uint32]string
	attached map[uint32][]uint32
	deleted  map[uint32]bool

	uniforms      map[string]int32
	uniformQuery  int
	attribs       map[string]uint32
	fragOutputs   map[string]uint32
	varyings      []string
	used          uint32
	noProgram     bool
	noStage       map[Stage]bool
	lastUpload    []float32
	lastUploadLoc int32
	lastCount     int32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		sources:     make(map[uint32]string),
		attached:    make(map[uint32][]uint32),
		deleted:     make(map[uint32]bool),
		uniforms:    map[string]int32{"mvp": 0, "color": 3},
		attribs:     make(map[string]uint32),
		fragOutputs: make(map[string]uint32),
		noStage:     map[Stage]bool{Compute: true},
	}
}

func (d *fakeDriver) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDriver) count(prefix string) int {
	n := 0
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (d *fakeDriver) CreateShader(stage Stage) uint32 {
	if d.noStage[stage] {
		return 0
	}
	d.nextID++
	d.record("CreateShader %s", stage)
	return d.nextID
}

func (d *fakeDriver) ShaderSource(shader uint32, source string) { d.sources[shader] = source }
func (d *fakeDriver) CompileShader(shader uint32)               { d.record("CompileShader %d", shader) }

func (d *fakeDriver) ShaderCompiled(shader uint32) bool {
	return !strings.Contains(d.sources[shader], "error")
}

func (d *fakeDriver) ShaderInfoLog(shader uint32) string {
	if strings.Contains(d.sources[shader], "error") {
		return "0:1: syntax error"
	}
	return ""
}

func (d *fakeDriver) DeleteShader(shader uint32) {
	d.deleted[shader] = true
	d.record("DeleteShader %d", shader)
}

func (d *fakeDriver) CreateProgram() uint32 {
	if d.noProgram {
		return 0
	}
	d.nextID++
	d.record("CreateProgram")
	return d.nextID
}

func (d *fakeDriver) AttachShader(program, shader uint32) {
	d.attached[program] = append(d.attached[program], shader)
	d.record("AttachShader %d %d", program, shader)
}

func (d *fakeDriver) LinkProgram(program uint32) { d.record("LinkProgram %d", program) }

func (d *fakeDriver) ProgramLinked(program uint32) bool {
	for _, sh := range d.attached[program] {
		if strings.Contains(d.sources[sh], "nolink") {
			return false
		}
	}
	return true
}

func (d *fakeDriver) ProgramInfoLog(program uint32) string {
	if !d.ProgramLinked(program) {
		return "unresolved symbol"
	}
	return ""
}

func (d *fakeDriver) UseProgram(program uint32) {
	d.used = program
	d.record("UseProgram %d", program)
}

func (d *fakeDriver) DeleteProgram(program uint32) { d.record("DeleteProgram %d", program) }

func (d *fakeDriver) BindAttribLocation(program, index uint32, name string) {
	d.attribs[name] = index
	d.record("BindAttribLocation %d %d %s", program, index, name)
}

func (d *fakeDriver) BindFragDataLocation(program, color uint32, name string) {
	d.fragOutputs[name] = color
	d.record("BindFragDataLocation %d %d %s", program, color, name)
}

func (d *fakeDriver) TransformFeedbackVaryings(program uint32, varyings []string) {
	d.varyings = append([]string(nil), varyings...)
	d.record("TransformFeedbackVaryings %d", program)
}

func (d *fakeDriver) GetUniformLocation(program uint32, name string) int32 {
	d.uniformQuery++
	if loc, ok := d.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDriver) upload(name string, loc int32, count int32, v []float32) {
	d.lastUploadLoc, d.lastCount, d.lastUpload = loc, count, v
	d.record("%s %d", name, loc)
}

func (d *fakeDriver) Uniform1f(loc int32, v float32) { d.upload("Uniform1f", loc, 1, []float32{v}) }
func (d *fakeDriver) Uniform1i(loc int32, v int32) {
	d.upload("Uniform1i", loc, 1, []float32{float32(v)})
}
func (d *fakeDriver) Uniform1ui(loc int32, v uint32) {
	d.upload("Uniform1ui", loc, 1, []float32{float32(v)})
}
func (d *fakeDriver) Uniform3f(loc int32, x, y, z float32) {
	d.upload("Uniform3f", loc, 1, []float32{x, y, z})
}
func (d *fakeDriver) Uniform1fv(loc int32, v []float32) {
	d.upload("Uniform1fv", loc, int32(len(v)), v)
}
func (d *fakeDriver) Uniform1iv(loc int32, v []int32) {
	f := make([]float32, len(v))
	for i := range v {
		f[i] = float32(v[i])
	}
	d.upload("Uniform1iv", loc, int32(len(v)), f)
}
func (d *fakeDriver) Uniform1uiv(loc int32, v []uint32) {
	f := make([]float32, len(v))
	for i := range v {
		f[i] = float32(v[i])
	}
	d.upload("Uniform1uiv", loc, int32(len(v)), f)
}
func (d *fakeDriver) Uniform2fv(loc, count int32, v []float32) { d.upload("Uniform2fv", loc, count, v) }
func (d *fakeDriver) Uniform3fv(loc, count int32, v []float32) { d.upload("Uniform3fv", loc, count, v) }
func (d *fakeDriver) Uniform4fv(loc, count int32, v []float32) { d.upload("Uniform4fv", loc, count, v) }
func (d *fakeDriver) UniformMatrix2fv(loc, count int32, v []float32) {
	d.upload("UniformMatrix2fv", loc, count, v)
}
func (d *fakeDriver) UniformMatrix3fv(loc, count int32, v []float32) {
	d.upload("UniformMatrix3fv", loc, count, v)
}
func (d *fakeDriver) UniformMatrix4fv(loc, count int32, v []float32) {
	d.upload("UniformMatrix4fv", loc, count, v)
}

// memLogger collects logged errors.
type memLogger struct {
	msgs []string
}

func (l *memLogger) LogError(msg string) { l.msgs = append(l.msgs, msg) }
