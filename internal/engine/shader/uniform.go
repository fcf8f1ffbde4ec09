package shader

import "github.com/Faultbox/shaderkit/pkg/math"

// Uniform is a caller-owned handle to a uniform variable. It caches the
// location resolved against one program. The zero value is unresolved and
// uploads through it are ignored by the driver.
type Uniform struct {
	Name     string
	location int32
	found    bool
}

// NewUniform returns an unresolved descriptor for name.
func NewUniform(name string) *Uniform {
	return &Uniform{Name: name}
}

// Location returns the cached location, or -1 if the uniform was not found.
func (u *Uniform) Location() int32 {
	if !u.found {
		return -1
	}
	return u.location
}

// Found reports whether the last resolve located the uniform.
func (u *Uniform) Found() bool { return u.found }

// ResolveUniform looks up u's location in the program and stores it in u.
func (p *Program) ResolveUniform(u *Uniform) bool {
	u.location, u.found = p.UniformLocation(u.Name)
	return u.found
}

// Uniform returns a descriptor for name already resolved against p.
func (p *Program) Uniform(name string) *Uniform {
	u := NewUniform(name)
	p.ResolveUniform(u)
	return u
}

// Setters below do not check the value against the uniform's declared type.

func (p *Program) SetFloat(u *Uniform, v float32) {
	p.driver.Uniform1f(u.Location(), v)
}

func (p *Program) SetInt(u *Uniform, v int32) {
	p.driver.Uniform1i(u.Location(), v)
}

func (p *Program) SetUint(u *Uniform, v uint32) {
	p.driver.Uniform1ui(u.Location(), v)
}

// SetBool uploads v as an int, the way GLSL bool uniforms are set.
func (p *Program) SetBool(u *Uniform, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.driver.Uniform1i(u.Location(), i)
}

func (p *Program) SetVec3f(u *Uniform, x, y, z float32) {
	p.driver.Uniform3f(u.Location(), x, y, z)
}

func (p *Program) SetVec2(u *Uniform, v math.Vec2) {
	p.driver.Uniform2fv(u.Location(), 1, v.Floats())
}

func (p *Program) SetVec3(u *Uniform, v math.Vec3) {
	p.driver.Uniform3fv(u.Location(), 1, v.Floats())
}

func (p *Program) SetVec4(u *Uniform, v math.Vec4) {
	p.driver.Uniform4fv(u.Location(), 1, v.Floats())
}

func (p *Program) SetMat2(u *Uniform, m math.Mat2) {
	p.driver.UniformMatrix2fv(u.Location(), 1, m.Floats())
}

func (p *Program) SetMat3(u *Uniform, m math.Mat3) {
	p.driver.UniformMatrix3fv(u.Location(), 1, m.Floats())
}

func (p *Program) SetMat4(u *Uniform, m math.Mat4) {
	p.driver.UniformMatrix4fv(u.Location(), 1, m.Floats())
}

// Array variants upload len(vs) consecutive elements starting at u.

func (p *Program) SetVec3Array(u *Uniform, vs []math.Vec3) {
	p.driver.Uniform3fv(u.Location(), int32(len(vs)), math.FlattenVec3(vs))
}

func (p *Program) SetVec4Array(u *Uniform, vs []math.Vec4) {
	p.driver.Uniform4fv(u.Location(), int32(len(vs)), math.FlattenVec4(vs))
}

func (p *Program) SetMat2Array(u *Uniform, ms []math.Mat2) {
	p.driver.UniformMatrix2fv(u.Location(), int32(len(ms)), math.FlattenMat2(ms))
}

func (p *Program) SetMat3Array(u *Uniform, ms []math.Mat3) {
	p.driver.UniformMatrix3fv(u.Location(), int32(len(ms)), math.FlattenMat3(ms))
}

func (p *Program) SetMat4Array(u *Uniform, ms []math.Mat4) {
	p.driver.UniformMatrix4fv(u.Location(), int32(len(ms)), math.FlattenMat4(ms))
}

// SetFloats uploads a float[] uniform.
func (p *Program) SetFloats(u *Uniform, v []float32) {
	p.driver.Uniform1fv(u.Location(), v)
}

// SetInts uploads an int[] uniform.
func (p *Program) SetInts(u *Uniform, v []int32) {
	p.driver.Uniform1iv(u.Location(), v)
}

// SetUints uploads a uint[] uniform.
func (p *Program) SetUints(u *Uniform, v []uint32) {
	p.driver.Uniform1uiv(u.Location(), v)
}
