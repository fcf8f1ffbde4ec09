package shader

import (
	"testing"

	"github.com/Faultbox/shaderkit/pkg/math"
)

func newLinkedProgram(t *testing.T) (*Program, *fakeDriver) {
	t.Helper()
	p, d, _ := newTestProgram()
	p.SetVertexShader("shaders/basic.vert")
	p.SetFragmentShader("shaders/basic.frag")
	if err := p.Initialize(nil, nil, false); err != nil {
		t.Fatal(err)
	}
	return p, d
}

func TestUniformDescriptor(t *testing.T) {
	p, _ := newLinkedProgram(t)

	u := NewUniform("color")
	if u.Found() || u.Location() != -1 {
		t.Errorf("unresolved uniform: found=%v loc=%d", u.Found(), u.Location())
	}

	if !p.ResolveUniform(u) {
		t.Fatal("expected color to resolve")
	}
	if u.Location() != 3 {
		t.Errorf("Location() = %d, want 3", u.Location())
	}

	missing := p.Uniform("missing")
	if missing.Found() || missing.Location() != -1 {
		t.Errorf("missing uniform: found=%v loc=%d", missing.Found(), missing.Location())
	}

	var zero Uniform
	if zero.Location() != -1 {
		t.Errorf("zero Uniform location = %d, want -1", zero.Location())
	}
}

func TestScalarSetters(t *testing.T) {
	p, d := newLinkedProgram(t)
	u := p.Uniform("color")

	tests := []struct {
		name string
		set  func()
		call string
		want []float32
	}{
		{"float", func() { p.SetFloat(u, 0.5) }, "Uniform1f 3", []float32{0.5}},
		{"int", func() { p.SetInt(u, -7) }, "Uniform1i 3", []float32{-7}},
		{"uint", func() { p.SetUint(u, 9) }, "Uniform1ui 3", []float32{9}},
		{"bool true", func() { p.SetBool(u, true) }, "Uniform1i 3", []float32{1}},
		{"bool false", func() { p.SetBool(u, false) }, "Uniform1i 3", []float32{0}},
		{"vec3f", func() { p.SetVec3f(u, 1, 2, 3) }, "Uniform3f 3", []float32{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set()
			if last := d.calls[len(d.calls)-1]; last != tt.call {
				t.Errorf("last call = %q, want %q", last, tt.call)
			}
			assertFloats(t, d.lastUpload, tt.want)
		})
	}
}

func TestVectorAndMatrixSetters(t *testing.T) {
	p, d := newLinkedProgram(t)
	u := p.Uniform("mvp")

	tests := []struct {
		name  string
		set   func()
		call  string
		count int32
		size  int
	}{
		{"vec2", func() { p.SetVec2(u, math.Vec2{X: 1, Y: 2}) }, "Uniform2fv 0", 1, 2},
		{"vec3", func() { p.SetVec3(u, math.Vec3{X: 1, Y: 2, Z: 3}) }, "Uniform3fv 0", 1, 3},
		{"vec4", func() { p.SetVec4(u, math.Vec4{W: 1}) }, "Uniform4fv 0", 1, 4},
		{"mat2", func() { p.SetMat2(u, math.Identity2()) }, "UniformMatrix2fv 0", 1, 4},
		{"mat3", func() { p.SetMat3(u, math.Identity3()) }, "UniformMatrix3fv 0", 1, 9},
		{"mat4", func() { p.SetMat4(u, math.Identity()) }, "UniformMatrix4fv 0", 1, 16},
		{"vec3 array", func() { p.SetVec3Array(u, make([]math.Vec3, 4)) }, "Uniform3fv 0", 4, 12},
		{"vec4 array", func() { p.SetVec4Array(u, make([]math.Vec4, 2)) }, "Uniform4fv 0", 2, 8},
		{"mat2 array", func() { p.SetMat2Array(u, make([]math.Mat2, 3)) }, "UniformMatrix2fv 0", 3, 12},
		{"mat3 array", func() { p.SetMat3Array(u, make([]math.Mat3, 2)) }, "UniformMatrix3fv 0", 2, 18},
		{"mat4 array", func() { p.SetMat4Array(u, make([]math.Mat4, 2)) }, "UniformMatrix4fv 0", 2, 32},
		{"floats", func() { p.SetFloats(u, []float32{1, 2, 3}) }, "Uniform1fv 0", 3, 3},
		{"ints", func() { p.SetInts(u, []int32{1, 2}) }, "Uniform1iv 0", 2, 2},
		{"uints", func() { p.SetUints(u, []uint32{1, 2, 3, 4}) }, "Uniform1uiv 0", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set()
			if last := d.calls[len(d.calls)-1]; last != tt.call {
				t.Errorf("last call = %q, want %q", last, tt.call)
			}
			if d.lastCount != tt.count {
				t.Errorf("count = %d, want %d", d.lastCount, tt.count)
			}
			if len(d.lastUpload) != tt.size {
				t.Errorf("uploaded %d floats, want %d", len(d.lastUpload), tt.size)
			}
		})
	}
}

func TestSetterOnMissingUniform(t *testing.T) {
	p, d := newLinkedProgram(t)

	p.SetFloat(p.Uniform("missing"), 1)

	if d.lastUploadLoc != -1 {
		t.Errorf("upload location = %d, want -1", d.lastUploadLoc)
	}
}

func assertFloats(t *testing.T, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}
