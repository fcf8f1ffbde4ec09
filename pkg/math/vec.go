// Package math provides the vector and matrix value types uploaded as shader uniforms.
package math

// Vec2 is a 2-component float vector (GLSL vec2).
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3-component float vector (GLSL vec3).
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4-component float vector (GLSL vec4).
type Vec4 struct {
	X, Y, Z, W float32
}

// Floats returns the components in GLSL order.
func (v Vec2) Floats() []float32 { return []float32{v.X, v.Y} }

// Floats returns the components in GLSL order.
func (v Vec3) Floats() []float32 { return []float32{v.X, v.Y, v.Z} }

// Floats returns the components in GLSL order.
func (v Vec4) Floats() []float32 { return []float32{v.X, v.Y, v.Z, v.W} }

// FlattenVec3 packs vectors back to back for array uploads.
func FlattenVec3(vs []Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

// FlattenVec4 packs vectors back to back for array uploads.
func FlattenVec4(vs []Vec4) []float32 {
	out := make([]float32, 0, len(vs)*4)
	for _, v := range vs {
		out = append(out, v.X, v.Y, v.Z, v.W)
	}
	return out
}
