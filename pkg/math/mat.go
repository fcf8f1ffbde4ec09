package math

// Mat2 is a 2x2 matrix in column-major order.
type Mat2 [4]float32

// Mat3 is a 3x3 matrix in column-major order.
type Mat3 [9]float32

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns a 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Identity3 returns a 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Identity2 returns a 2x2 identity matrix.
func Identity2() Mat2 {
	return Mat2{1, 0, 0, 1}
}

// Floats returns the elements in upload order.
func (m Mat2) Floats() []float32 { return m[:] }

// Floats returns the elements in upload order.
func (m Mat3) Floats() []float32 { return m[:] }

// Floats returns the elements in upload order.
func (m Mat4) Floats() []float32 { return m[:] }

// FlattenMat2 packs matrices back to back for array uploads.
func FlattenMat2(ms []Mat2) []float32 {
	out := make([]float32, 0, len(ms)*4)
	for _, m := range ms {
		out = append(out, m[:]...)
	}
	return out
}

// FlattenMat3 packs matrices back to back for array uploads.
func FlattenMat3(ms []Mat3) []float32 {
	out := make([]float32, 0, len(ms)*9)
	for _, m := range ms {
		out = append(out, m[:]...)
	}
	return out
}

// FlattenMat4 packs matrices back to back for array uploads.
func FlattenMat4(ms []Mat4) []float32 {
	out := make([]float32, 0, len(ms)*16)
	for _, m := range ms {
		out = append(out, m[:]...)
	}
	return out
}
