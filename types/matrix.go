package types

import (
	"math"

	"golang.org/x/image/math/f64"
)

// A 3x3 matrix stored in row-major order.
type Mat3 f64.Mat3

// Create a rotation matrix for a rotation of angle radians about the Y axis.
func RotateY(angle float64) Mat3 {
	sin, cos := math.Sincos(angle)
	return Mat3{
		cos, 0, sin,
		0, 1, 0,
		-sin, 0, cos,
	}
}

// Multiply matrix with a column vector.
func (m Mat3) Mul3x1(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}
