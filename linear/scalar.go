// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D graphics.
//
// Vectors are arrays in x, y, z, w order. Matrices are
// column-major: m[c][r] refers to column c and row r, and
// the columns are laid out contiguously in memory, as
// expected by OpenGL and Vulkan. Matrices multiply column
// vectors on the right, so in l.Mul(r).MulV(v) the
// transform r applies to v first. Quaternions store the
// vector part before the real part (x, y, z, w).
//
// Operations never check for degenerate input. Dividing by
// a zero length or inverting a singular matrix yields Inf
// or NaN components. The Try* variants report these cases
// as errors instead.
package linear

import (
	"errors"
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the constraint satisfied by the scalar type
// of vectors, matrices and quaternions.
type Float interface {
	constraints.Float
}

var (
	// ErrZeroLength is returned when normalizing a vector
	// or quaternion whose length is zero.
	ErrZeroLength = errors.New("linear: zero-length vector")

	// ErrSingular is returned when inverting a matrix whose
	// determinant is (nearly) zero.
	ErrSingular = errors.New("linear: singular matrix")
)

// single reports whether T has single precision.
func single[T Float]() bool {
	var x T
	return unsafe.Sizeof(x) == 4
}

func sqrt[T Float](x T) T {
	if single[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

func sin[T Float](x T) T {
	if single[T]() {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

func cos[T Float](x T) T {
	if single[T]() {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

func tan[T Float](x T) T {
	if single[T]() {
		return T(math32.Tan(float32(x)))
	}
	return T(math.Tan(float64(x)))
}

func acos[T Float](x T) T {
	if single[T]() {
		return T(math32.Acos(float32(x)))
	}
	return T(math.Acos(float64(x)))
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Approx reports whether a and b are within eps of each
// other, either absolutely or relative to the larger
// magnitude.
func Approx[T Float](a, b, eps T) bool {
	if a == b {
		return true
	}
	d := abs(a - b)
	if d <= eps {
		return true
	}
	m := abs(a)
	if n := abs(b); n > m {
		m = n
	}
	return d <= eps*m
}

// Radians converts deg to radians.
func Radians[T Float](deg T) T { return deg * math.Pi / 180 }

// Degrees converts rad to degrees.
func Degrees[T Float](rad T) T { return rad * 180 / math.Pi }
