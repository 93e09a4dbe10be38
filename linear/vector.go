// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import "fmt"

// V2 is a 2-component vector.
type V2[T Float] [2]T

// V3 is a 3-component vector.
type V3[T Float] [3]T

// V4 is a 4-component vector.
type V4[T Float] [4]T

// X returns v[0].
func (v V2[T]) X() T { return v[0] }

// Y returns v[1].
func (v V2[T]) Y() T { return v[1] }

// Add returns v + w.
func (v V2[T]) Add(w V2[T]) (u V2[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// Sub returns v - w.
func (v V2[T]) Sub(w V2[T]) (u V2[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// AddS returns v with s added to every component.
func (v V2[T]) AddS(s T) (u V2[T]) {
	for i := range u {
		u[i] = v[i] + s
	}
	return
}

// SubS returns v with s subtracted from every component.
func (v V2[T]) SubS(s T) (u V2[T]) {
	for i := range u {
		u[i] = v[i] - s
	}
	return
}

// Neg returns -v.
func (v V2[T]) Neg() (u V2[T]) {
	for i := range u {
		u[i] = -v[i]
	}
	return
}

// Scale returns s ⋅ v.
func (v V2[T]) Scale(s T) (u V2[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// Div returns v / s.
// A zero s produces Inf or NaN components.
func (v V2[T]) Div(s T) (u V2[T]) {
	for i := range u {
		u[i] = v[i] / s
	}
	return
}

// Mul returns the component-wise product of v and w.
func (v V2[T]) Mul(w V2[T]) (u V2[T]) {
	for i := range u {
		u[i] = v[i] * w[i]
	}
	return
}

// Dot returns v ⋅ w.
func (v V2[T]) Dot(w V2[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Cross returns the z component of the cross product
// of v and w extended to three dimensions.
func (v V2[T]) Cross(w V2[T]) T { return v[0]*w[1] - v[1]*w[0] }

// Len2 returns the squared length of v.
func (v V2[T]) Len2() T { return v.Dot(v) }

// Len returns the length of v.
func (v V2[T]) Len() T { return sqrt(v.Dot(v)) }

// Dist returns the distance between v and w.
func (v V2[T]) Dist(w V2[T]) T { return v.Sub(w).Len() }

// Norm returns v normalized.
// The result is undefined if v has zero length.
func (v V2[T]) Norm() V2[T] { return v.Scale(1 / v.Len()) }

// TryNorm is like Norm but fails with ErrZeroLength
// when v has zero length.
func (v V2[T]) TryNorm() (V2[T], error) {
	if v.Len2() == 0 {
		return v, ErrZeroLength
	}
	return v.Norm(), nil
}

// Lerp interpolates linearly between v and w.
func (v V2[T]) Lerp(w V2[T], t T) (u V2[T]) {
	for i := range u {
		u[i] = v[i] + t*(w[i]-v[i])
	}
	return
}

// Approx reports whether every component of v is within
// eps of the corresponding component of w.
func (v V2[T]) Approx(w V2[T], eps T) bool {
	for i := range v {
		if !Approx(v[i], w[i], eps) {
			return false
		}
	}
	return true
}

// V3 returns v extended with z.
func (v V2[T]) V3(z T) V3[T] { return V3[T]{v[0], v[1], z} }

func (v V2[T]) String() string { return fmt.Sprintf("(%v, %v)", v[0], v[1]) }

// X returns v[0].
func (v V3[T]) X() T { return v[0] }

// Y returns v[1].
func (v V3[T]) Y() T { return v[1] }

// Z returns v[2].
func (v V3[T]) Z() T { return v[2] }

// Add returns v + w.
func (v V3[T]) Add(w V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// Sub returns v - w.
func (v V3[T]) Sub(w V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// AddS returns v with s added to every component.
func (v V3[T]) AddS(s T) (u V3[T]) {
	for i := range u {
		u[i] = v[i] + s
	}
	return
}

// SubS returns v with s subtracted from every component.
func (v V3[T]) SubS(s T) (u V3[T]) {
	for i := range u {
		u[i] = v[i] - s
	}
	return
}

// Neg returns -v.
func (v V3[T]) Neg() (u V3[T]) {
	for i := range u {
		u[i] = -v[i]
	}
	return
}

// Scale returns s ⋅ v.
func (v V3[T]) Scale(s T) (u V3[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// Div returns v / s.
// A zero s produces Inf or NaN components.
func (v V3[T]) Div(s T) (u V3[T]) {
	for i := range u {
		u[i] = v[i] / s
	}
	return
}

// Mul returns the component-wise product of v and w.
func (v V3[T]) Mul(w V3[T]) (u V3[T]) {
	for i := range u {
		u[i] = v[i] * w[i]
	}
	return
}

// Dot returns v ⋅ w.
func (v V3[T]) Dot(w V3[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Cross returns v × w.
// It is right-handed: x × y = z.
func (v V3[T]) Cross(w V3[T]) (u V3[T]) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// Len2 returns the squared length of v.
func (v V3[T]) Len2() T { return v.Dot(v) }

// Len returns the length of v.
func (v V3[T]) Len() T { return sqrt(v.Dot(v)) }

// Dist returns the distance between v and w.
func (v V3[T]) Dist(w V3[T]) T { return v.Sub(w).Len() }

// Norm returns v normalized.
// The result is undefined if v has zero length.
func (v V3[T]) Norm() V3[T] { return v.Scale(1 / v.Len()) }

// TryNorm is like Norm but fails with ErrZeroLength
// when v has zero length.
func (v V3[T]) TryNorm() (V3[T], error) {
	if v.Len2() == 0 {
		return v, ErrZeroLength
	}
	return v.Norm(), nil
}

// Lerp interpolates linearly between v and w.
func (v V3[T]) Lerp(w V3[T], t T) (u V3[T]) {
	for i := range u {
		u[i] = v[i] + t*(w[i]-v[i])
	}
	return
}

// Approx reports whether every component of v is within
// eps of the corresponding component of w.
func (v V3[T]) Approx(w V3[T], eps T) bool {
	for i := range v {
		if !Approx(v[i], w[i], eps) {
			return false
		}
	}
	return true
}

// V2 returns the x and y components of v.
func (v V3[T]) V2() V2[T] { return V2[T]{v[0], v[1]} }

// V4 returns v extended with w.
func (v V3[T]) V4(w T) V4[T] { return V4[T]{v[0], v[1], v[2], w} }

func (v V3[T]) String() string { return fmt.Sprintf("(%v, %v, %v)", v[0], v[1], v[2]) }

// X returns v[0].
func (v V4[T]) X() T { return v[0] }

// Y returns v[1].
func (v V4[T]) Y() T { return v[1] }

// Z returns v[2].
func (v V4[T]) Z() T { return v[2] }

// W returns v[3].
func (v V4[T]) W() T { return v[3] }

// Add returns v + w.
func (v V4[T]) Add(w V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// Sub returns v - w.
func (v V4[T]) Sub(w V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// AddS returns v with s added to every component.
func (v V4[T]) AddS(s T) (u V4[T]) {
	for i := range u {
		u[i] = v[i] + s
	}
	return
}

// SubS returns v with s subtracted from every component.
func (v V4[T]) SubS(s T) (u V4[T]) {
	for i := range u {
		u[i] = v[i] - s
	}
	return
}

// Neg returns -v.
func (v V4[T]) Neg() (u V4[T]) {
	for i := range u {
		u[i] = -v[i]
	}
	return
}

// Scale returns s ⋅ v.
func (v V4[T]) Scale(s T) (u V4[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// Div returns v / s.
// A zero s produces Inf or NaN components.
func (v V4[T]) Div(s T) (u V4[T]) {
	for i := range u {
		u[i] = v[i] / s
	}
	return
}

// Mul returns the component-wise product of v and w.
func (v V4[T]) Mul(w V4[T]) (u V4[T]) {
	for i := range u {
		u[i] = v[i] * w[i]
	}
	return
}

// Dot returns v ⋅ w.
func (v V4[T]) Dot(w V4[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len2 returns the squared length of v.
func (v V4[T]) Len2() T { return v.Dot(v) }

// Len returns the length of v.
func (v V4[T]) Len() T { return sqrt(v.Dot(v)) }

// Dist returns the distance between v and w.
func (v V4[T]) Dist(w V4[T]) T { return v.Sub(w).Len() }

// Norm returns v normalized.
// The result is undefined if v has zero length.
func (v V4[T]) Norm() V4[T] { return v.Scale(1 / v.Len()) }

// TryNorm is like Norm but fails with ErrZeroLength
// when v has zero length.
func (v V4[T]) TryNorm() (V4[T], error) {
	if v.Len2() == 0 {
		return v, ErrZeroLength
	}
	return v.Norm(), nil
}

// Lerp interpolates linearly between v and w.
func (v V4[T]) Lerp(w V4[T], t T) (u V4[T]) {
	for i := range u {
		u[i] = v[i] + t*(w[i]-v[i])
	}
	return
}

// Approx reports whether every component of v is within
// eps of the corresponding component of w.
func (v V4[T]) Approx(w V4[T], eps T) bool {
	for i := range v {
		if !Approx(v[i], w[i], eps) {
			return false
		}
	}
	return true
}

// V3 returns the x, y and z components of v.
func (v V4[T]) V3() V3[T] { return V3[T]{v[0], v[1], v[2]} }

func (v V4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v[0], v[1], v[2], v[3])
}
