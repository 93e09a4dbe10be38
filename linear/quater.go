// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import "fmt"

// Q is a quaternion.
// V is the vector part and R is the real part,
// so its memory layout is x, y, z, w.
type Q[T Float] struct {
	V V3[T]
	R T
}

// QIdent returns the identity quaternion, which
// represents no rotation.
func QIdent[T Float]() Q[T] { return Q[T]{R: 1} }

// QAxisAngle returns a quaternion representing a rotation
// of angle radians around axis.
// axis need not be normalized.
func QAxisAngle[T Float](axis V3[T], angle T) Q[T] {
	angle *= 0.5
	return Q[T]{V: axis.Norm().Scale(sin(angle)), R: cos(angle)}
}

// QFromM3 returns a unit quaternion representing the
// rotation matrix m.
func QFromM3[T Float](m M3[T]) (q Q[T]) {
	// m[c][r]
	switch tr := m[0][0] + m[1][1] + m[2][2]; {
	case tr > 0:
		s := sqrt(tr+1) * 2
		q.R = s / 4
		q.V[0] = (m[1][2] - m[2][1]) / s
		q.V[1] = (m[2][0] - m[0][2]) / s
		q.V[2] = (m[0][1] - m[1][0]) / s
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		q.R = (m[1][2] - m[2][1]) / s
		q.V[0] = s / 4
		q.V[1] = (m[1][0] + m[0][1]) / s
		q.V[2] = (m[2][0] + m[0][2]) / s
	case m[1][1] > m[2][2]:
		s := sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		q.R = (m[2][0] - m[0][2]) / s
		q.V[0] = (m[1][0] + m[0][1]) / s
		q.V[1] = s / 4
		q.V[2] = (m[2][1] + m[1][2]) / s
	default:
		s := sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		q.R = (m[0][1] - m[1][0]) / s
		q.V[0] = (m[2][0] + m[0][2]) / s
		q.V[1] = (m[2][1] + m[1][2]) / s
		q.V[2] = s / 4
	}
	return
}

// Mul returns the Hamilton product q ⋅ r.
// As a rotation, it applies r first and then q.
func (q Q[T]) Mul(r Q[T]) Q[T] {
	v := r.V.Scale(q.R).Add(q.V.Scale(r.R))
	return Q[T]{
		V: v.Add(q.V.Cross(r.V)),
		R: q.R*r.R - q.V.Dot(r.V),
	}
}

// Conj returns the conjugate of q.
func (q Q[T]) Conj() Q[T] { return Q[T]{V: q.V.Neg(), R: q.R} }

// Inverse returns the inverse of q.
// It equals Conj for unit quaternions.
func (q Q[T]) Inverse() Q[T] {
	c := q.Conj()
	s := 1 / q.Dot(q)
	return Q[T]{V: c.V.Scale(s), R: c.R * s}
}

// Dot returns q ⋅ r.
func (q Q[T]) Dot(r Q[T]) T { return q.V.Dot(r.V) + q.R*r.R }

// Len returns the length of q.
func (q Q[T]) Len() T { return sqrt(q.Dot(q)) }

// Norm returns q normalized.
// The result is undefined if q has zero length.
func (q Q[T]) Norm() Q[T] {
	s := 1 / q.Len()
	return Q[T]{V: q.V.Scale(s), R: q.R * s}
}

// TryNorm is like Norm but fails with ErrZeroLength
// when q has zero length.
func (q Q[T]) TryNorm() (Q[T], error) {
	if q.Dot(q) == 0 {
		return q, ErrZeroLength
	}
	return q.Norm(), nil
}

// Rotate returns v rotated by q, which must be a
// unit quaternion.
func (q Q[T]) Rotate(v V3[T]) V3[T] {
	t := q.V.Cross(v).Scale(2)
	return v.Add(t.Scale(q.R)).Add(q.V.Cross(t))
}

// M3 returns the rotation matrix of q.
// q is normalized first.
func (q Q[T]) M3() (m M3[T]) {
	q = q.Norm()
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	m[0] = V3[T]{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy)}
	m[1] = V3[T]{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx)}
	m[2] = V3[T]{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy)}
	return
}

// M4 returns the rotation matrix of q.
// q is normalized first.
func (q Q[T]) M4() M4[T] { return q.M3().M4() }

// Slerp interpolates spherically between q and r along
// the shortest arc. Both must be unit quaternions.
func (q Q[T]) Slerp(r Q[T], t T) Q[T] {
	d := q.Dot(r)
	if d < 0 {
		r = Q[T]{V: r.V.Neg(), R: -r.R}
		d = -d
	}
	var a, b T
	if d > 0.9995 {
		a, b = 1-t, t
	} else {
		th := acos(d)
		is := 1 / sin(th)
		a, b = sin((1-t)*th)*is, sin(t*th)*is
	}
	p := Q[T]{V: q.V.Scale(a).Add(r.V.Scale(b)), R: q.R*a + r.R*b}
	return p.Norm()
}

// Approx reports whether every component of q is within
// eps of the corresponding component of r.
// Note that q and -q represent the same rotation but
// are not considered approximately equal.
func (q Q[T]) Approx(r Q[T], eps T) bool {
	return q.V.Approx(r.V, eps) && Approx(q.R, r.R, eps)
}

func (q Q[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.V[0], q.V[1], q.V[2], q.R)
}
