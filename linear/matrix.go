// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import "fmt"

// M2 is a column-major 2x2 matrix.
type M2[T Float] [2]V2[T]

// M3 is a column-major 3x3 matrix.
type M3[T Float] [3]V3[T]

// M4 is a column-major 4x4 matrix.
type M4[T Float] [4]V4[T]

// I2 returns a 2x2 identity matrix.
func I2[T Float]() M2[T] { return M2[T]{{1}, {0, 1}} }

// I3 returns a 3x3 identity matrix.
func I3[T Float]() M3[T] { return M3[T]{{1}, {0, 1}, {0, 0, 1}} }

// I4 returns a 4x4 identity matrix.
func I4[T Float]() M4[T] { return M4[T]{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Col returns the ith column of m.
func (m M2[T]) Col(i int) V2[T] { return m[i] }

// Row returns the ith row of m.
func (m M2[T]) Row(i int) V2[T] { return V2[T]{m[0][i], m[1][i]} }

// Add returns m + n.
func (m M2[T]) Add(n M2[T]) (l M2[T]) {
	for i := range l {
		l[i] = m[i].Add(n[i])
	}
	return
}

// Sub returns m - n.
func (m M2[T]) Sub(n M2[T]) (l M2[T]) {
	for i := range l {
		l[i] = m[i].Sub(n[i])
	}
	return
}

// Scale returns s ⋅ m.
func (m M2[T]) Scale(s T) (l M2[T]) {
	for i := range l {
		l[i] = m[i].Scale(s)
	}
	return
}

// Mul returns m ⋅ r.
func (m M2[T]) Mul(r M2[T]) (l M2[T]) {
	for i := range l {
		for j := range l {
			for k := range l {
				l[i][j] += m[k][j] * r[i][k]
			}
		}
	}
	return
}

// MulV returns m ⋅ v.
func (m M2[T]) MulV(v V2[T]) (u V2[T]) {
	for i := range m {
		for j := range u {
			u[j] += m[i][j] * v[i]
		}
	}
	return
}

// Transpose returns the transpose of m.
func (m M2[T]) Transpose() M2[T] {
	return M2[T]{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// Det returns the determinant of m.
func (m M2[T]) Det() T { return m[0][0]*m[1][1] - m[1][0]*m[0][1] }

// Invert returns the inverse of m.
// The result is undefined if m is singular.
func (m M2[T]) Invert() M2[T] {
	idet := 1 / m.Det()
	return M2[T]{
		{m[1][1] * idet, -m[0][1] * idet},
		{-m[1][0] * idet, m[0][0] * idet},
	}
}

// TryInvert is like Invert but fails with ErrSingular
// when the magnitude of m's determinant is not greater
// than eps.
func (m M2[T]) TryInvert(eps T) (M2[T], error) {
	if abs(m.Det()) <= eps {
		return m, ErrSingular
	}
	return m.Invert(), nil
}

// Approx reports whether every element of m is within
// eps of the corresponding element of n.
func (m M2[T]) Approx(n M2[T], eps T) bool {
	return m[0].Approx(n[0], eps) && m[1].Approx(n[1], eps)
}

// Array returns the elements of m in column-major order.
func (m M2[T]) Array() [4]T { return [4]T{m[0][0], m[0][1], m[1][0], m[1][1]} }

func (m M2[T]) String() string { return fmt.Sprint([2]V2[T](m)) }

// Col returns the ith column of m.
func (m M3[T]) Col(i int) V3[T] { return m[i] }

// Row returns the ith row of m.
func (m M3[T]) Row(i int) V3[T] { return V3[T]{m[0][i], m[1][i], m[2][i]} }

// Add returns m + n.
func (m M3[T]) Add(n M3[T]) (l M3[T]) {
	for i := range l {
		l[i] = m[i].Add(n[i])
	}
	return
}

// Sub returns m - n.
func (m M3[T]) Sub(n M3[T]) (l M3[T]) {
	for i := range l {
		l[i] = m[i].Sub(n[i])
	}
	return
}

// Scale returns s ⋅ m.
func (m M3[T]) Scale(s T) (l M3[T]) {
	for i := range l {
		l[i] = m[i].Scale(s)
	}
	return
}

// Mul returns m ⋅ r.
func (m M3[T]) Mul(r M3[T]) (l M3[T]) {
	for i := range l {
		for j := range l {
			for k := range l {
				l[i][j] += m[k][j] * r[i][k]
			}
		}
	}
	return
}

// MulV returns m ⋅ v.
func (m M3[T]) MulV(v V3[T]) (u V3[T]) {
	for i := range m {
		for j := range u {
			u[j] += m[i][j] * v[i]
		}
	}
	return
}

// Transpose returns the transpose of m.
func (m M3[T]) Transpose() (l M3[T]) {
	for i := range l {
		l[i][i] = m[i][i]
		for j := i + 1; j < len(l); j++ {
			l[i][j], l[j][i] = m[j][i], m[i][j]
		}
	}
	return
}

// Det returns the determinant of m.
func (m M3[T]) Det() T { return m[0].Dot(m[1].Cross(m[2])) }

// Invert returns the inverse of m.
// The result is undefined if m is singular.
func (m M3[T]) Invert() (l M3[T]) {
	s0 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	s1 := m[1][0]*m[2][2] - m[1][2]*m[2][0]
	s2 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	idet := 1 / (m[0][0]*s0 - m[0][1]*s1 + m[0][2]*s2)
	l[0][0] = s0 * idet
	l[0][1] = -(m[0][1]*m[2][2] - m[0][2]*m[2][1]) * idet
	l[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * idet
	l[1][0] = -s1 * idet
	l[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * idet
	l[1][2] = -(m[0][0]*m[1][2] - m[0][2]*m[1][0]) * idet
	l[2][0] = s2 * idet
	l[2][1] = -(m[0][0]*m[2][1] - m[0][1]*m[2][0]) * idet
	l[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * idet
	return
}

// TryInvert is like Invert but fails with ErrSingular
// when the magnitude of m's determinant is not greater
// than eps.
func (m M3[T]) TryInvert(eps T) (M3[T], error) {
	if abs(m.Det()) <= eps {
		return m, ErrSingular
	}
	return m.Invert(), nil
}

// Approx reports whether every element of m is within
// eps of the corresponding element of n.
func (m M3[T]) Approx(n M3[T], eps T) bool {
	for i := range m {
		if !m[i].Approx(n[i], eps) {
			return false
		}
	}
	return true
}

// M4 returns m as the upper-left 3x3 of an otherwise
// identity 4x4 matrix.
func (m M3[T]) M4() M4[T] {
	return M4[T]{m[0].V4(0), m[1].V4(0), m[2].V4(0), {3: 1}}
}

// Array returns the elements of m in column-major order.
func (m M3[T]) Array() (a [9]T) {
	for i := range m {
		copy(a[i*3:], m[i][:])
	}
	return
}

func (m M3[T]) String() string { return fmt.Sprint([3]V3[T](m)) }

// Col returns the ith column of m.
func (m M4[T]) Col(i int) V4[T] { return m[i] }

// Row returns the ith row of m.
func (m M4[T]) Row(i int) V4[T] { return V4[T]{m[0][i], m[1][i], m[2][i], m[3][i]} }

// Add returns m + n.
func (m M4[T]) Add(n M4[T]) (l M4[T]) {
	for i := range l {
		l[i] = m[i].Add(n[i])
	}
	return
}

// Sub returns m - n.
func (m M4[T]) Sub(n M4[T]) (l M4[T]) {
	for i := range l {
		l[i] = m[i].Sub(n[i])
	}
	return
}

// Scale returns s ⋅ m.
func (m M4[T]) Scale(s T) (l M4[T]) {
	for i := range l {
		l[i] = m[i].Scale(s)
	}
	return
}

// Mul returns m ⋅ r.
func (m M4[T]) Mul(r M4[T]) (l M4[T]) {
	for i := range l {
		for j := range l {
			for k := range l {
				l[i][j] += m[k][j] * r[i][k]
			}
		}
	}
	return
}

// MulV returns m ⋅ v.
func (m M4[T]) MulV(v V4[T]) (u V4[T]) {
	for i := range m {
		for j := range u {
			u[j] += m[i][j] * v[i]
		}
	}
	return
}

// Transpose returns the transpose of m.
func (m M4[T]) Transpose() (l M4[T]) {
	for i := range l {
		l[i][i] = m[i][i]
		for j := i + 1; j < len(l); j++ {
			l[i][j], l[j][i] = m[j][i], m[i][j]
		}
	}
	return
}

// minors computes the 2x2 determinants that the Laplace
// expansion of m along its first two columns uses.
func (m M4[T]) minors() (s, c [6]T) {
	s[0] = m[0][0]*m[1][1] - m[0][1]*m[1][0]
	s[1] = m[0][0]*m[1][2] - m[0][2]*m[1][0]
	s[2] = m[0][0]*m[1][3] - m[0][3]*m[1][0]
	s[3] = m[0][1]*m[1][2] - m[0][2]*m[1][1]
	s[4] = m[0][1]*m[1][3] - m[0][3]*m[1][1]
	s[5] = m[0][2]*m[1][3] - m[0][3]*m[1][2]
	c[0] = m[2][0]*m[3][1] - m[2][1]*m[3][0]
	c[1] = m[2][0]*m[3][2] - m[2][2]*m[3][0]
	c[2] = m[2][0]*m[3][3] - m[2][3]*m[3][0]
	c[3] = m[2][1]*m[3][2] - m[2][2]*m[3][1]
	c[4] = m[2][1]*m[3][3] - m[2][3]*m[3][1]
	c[5] = m[2][2]*m[3][3] - m[2][3]*m[3][2]
	return
}

// Det returns the determinant of m.
func (m M4[T]) Det() T {
	s, c := m.minors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Invert returns the inverse of m.
// The result is undefined if m is singular.
func (m M4[T]) Invert() (l M4[T]) {
	s, c := m.minors()
	idet := 1 / (s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0])
	l[0][0] = (c[5]*m[1][1] - c[4]*m[1][2] + c[3]*m[1][3]) * idet
	l[0][1] = (-c[5]*m[0][1] + c[4]*m[0][2] - c[3]*m[0][3]) * idet
	l[0][2] = (s[5]*m[3][1] - s[4]*m[3][2] + s[3]*m[3][3]) * idet
	l[0][3] = (-s[5]*m[2][1] + s[4]*m[2][2] - s[3]*m[2][3]) * idet
	l[1][0] = (-c[5]*m[1][0] + c[2]*m[1][2] - c[1]*m[1][3]) * idet
	l[1][1] = (c[5]*m[0][0] - c[2]*m[0][2] + c[1]*m[0][3]) * idet
	l[1][2] = (-s[5]*m[3][0] + s[2]*m[3][2] - s[1]*m[3][3]) * idet
	l[1][3] = (s[5]*m[2][0] - s[2]*m[2][2] + s[1]*m[2][3]) * idet
	l[2][0] = (c[4]*m[1][0] - c[2]*m[1][1] + c[0]*m[1][3]) * idet
	l[2][1] = (-c[4]*m[0][0] + c[2]*m[0][1] - c[0]*m[0][3]) * idet
	l[2][2] = (s[4]*m[3][0] - s[2]*m[3][1] + s[0]*m[3][3]) * idet
	l[2][3] = (-s[4]*m[2][0] + s[2]*m[2][1] - s[0]*m[2][3]) * idet
	l[3][0] = (-c[3]*m[1][0] + c[1]*m[1][1] - c[0]*m[1][2]) * idet
	l[3][1] = (c[3]*m[0][0] - c[1]*m[0][1] + c[0]*m[0][2]) * idet
	l[3][2] = (-s[3]*m[3][0] + s[1]*m[3][1] - s[0]*m[3][2]) * idet
	l[3][3] = (s[3]*m[2][0] - s[1]*m[2][1] + s[0]*m[2][2]) * idet
	return
}

// TryInvert is like Invert but fails with ErrSingular
// when the magnitude of m's determinant is not greater
// than eps.
func (m M4[T]) TryInvert(eps T) (M4[T], error) {
	if abs(m.Det()) <= eps {
		return m, ErrSingular
	}
	return m.Invert(), nil
}

// M3 returns the upper-left 3x3 of m.
func (m M4[T]) M3() M3[T] { return M3[T]{m[0].V3(), m[1].V3(), m[2].V3()} }

// Normal returns the inverse transpose of m's upper-left
// 3x3, which transforms normals.
func (m M4[T]) Normal() M3[T] { return m.M3().Invert().Transpose() }

// Approx reports whether every element of m is within
// eps of the corresponding element of n.
func (m M4[T]) Approx(n M4[T], eps T) bool {
	for i := range m {
		if !m[i].Approx(n[i], eps) {
			return false
		}
	}
	return true
}

// Array returns the elements of m in column-major order.
func (m M4[T]) Array() (a [16]T) {
	for i := range m {
		copy(a[i*4:], m[i][:])
	}
	return
}

func (m M4[T]) String() string { return fmt.Sprint([4]V4[T](m)) }
