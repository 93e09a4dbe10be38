// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// The functions below produce 4x4 transforms for a
// right-handed coordinate system. Projections map the view
// space, looking down -Z, to clip space. Unless stated
// otherwise, the depth range in NDC is [-1, 1].
// Degenerate parameters, such as near == far, are not
// checked and produce Inf or NaN elements.

// Translate returns a translation by v.
func Translate[T Float](v V3[T]) M4[T] {
	return M4[T]{{1}, {0, 1}, {0, 0, 1}, {v[0], v[1], v[2], 1}}
}

// Scale returns a scale by v.
func Scale[T Float](v V3[T]) M4[T] {
	return M4[T]{{v[0]}, {1: v[1]}, {2: v[2]}, {3: 1}}
}

// Rotate returns a rotation of angle radians around axis.
// axis need not be normalized.
func Rotate[T Float](axis V3[T], angle T) (m M4[T]) {
	v := axis.Norm()
	c := cos(angle)
	s := sin(angle)
	ic := 1 - c
	xx, yy, zz := v[0]*v[0], v[1]*v[1], v[2]*v[2]
	xy, xz, yz := v[0]*v[1], v[0]*v[2], v[1]*v[2]
	sx, sy, sz := s*v[0], s*v[1], s*v[2]
	m[0] = V4[T]{c + ic*xx, ic*xy + sz, ic*xz - sy}
	m[1] = V4[T]{ic*xy - sz, c + ic*yy, ic*yz + sx}
	m[2] = V4[T]{ic*xz + sy, ic*yz - sx, c + ic*zz}
	m[3][3] = 1
	return
}

// RotateQ returns the rotation represented by q.
func RotateQ[T Float](q Q[T]) M4[T] { return q.M4() }

// Perspective returns a perspective projection.
// yfov is the vertical field of view in radians.
func Perspective[T Float](yfov, aspectRatio, znear, zfar T) (m M4[T]) {
	ct := 1 / tan(yfov*0.5)
	id := 1 / (znear - zfar)
	m[0][0] = ct / aspectRatio
	m[1][1] = ct
	m[2][2] = (zfar + znear) * id
	m[2][3] = -1
	m[3][2] = 2 * zfar * znear * id
	return
}

// PerspectiveZO is like Perspective but maps depth
// to [0, 1].
func PerspectiveZO[T Float](yfov, aspectRatio, znear, zfar T) (m M4[T]) {
	ct := 1 / tan(yfov*0.5)
	id := 1 / (znear - zfar)
	m[0][0] = ct / aspectRatio
	m[1][1] = ct
	m[2][2] = zfar * id
	m[2][3] = -1
	m[3][2] = zfar * znear * id
	return
}

// InfPerspective returns a perspective projection whose
// far plane is at infinity.
func InfPerspective[T Float](yfov, aspectRatio, znear T) (m M4[T]) {
	ct := 1 / tan(yfov*0.5)
	m[0][0] = ct / aspectRatio
	m[1][1] = ct
	m[2][2] = -1
	m[2][3] = -1
	m[3][2] = -2 * znear
	return
}

// Frustum returns a perspective projection defined by
// the given clipping planes.
func Frustum[T Float](left, right, bottom, top, znear, zfar T) (m M4[T]) {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (zfar - znear)
	m[0][0] = 2 * znear * rl
	m[1][1] = 2 * znear * tb
	m[2][0] = (right + left) * rl
	m[2][1] = (top + bottom) * tb
	m[2][2] = -(zfar + znear) * fn
	m[2][3] = -1
	m[3][2] = -2 * zfar * znear * fn
	return
}

// Ortho returns an orthographic projection.
func Ortho[T Float](left, right, bottom, top, znear, zfar T) (m M4[T]) {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (zfar - znear)
	m[0][0] = 2 * rl
	m[1][1] = 2 * tb
	m[2][2] = -2 * fn
	m[3] = V4[T]{-(right + left) * rl, -(top + bottom) * tb, -(zfar + znear) * fn, 1}
	return
}

// OrthoZO is like Ortho but maps depth to [0, 1].
func OrthoZO[T Float](left, right, bottom, top, znear, zfar T) (m M4[T]) {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (zfar - znear)
	m[0][0] = 2 * rl
	m[1][1] = 2 * tb
	m[2][2] = -fn
	m[3] = V4[T]{-(right + left) * rl, -(top + bottom) * tb, -znear * fn, 1}
	return
}

// LookAt returns a view transform placing the viewer at
// eye, facing center, with up as the upward direction.
// up must not be parallel to center - eye.
func LookAt[T Float](eye, center, up V3[T]) (m M4[T]) {
	f := center.Sub(eye).Norm()
	s := f.Cross(up).Norm()
	u := s.Cross(f)
	m[0] = V4[T]{s[0], u[0], -f[0]}
	m[1] = V4[T]{s[1], u[1], -f[1]}
	m[2] = V4[T]{s[2], u[2], -f[2]}
	m[3] = V4[T]{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1}
	return
}
