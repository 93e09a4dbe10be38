// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nsample = 200

func randV3(rnd *rand.Rand) V3[float64] {
	return V3[float64]{rnd.Float64()*20 - 10, rnd.Float64()*20 - 10, rnd.Float64()*20 - 10}
}

func randV4(rnd *rand.Rand) V4[float64] {
	return randV3(rnd).V4(rnd.Float64()*20 - 10)
}

func randM4(rnd *rand.Rand) (m M4[float64]) {
	for i := range m {
		m[i] = randV4(rnd)
	}
	return
}

func randQ(rnd *rand.Rand) Q[float64] {
	return QAxisAngle(randV3(rnd), rnd.Float64()*2*math.Pi)
}

// hadamard returns an upper bound for |m.Det()|.
func hadamard(m M4[float64]) float64 {
	b := 1.0
	for i := range m {
		b *= m[i].Len()
	}
	return b
}

func mgl(m M4[float64]) mgl64.Mat4 { return mgl64.Mat4(m.Array()) }

func mglV3(v V3[float64]) mgl64.Vec3 { return mgl64.Vec3(v) }

func TestVectorProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < nsample; i++ {
		a, b := randV3(rnd), randV3(rnd)

		require.Equal(t, a.Dot(a), a.Len2())
		require.Equal(t, a.Cross(b), b.Cross(a).Neg())
		require.InDelta(t, 1, a.Norm().Len(), 1e-12)
		require.InDelta(t, 0, a.Cross(b).Dot(a), 1e-9)

		v := randV4(rnd)
		require.Equal(t, v.Dot(v), v.Len2())
		require.InDelta(t, 1, v.Norm().Len(), 1e-12)

		w := V2[float64]{a[0], a[1]}
		require.Equal(t, w.Dot(w), w.Len2())
		require.InDelta(t, 1, w.Norm().Len(), 1e-12)
	}
}

func TestMatrixProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < nsample; i++ {
		m := randM4(rnd)
		require.Equal(t, m, m.Transpose().Transpose())
		require.InDelta(t, m.Det(), m.Transpose().Det(), 1e-12*hadamard(m))

		if math.Abs(m.Det()) < 10 {
			continue
		}
		assert.True(t, m.Mul(m.Invert()).Approx(I4[float64](), 1e-9), "M4.Mul(M4.Invert): %v", m)
		assert.True(t, m.Invert().Invert().Approx(m, 1e-6), "M4.Invert.Invert: %v", m)

		n := m.M3()
		if math.Abs(n.Det()) > 1 {
			assert.True(t, n.Mul(n.Invert()).Approx(I3[float64](), 1e-9), "M3.Mul(M3.Invert): %v", n)
		}
		o := M2[float64]{n[0].V2(), n[1].V2()}
		if math.Abs(o.Det()) > 1 {
			assert.True(t, o.Mul(o.Invert()).Approx(I2[float64](), 1e-9), "M2.Mul(M2.Invert): %v", o)
		}

		// (l ⋅ r)ᵀ = rᵀ ⋅ lᵀ
		r := randM4(rnd)
		assert.True(t, m.Mul(r).Transpose().Approx(r.Transpose().Mul(m.Transpose()), 1e-9))
		// det(l ⋅ r) = det(l) ⋅ det(r)
		mr := m.Mul(r)
		assert.InDelta(t, m.Det()*r.Det(), mr.Det(), 1e-12*hadamard(m)*hadamard(r)+1e-12*hadamard(mr))
	}
}

func TestQuaternionProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < nsample; i++ {
		q, p := randQ(rnd), randQ(rnd)
		v := randV3(rnd)

		require.InDelta(t, 1, q.Len(), 1e-12)
		require.Equal(t, v, QIdent[float64]().Rotate(v))
		assert.True(t, q.Mul(p).M3().Approx(q.M3().Mul(p.M3()), 1e-12), "Q.Mul.M3: %v %v", q, p)
		assert.True(t, q.Rotate(v).Approx(q.M3().MulV(v), 1e-12), "Q.Rotate: %v %v", q, v)
		assert.True(t, q.Conj().Rotate(q.Rotate(v)).Approx(v, 1e-12), "Q.Conj.Rotate: %v %v", q, v)
		assert.InDelta(t, v.Len(), q.Rotate(v).Len(), 1e-12)

		s := q.Slerp(p, rnd.Float64())
		assert.InDelta(t, 1, s.Len(), 1e-12)
	}
}

func TestAgainstMathGL(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < nsample; i++ {
		m := randM4(rnd)
		if math.Abs(m.Det()) < 10 {
			continue
		}
		want := mgl(m).Inv()
		have := m.Invert().Array()
		assert.InDeltaSlice(t, want[:], have[:], 1e-8)
		assert.InDelta(t, mgl(m).Det(), m.Det(), 1e-12*hadamard(m))

		r := randM4(rnd)
		mr := mgl(m).Mul4(mgl(r))
		have = m.Mul(r).Array()
		assert.InDeltaSlice(t, mr[:], have[:], 1e-9)

		v := randV4(rnd)
		mv := mgl(m).Mul4x1(mgl64.Vec4(v))
		hv := m.MulV(v)
		assert.InDeltaSlice(t, mv[:], hv[:], 1e-9)

		axis := randV3(rnd).Norm()
		angle := rnd.Float64() * 2 * math.Pi
		q := QAxisAngle(axis, angle)
		mq := mgl64.QuatRotate(angle, mglV3(axis))
		assert.InDelta(t, mq.W, q.R, 1e-12)
		assert.InDeltaSlice(t, mq.V[:], q.V[:], 1e-12)
		rm := mgl64.HomogRotate3D(angle, mglV3(axis))
		have = Rotate(axis, angle).Array()
		assert.InDeltaSlice(t, rm[:], have[:], 1e-12)
		have = RotateQ(q).Array()
		qm := mq.Mat4()
		assert.InDeltaSlice(t, qm[:], have[:], 1e-12)
	}

	for _, x := range [...]struct{ fovy, aspect, near, far float64 }{
		{math.Pi / 2, 1, 0.1, 100},
		{math.Pi / 4, 16.0 / 9, 0.01, 1000},
		{1, 0.5, 2, 3},
	} {
		want := mgl64.Perspective(x.fovy, x.aspect, x.near, x.far)
		have := Perspective(x.fovy, x.aspect, x.near, x.far).Array()
		assert.InDeltaSlice(t, want[:], have[:], 1e-12, "Perspective%v", x)
	}

	for _, x := range [...]struct{ l, r, b, t, n, f float64 }{
		{-1, 1, -1, 1, 0.1, 100},
		{0, 800, 600, 0, -1, 1},
		{-3, 5, -2, 7, 1, 4},
	} {
		want := mgl64.Ortho(x.l, x.r, x.b, x.t, x.n, x.f)
		have := Ortho(x.l, x.r, x.b, x.t, x.n, x.f).Array()
		assert.InDeltaSlice(t, want[:], have[:], 1e-12, "Ortho%v", x)
		want = mgl64.Frustum(x.l, x.r, x.b, x.t, x.n, x.f)
		have = Frustum(x.l, x.r, x.b, x.t, x.n, x.f).Array()
		assert.InDeltaSlice(t, want[:], have[:], 1e-12, "Frustum%v", x)
	}

	for i := 0; i < nsample; i++ {
		eye, center := randV3(rnd), randV3(rnd)
		up := V3[float64]{0, 1}
		want := mgl64.LookAtV(mglV3(eye), mglV3(center), mglV3(up))
		have := LookAt(eye, center, up).Array()
		assert.InDeltaSlice(t, want[:], have[:], 1e-9)

		v := randV3(rnd)
		want = mgl64.Translate3D(v[0], v[1], v[2])
		have = Translate(v).Array()
		assert.Equal(t, want[:], have[:])
		want = mgl64.Scale3D(v[0], v[1], v[2])
		have = Scale(v).Array()
		assert.Equal(t, want[:], have[:])
	}
}
