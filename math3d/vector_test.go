package math3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestMagnitude(t *testing.T) {
	type eg struct {
		input Vector3
		exp   float64
	}

	examples := []eg{
		{Vector3{X: 0, Y: 0, Z: 0}, 0},
		{Vector3{X: 1, Y: 1, Z: 1}, 1.732050808},
		{Vector3{X: 1, Y: 2, Z: 3}, 3.741657387},
		{Vector3{X: 4, Y: 5, Z: 6}, 8.774964387},
	}

	for _, x := range examples {
		assert.InDelta(t, x.exp, x.input.Magnitude(), 0.01)
	}
}

func TestDistance(t *testing.T) {
	type eg struct {
		recv Vector3
		arg  Vector3
		out  float64
	}

	examples := []eg{
		{Vector3{X: 1, Y: 1, Z: 1}, Vector3{X: 1, Y: 1, Z: 1}, 0},
		{Vector3{X: 1, Y: 1, Z: 1}, Vector3{X: 2, Y: 2, Z: 2}, 1.732050808},
	}

	for _, x := range examples {
		assert.InDelta(t, x.out, x.recv.Distance(x.arg), 0.01)
	}
}

func TestUnit(t *testing.T) {
	type eg struct {
		in  Vector3
		out Vector3
	}

	examples := []eg{
		{Vector3{X: 0, Y: 0, Z: 0}, ZeroVector3},
		{Vector3{X: 1, Y: 1, Z: 1}, Vector3{X: 0.5773502691896258, Y: 0.5773502691896258, Z: 0.5773502691896258}},
		{Vector3{X: 2, Y: 2, Z: 2}, Vector3{X: 0.5773502691896258, Y: 0.5773502691896258, Z: 0.5773502691896258}},
		{Vector3{X: 0, Y: -3, Z: 0}, Vector3{X: 0, Y: -1, Z: 0}},
	}

	for _, x := range examples {
		act := x.in.Unit()
		assert.InDelta(t, 0, act.Distance(x.out), 1e-9, "unit of %s", x.in)
	}
}

func TestSubtract(t *testing.T) {
	v1 := Vector3{X: 1, Y: 2, Z: 3}
	v2 := Vector3{X: 4, Y: 5, Z: 6}

	vAct := v2.Subtract(v1)
	vExp := Vector3{X: 3, Y: 3, Z: 3}
	assert.Equal(t, vExp, vAct)
}

func TestMultiplyByScalar(t *testing.T) {
	v := Vector3{X: 1, Y: 2, Z: 3}

	vAct := v.MultiplyByScalar(0.5)
	vExp := Vector3{X: 0.5, Y: 1, Z: 1.5}
	assert.Equal(t, vExp, vAct)

	vAct = v.MultiplyByScalar(2)
	vExp = Vector3{X: 2, Y: 4, Z: 6}
	assert.Equal(t, vExp, vAct)
}

func TestMultiplyByMatrix44(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3)
	act := Vector3{X: 1, Y: 1, Z: 1}.MultiplyByMatrix44(m)
	assert.Equal(t, Vector3{X: 2, Y: 3, Z: 4}, act)
}

func TestVectorNaN(t *testing.T) {
	assert.False(t, Vector3{1, 2, 3}.NaN())
	assert.True(t, Vector3{1, math.NaN(), 3}.NaN())
}
