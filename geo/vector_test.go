package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorPrimitives(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}
	assert.Equal(t, Vec2{4, 2}, a.Add(b))
	assert.Equal(t, Vec2{2, 6}, a.Sub(b))
	assert.Equal(t, Vec2{6, 8}, a.Scale(2))
	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, -10.0, a.Cross(b))
	assert.Equal(t, 5.0, Length(Vec2{}, a))
	assert.Equal(t, Vec2{2, 1}, Interp(a, b, 0.5))
}

func TestVecAngle(t *testing.T) {
	assert.InDelta(t, 0, VecAngle(Vec2{0, 0}, Vec2{1, 0}), 1e-12)
	assert.InDelta(t, math.Pi/2, VecAngle(Vec2{0, 0}, Vec2{0, 1}), 1e-12)
	assert.InDelta(t, math.Pi, VecAngle(Vec2{0, 0}, Vec2{-1, 0}), 1e-12)
	assert.InDelta(t, -math.Pi/4, VecAngle(Vec2{1, 1}, Vec2{2, 0}), 1e-12)
}

func TestVecEqual(t *testing.T) {
	assert.True(t, VecEqual(Vec2{1, 2}, Vec2{1, 2}))
	assert.False(t, VecEqual(Vec2{1, 2}, Vec2{1, 2 + 1e-12}))

	t.Run("with epsilon", func(t *testing.T) {
		assert.True(t, VecEqualEpsilon(Vec2{1, 2}, Vec2{1 + 1e-9, 2 - 1e-9}, 1e-8))
		assert.True(t, VecEqualEpsilon(Vec2{0, 0}, Vec2{0.5, 0.5}, 0.5), "epsilon is inclusive")
		assert.False(t, VecEqualEpsilon(Vec2{1, 2}, Vec2{1, 2 + 1e-7}, 1e-8))
	})
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		assert.Equal(t, expectedIndexes[i+3], CircularIndex(i, n))
	}
}

func TestTransform(t *testing.T) {
	proj := Transform{K: 2, X: 10, Y: -5}
	assert.Equal(t, Vec2{12, -1}, proj.Project(Vec2{1, 2}))
	assert.Equal(t, Vec2{1, 2}, proj.Invert(proj.Project(Vec2{1, 2})))

	assert.Equal(t, Vec2{7, 8}, Identity.Project(Vec2{7, 8}))
	assert.Equal(t, Vec2{7, 8}, Identity.Invert(Vec2{7, 8}))
}
