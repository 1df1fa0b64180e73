package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseEdge(t *testing.T) {
	horizontal := []Node{
		{ID: "a", Loc: Vec2{0, 0}},
		{ID: "b", Loc: Vec2{10, 0}},
	}

	t.Run("orthogonal projection", func(t *testing.T) {
		edge := ChooseEdge(horizontal, Vec2{5, 3}, Identity, "")
		require.NotNil(t, edge)
		assert.Equal(t, 1, edge.Index)
		assert.InDelta(t, 3, edge.Distance, 1e-12)
		assert.Equal(t, Vec2{5, 0}, edge.Loc)
	})

	t.Run("clamped to first endpoint", func(t *testing.T) {
		edge := ChooseEdge(horizontal, Vec2{-5, 3}, Identity, "")
		require.NotNil(t, edge)
		assert.Equal(t, 1, edge.Index)
		assert.InDelta(t, math.Sqrt(34), edge.Distance, 1e-12)
		assert.Equal(t, Vec2{0, 0}, edge.Loc)
	})

	t.Run("clamped to second endpoint", func(t *testing.T) {
		edge := ChooseEdge(horizontal, Vec2{13, -4}, Identity, "")
		require.NotNil(t, edge)
		assert.InDelta(t, 5, edge.Distance, 1e-12)
		assert.Equal(t, Vec2{10, 0}, edge.Loc)
	})

	t.Run("picks the nearest segment", func(t *testing.T) {
		nodes := []Node{
			{ID: "a", Loc: Vec2{0, 0}},
			{ID: "b", Loc: Vec2{10, 0}},
			{ID: "c", Loc: Vec2{10, 10}},
			{ID: "d", Loc: Vec2{0, 10}},
		}
		edge := ChooseEdge(nodes, Vec2{9, 5}, Identity, "")
		require.NotNil(t, edge)
		assert.Equal(t, 2, edge.Index)
		assert.InDelta(t, 1, edge.Distance, 1e-12)
		assert.Equal(t, Vec2{10, 5}, edge.Loc)

		edge = ChooseEdge(nodes, Vec2{5, 11}, Identity, "")
		require.NotNil(t, edge)
		assert.Equal(t, 3, edge.Index)
	})

	t.Run("earlier segment wins ties", func(t *testing.T) {
		// (5, 5) is exactly 5 away from both the bottom and the right side.
		nodes := []Node{
			{ID: "a", Loc: Vec2{0, 0}},
			{ID: "b", Loc: Vec2{10, 0}},
			{ID: "c", Loc: Vec2{10, 10}},
		}
		edge := ChooseEdge(nodes, Vec2{5, 5}, Identity, "")
		require.NotNil(t, edge)
		assert.Equal(t, 1, edge.Index)
		assert.Equal(t, Vec2{5, 0}, edge.Loc)
	})

	t.Run("skips segments touching the active node", func(t *testing.T) {
		nodes := []Node{
			{ID: "a", Loc: Vec2{0, 0}},
			{ID: "b", Loc: Vec2{10, 0}},
			{ID: "c", Loc: Vec2{20, 0}},
			{ID: "d", Loc: Vec2{30, 0}},
		}
		edge := ChooseEdge(nodes, Vec2{5, 1}, Identity, "b")
		require.NotNil(t, edge)
		assert.Equal(t, 3, edge.Index)
		assert.Equal(t, Vec2{20, 0}, edge.Loc)
		assert.InDelta(t, math.Hypot(15, 1), edge.Distance, 1e-12)
	})

	t.Run("nil when nothing is eligible", func(t *testing.T) {
		assert.Nil(t, ChooseEdge(horizontal, Vec2{5, 3}, Identity, "a"))
		assert.Nil(t, ChooseEdge(horizontal[:1], Vec2{5, 3}, Identity, ""))
		assert.Nil(t, ChooseEdge(nil, Vec2{5, 3}, Identity, ""))
	})

	t.Run("zero length segment", func(t *testing.T) {
		nodes := []Node{
			{ID: "a", Loc: Vec2{2, 2}},
			{ID: "b", Loc: Vec2{2, 2}},
		}
		edge := ChooseEdge(nodes, Vec2{5, 6}, Identity, "")
		require.NotNil(t, edge)
		assert.Equal(t, Vec2{2, 2}, edge.Loc)
		assert.InDelta(t, 5, edge.Distance, 1e-12)
	})

	t.Run("reports location in model space", func(t *testing.T) {
		// Model coordinates are scaled by 2 and shifted into screen space, the
		// query point is already in screen space.
		proj := Transform{K: 2, X: 100, Y: 50}
		edge := ChooseEdge(horizontal, Vec2{110, 56}, proj, "")
		require.NotNil(t, edge)
		assert.Equal(t, 1, edge.Index)
		assert.InDelta(t, 6, edge.Distance, 1e-12)
		assert.InDelta(t, 5, edge.Loc.X, 1e-12)
		assert.InDelta(t, 0, edge.Loc.Y, 1e-12)
	})
}
