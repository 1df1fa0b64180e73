package dbg

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NopMap/iD/geo"
)

func TestName(t *testing.T) {
	a := &geo.Path{{X: 0, Y: 0}}
	b := &geo.Path{{X: 0, Y: 0}}

	assert.Equal(t, Name(a), Name(a))
	assert.NotEmpty(t, Name(a))
	assert.NotEqual(t, Name(a), Name(b))

	var none *geo.Path
	assert.Equal(t, "Ø", Name(none))
	assert.Equal(t, "Ø", Name(nil))
}

func TestDraw(t *testing.T) {
	square := geo.Path{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	query := geo.Vec2{X: 12, Y: 5}
	d := Drawing{
		Paths:  []geo.Path{square},
		Closed: true,
		Marks:  []geo.Vec2{{X: 5, Y: 5}},
		Edge:   geo.ChooseEdge([]geo.Node{{ID: "a", Loc: square[1]}, {ID: "b", Loc: square[2]}}, query, geo.Identity, ""),
		Query:  &query,
	}

	var buf bytes.Buffer
	require.NoError(t, Draw(&buf, d, 10))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	// 12 units wide plus padding on both sides
	assert.Equal(t, 120+2*drawPadding, img.Bounds().Dx())
	assert.Equal(t, 100+2*drawPadding, img.Bounds().Dy())

	t.Run("nothing to draw", func(t *testing.T) {
		assert.EqualError(t, Draw(&bytes.Buffer{}, Drawing{}, 1), "nothing to draw")
	})

	t.Run("to file", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "square.png")
		require.NoError(t, DrawFile(filename, d, 2, false))
		assert.FileExists(t, filename)
	})
}
