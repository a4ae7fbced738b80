package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viktordanov/lsvg/config"
	"github.com/viktordanov/lsvg/turtle"
)

var (
	lineShape  = turtle.BBox{XMin: 0, YMin: -0.1, XMax: 1, YMax: 0.1}
	lineTarget = turtle.BBox{XMin: 0, YMin: 0, XMax: 2, YMax: 0.4}
	linePath   = turtle.Path{{Kind: turtle.MoveTo}, {Kind: turtle.LineTo, DX: 1}}
)

func TestFitTransform(t *testing.T) {
	tr := FitTransform(lineShape, lineTarget)

	assert.InDelta(t, 2, tr.Scale, 1e-9)
	assert.InDelta(t, 0, tr.OriginX, 1e-9)
	assert.InDelta(t, 0.2, tr.OriginY, 1e-9)

	// the shape center lands on the target center
	x, y := tr.Apply(0.5, 0)
	assert.InDelta(t, 1, x, 1e-9)
	assert.InDelta(t, 0.2, y, 1e-9)
}

func TestFitTransformMatchesArea(t *testing.T) {
	shape := turtle.BBox{XMin: -3, YMin: -1, XMax: 5, YMax: 7}
	target := turtle.BBox{XMin: 1, YMin: 1, XMax: 4, YMax: 2}
	tr := FitTransform(shape, target)

	assert.InDelta(t, target.Area(), tr.Scale*tr.Scale*shape.Area(), 1e-9)
}

func TestFitAbsolute(t *testing.T) {
	got := Fit(linePath, lineShape, lineTarget, config.PathAbsolute)
	assert.Equal(t, "M 0.0000in 0.2000in L 2.0000in 0.2000in \n", got)
}

func TestFitAbsoluteFollowsMoves(t *testing.T) {
	path := turtle.Path{
		{Kind: turtle.MoveTo},
		{Kind: turtle.LineTo, DX: 1},
		{Kind: turtle.MoveTo, DX: -1},
		{Kind: turtle.LineTo, DY: 1},
	}
	box := turtle.BBox{XMin: 0, YMin: 0, XMax: 1, YMax: 1}
	got := Fit(path, box, box, config.PathAbsolute)
	assert.Equal(t, "M 0.0000in 0.0000in L 1.0000in 0.0000in M 0.0000in 0.0000in L 0.0000in 1.0000in \n", got)
}

func TestFitLegacyRepeatsOrigin(t *testing.T) {
	got := Fit(linePath, lineShape, lineTarget, config.PathLegacy)
	assert.Equal(t, "m 0.0000in 0.2000in l 0.0000in 0.2000in \n", got)
}

func TestFitLineBreaks(t *testing.T) {
	path := turtle.Path{{Kind: turtle.MoveTo}}
	for i := 0; i < 24; i++ {
		path = append(path, turtle.Action{Kind: turtle.LineTo, DX: 1})
	}
	box := turtle.BBox{XMin: 0, YMin: -0.1, XMax: 24, YMax: 0.1}

	got := Fit(path, box, lineTarget, config.PathAbsolute)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Len(t, strings.Fields(lines[0]), 10*3)
	assert.Len(t, strings.Fields(lines[1]), 10*3)
	assert.Len(t, strings.Fields(lines[2]), 5*3)
}

func TestFitExactlyTenTokens(t *testing.T) {
	path := make(turtle.Path, 10)
	got := Fit(path, lineShape, lineTarget, config.PathLegacy)
	assert.Equal(t, 1, strings.Count(got, "\n"))
	assert.True(t, strings.HasSuffix(got, "\n"))
}
