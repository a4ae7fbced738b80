package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/viktordanov/lsvg/config"
	"github.com/viktordanov/lsvg/turtle"
)

const tokensPerLine = 10

// Transform maps abstract turtle coordinates onto the page:
// page = origin + scale*abstract.
type Transform struct {
	Scale            float64
	OriginX, OriginY float64
}

// FitTransform picks a uniform scale that makes the shape's box area equal
// to the target's area, and a translation that puts both centers on top of
// each other. Aspect ratio is not matched.
func FitTransform(shape, target turtle.BBox) Transform {
	scale := math.Sqrt(target.Area()) / math.Sqrt(shape.Area())
	tcx, tcy := target.Center()
	scx, scy := shape.Center()
	return Transform{
		Scale:   scale,
		OriginX: tcx - scale*scx,
		OriginY: tcy - scale*scy,
	}
}

func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.OriginX + t.Scale*x, t.OriginY + t.Scale*y
}

// Fit renders the path as path data fitted into target.
func Fit(path turtle.Path, shape, target turtle.BBox, mode config.PathMode) string {
	t := FitTransform(shape, target)
	w := &pathWriter{}

	var x, y float64
	for _, a := range path {
		x += a.DX
		y += a.DY
		switch mode {
		case config.PathLegacy:
			cmd := "m"
			if a.Kind == turtle.LineTo {
				cmd = "l"
			}
			w.token(cmd, t.OriginX, t.OriginY)
		default:
			cmd := "M"
			if a.Kind == turtle.LineTo {
				cmd = "L"
			}
			px, py := t.Apply(x, y)
			w.token(cmd, px, py)
		}
	}
	return w.String()
}

type pathWriter struct {
	sb  strings.Builder
	col int
}

func (w *pathWriter) token(cmd string, x, y float64) {
	fmt.Fprintf(&w.sb, "%s %.4fin %.4fin ", cmd, round(x), round(y))
	w.col++
	if w.col >= tokensPerLine {
		w.sb.WriteByte('\n')
		w.col = 0
	}
}

// round drops noise below the printed precision so that values like
// -1e-17 do not print as -0.0000.
func round(v float64) float64 {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		return 0
	}
	return v
}

func (w *pathWriter) String() string {
	if w.col > 0 {
		w.sb.WriteByte('\n')
		w.col = 0
	}
	return w.sb.String()
}
