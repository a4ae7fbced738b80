package svg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viktordanov/lsvg/config"
	"github.com/viktordanov/lsvg/turtle"
)

// Named page regions. The page origin is the top left corner.
//
//	+-----------------0-----------------+
//	|                top                |
//	+------------1---+------------------+
//	|       a        2        b         |
//	+----------+-2---+-----+------------+
//	0 left     1  center   3   right    4
//	+----------+-----3-----+------------+
//	|               main                |
//	+---------------4-------------------+
const (
	BoxTop    = "top"
	BoxA      = "a"
	BoxB      = "b"
	BoxLeft   = "left"
	BoxCenter = "center"
	BoxRight  = "right"
	BoxMain   = "main"
)

// DrawingBoxes are the regions that receive shapes, smallest order first.
var DrawingBoxes = []string{BoxLeft, BoxCenter, BoxRight, BoxMain}

var (
	edgeX = [5]float64{0.05, 0.35, 0.50, 0.65, 0.95}
	edgeY = [5]float64{0.03, 0.14, 0.20, 0.42, 0.97}
)

type Layout map[string]turtle.BBox

// LayoutBoxes scales the region edges to the configured page size.
func LayoutBoxes(cfg *config.Config) Layout {
	var x, y [5]float64
	for i := range edgeX {
		x[i] = edgeX[i] * cfg.PageWidth
		y[i] = edgeY[i] * cfg.PageHeight
	}
	return Layout{
		BoxMain:   {XMin: x[0], YMin: y[3], XMax: x[4], YMax: y[4]},
		BoxLeft:   {XMin: x[0], YMin: y[2], XMax: x[1], YMax: y[3]},
		BoxCenter: {XMin: x[1], YMin: y[2], XMax: x[3], YMax: y[3]},
		BoxRight:  {XMin: x[3], YMin: y[2], XMax: x[4], YMax: y[3]},
		BoxA:      {XMin: x[0], YMin: y[1], XMax: x[2], YMax: y[2]},
		BoxB:      {XMin: x[2], YMin: y[1], XMax: x[4], YMax: y[2]},
		BoxTop:    {XMin: x[0], YMin: y[0], XMax: x[4], YMax: y[1]},
	}
}

// Names returns the box names in a stable order.
func (l Layout) Names() []string {
	names := make([]string, 0, len(l))
	for k := range l {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DrawBoxes outlines every box with a rounded rectangle.
func DrawBoxes(l Layout, cfg *config.Config) string {
	var sb strings.Builder
	for _, name := range l.Names() {
		b := l[name]
		fmt.Fprintf(&sb, `<rect x="%.4fin" y="%.4fin" rx="0.1in" ry="0.1in" width="%.4fin" height="%.4fin" `+
			`style="fill: none; stroke: black; stroke-width: %.4fin;"/>`+"\n",
			b.XMin, b.YMin, b.Width(), b.Height(), cfg.LineWidth)
	}
	return sb.String()
}
