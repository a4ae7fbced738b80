// Package turtle interprets action strings as turtle-graphics motion.
//
// The turtle starts at the origin facing along +x. F and f advance one unit,
// + and - turn by the grammar angle, | turns around, [ and ] save and
// restore heading and position.
package turtle

import (
	"errors"
	"fmt"
	"math"

	lsystem "github.com/viktordanov/lsvg"
)

// minHalfExtent is the half size given to a bounding box axis with no extent.
const minHalfExtent = 0.1

var ErrStackUnderflow = errors.New("pop with empty stack")

// UnknownActionError reports a symbol outside the action alphabet.
type UnknownActionError struct {
	Symbol byte
	Offset int
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unimplemented action %q at offset %d", e.Symbol, e.Offset)
}

type ActionKind int

const (
	MoveTo ActionKind = iota
	LineTo
)

func (k ActionKind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is a relative move. DX and DY are offsets from the position the
// turtle held just before the action.
type Action struct {
	Kind   ActionKind
	DX, DY float64
}

type Path []Action

// LineCount returns the number of visible segments.
func (p Path) LineCount() int {
	n := 0
	for _, a := range p {
		if a.Kind == LineTo {
			n++
		}
	}
	return n
}

type BBox struct {
	XMin, YMin, XMax, YMax float64
}

func (b BBox) Width() float64  { return b.XMax - b.XMin }
func (b BBox) Height() float64 { return b.YMax - b.YMin }
func (b BBox) Area() float64   { return b.Width() * b.Height() }

func (b BBox) Center() (x, y float64) {
	return (b.XMin + b.XMax) / 2, (b.YMin + b.YMax) / 2
}

func (b *BBox) extend(x, y float64) {
	b.XMin = math.Min(b.XMin, x)
	b.YMin = math.Min(b.YMin, y)
	b.XMax = math.Max(b.XMax, x)
	b.YMax = math.Max(b.YMax, y)
}

// widen gives zero-size axes a minimum extent around their center.
func (b *BBox) widen() {
	if b.XMin == b.XMax {
		c := b.XMin
		b.XMin, b.XMax = c-minHalfExtent, c+minHalfExtent
	}
	if b.YMin == b.YMax {
		c := b.YMin
		b.YMin, b.YMax = c-minHalfExtent, c+minHalfExtent
	}
}

type state struct {
	direction float64
	x, y      float64
}

// Interpret runs the action string and returns the drawing actions and the
// bounding box of every visited position. The first action is always a
// MoveTo(0,0) marking the origin.
func Interpret(actions string, angle float64) (Path, BBox, error) {
	var (
		cur   state
		stack []state
		box   BBox
	)
	path := make(Path, 0, len(actions)/2+1)
	path = append(path, Action{Kind: MoveTo})

	for i := 0; i < len(actions); i++ {
		switch c := lsystem.Token(actions[i]); c {
		case lsystem.Forward, lsystem.Move:
			dy, dx := math.Sincos(cur.direction)
			cur.x += dx
			cur.y += dy
			kind := LineTo
			if c == lsystem.Move {
				kind = MoveTo
			}
			path = append(path, Action{Kind: kind, DX: dx, DY: dy})
		case lsystem.TurnLeft:
			cur.direction += angle
		case lsystem.TurnRight:
			cur.direction -= angle
		case lsystem.Reverse:
			cur.direction += math.Pi
		case lsystem.PushState:
			stack = append(stack, cur)
		case lsystem.PopState:
			if len(stack) == 0 {
				return nil, BBox{}, fmt.Errorf("offset %d: %w", i, ErrStackUnderflow)
			}
			saved := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			path = append(path, Action{Kind: MoveTo, DX: saved.x - cur.x, DY: saved.y - cur.y})
			cur = saved
		default:
			return nil, BBox{}, &UnknownActionError{Symbol: actions[i], Offset: i}
		}
		box.extend(cur.x, cur.y)
	}

	box.widen()
	return path, box, nil
}
