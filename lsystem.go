package lsystem

import (
	"math"
	"strings"
)

// LSystem is one grammar definition. It is read-only once built.
type LSystem struct {
	Title     string
	Refs      []string
	Start     string
	Angle     float64 // degrees
	Orders    []int
	Rules     Rules
	PostRules Rules
}

func NewLSystem(title, start string, angle float64, rules Rules) *LSystem {
	return &LSystem{
		Title:     title,
		Start:     start,
		Angle:     angle,
		Orders:    []int{1, 2, 3, 4},
		Rules:     rules,
		PostRules: Rules{},
	}
}

// AngleRadians returns the turning angle in radians.
func (l *LSystem) AngleRadians() float64 {
	return l.Angle * math.Pi / 180
}

// Iterate rewrites the start string n times under the main rules.
func (l *LSystem) Iterate(n int) string {
	return Expand(l.Rules, l.Start, n)
}

// Elaborate produces the action string for the given order: n generations
// of the main rules, one pass of the post rules, then Minimize.
func (l *LSystem) Elaborate(order int) string {
	basic := l.Iterate(order)
	post := Expand(l.PostRules, basic, 1)
	return Minimize(post)
}

// Expand rewrites start for the given number of generations. Each symbol
// with a rule is replaced by its successor, every other symbol is kept.
func Expand(rules Rules, start string, generations int) string {
	if generations <= 0 || len(rules) == 0 {
		return start
	}
	pool := NewBufferPool(2 * len(start))
	pool.AppendString(start)

	for i := 0; i < generations; i++ {
		pool.Swap()
		pool.ResetWritingHead()
		src := pool.GetSwap()
		for _, c := range src.Bytes[:src.Len] {
			if successor, ok := rules[Token(c)]; ok {
				pool.AppendString(successor)
			} else {
				pool.Append(c)
			}
		}
	}
	return string(pool.ReadAll())
}

// Minimize drops every symbol that is not an action token.
func Minimize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if IsAction(Token(s[i])) {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
