package lsystem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rand"
)

var benchmarkRules = Rules{
	'X': "F+[[X]-X]-F[-FX]+X",
	'F': "FF",
}

func BenchmarkExpand(b *testing.B) {
	tests := []struct {
		name  string
		iters int
	}{
		{"4", 4},
		{"6", 6},
		{"8", 8},
	}

	b.ResetTimer()
	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Expand(benchmarkRules, "X", tt.iters)
			}
		})
	}
}

func BenchmarkMinimize(b *testing.B) {
	s := Expand(benchmarkRules, "X", 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Minimize(s)
	}
}

func TestExpandAlgae(t *testing.T) {
	rules := Rules{'A': "AB", 'B': "A"}

	assertState(t, "A", Expand(rules, "A", 0))
	assertState(t, "AB", Expand(rules, "A", 1))
	assertState(t, "ABA", Expand(rules, "A", 2))
	assertState(t, "ABAAB", Expand(rules, "A", 3))
	assertState(t, "ABAABABA", Expand(rules, "A", 4))
}

func TestExpandZeroGenerationsReturnsStart(t *testing.T) {
	for _, start := range []string{"", "F", "X+YF", "+BABA"} {
		assert.Equal(t, start, Expand(benchmarkRules, start, 0))
	}
}

func TestExpandPassesThroughSymbolsWithoutRules(t *testing.T) {
	assertState(t, "F", Expand(Rules{}, "F", 3))
	assertState(t, "F+ZZ", Expand(Rules{'X': "ZZ"}, "F+X", 3))
	// multi-byte symbols survive untouched
	assertState(t, "é[F]é", Expand(Rules{'A': "F"}, "é[A]é", 2))
}

func TestExpandEmptySuccessor(t *testing.T) {
	assertState(t, "FF", Expand(Rules{'X': ""}, "FXFX", 1))
}

func TestExpandLengthNonDecreasing(t *testing.T) {
	r := rand.New(7)
	const alphabet = "ABXYF+-[]"
	randomString := func(n int) string {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(alphabet[r.Intn(len(alphabet))])
		}
		return sb.String()
	}

	for i := 0; i < 50; i++ {
		rules := Rules{
			'A': randomString(1 + r.Intn(5)),
			'B': randomString(1 + r.Intn(5)),
			'X': randomString(1 + r.Intn(5)),
		}
		start := randomString(1 + r.Intn(4))
		prev := len(start)
		for g := 1; g <= 5; g++ {
			n := len(Expand(rules, start, g))
			assert.GreaterOrEqual(t, n, prev, "rules %v start %q generation %d", rules, start, g)
			prev = n
		}
	}
}

func TestMinimize(t *testing.T) {
	assertState(t, "F[+][-]", Minimize("F[+X][-X]"))
	assertState(t, "Ff+-|[]", Minimize("AFfB+-C|[]D "))
	assertState(t, "", Minimize("XYZ"))
}

func TestMinimizeIdempotent(t *testing.T) {
	r := rand.New(11)
	for i := 0; i < 200; i++ {
		b := make([]byte, r.Intn(64))
		for j := range b {
			b[j] = byte(r.Intn(128))
		}
		once := Minimize(string(b))
		assert.Equal(t, once, Minimize(once))
		for j := 0; j < len(once); j++ {
			assert.True(t, IsAction(Token(once[j])))
		}
	}
}

func TestElaborate(t *testing.T) {
	l := NewLSystem("branch", "X", 30, Rules{'X': "F[+X][-X]"})

	assertState(t, "X", l.Iterate(0))
	assertState(t, "", l.Elaborate(0))
	assertState(t, "F[+X][-X]", l.Iterate(1))
	assertState(t, "F[+][-]", l.Elaborate(1))
}

func TestElaborateAppliesPostRulesOnce(t *testing.T) {
	l := NewLSystem("gosper", "A", 60, Rules{
		'A': "A-B--B+A++AA+B-",
		'B': "+A-BB--B-A++A+B",
	})
	l.PostRules = Rules{'A': "F", 'B': "F"}

	assertState(t, "F", l.Elaborate(0))
	assertState(t, "F-F--F+F++FF+F-", l.Elaborate(1))

	// post rules that produce more post-rule symbols are not re-applied
	l.PostRules = Rules{'A': "AF", 'B': "F"}
	assertState(t, "F", l.Elaborate(0))
}

func TestAngleRadians(t *testing.T) {
	l := NewLSystem("quarter", "F", 90, Rules{})
	assert.InDelta(t, 1.5707963, l.AngleRadians(), 1e-6)
}

func TestRulesString(t *testing.T) {
	rules := NewRules(
		ProductionRule{Predecessor: 'Y', Successor: "-FX-Y"},
		ProductionRule{Predecessor: 'X', Successor: "X+YF+"},
	)
	assert.Equal(t, "{\"X\": `X+YF+`, \"Y\": `-FX-Y`}", rules.String())
	assert.True(t, rules.Variables().Contains('X'))
	assert.False(t, rules.Variables().Contains('F'))
}

func assertState(t *testing.T, expected, actual string) {
	t.Helper()
	assert.Equal(t, len(expected), len(actual))
	assert.Equal(t, expected, actual)
}
