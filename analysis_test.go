package lsystem

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyseGrowth(t *testing.T) {
	l := NewLSystem("algae", "A", 0, Rules{'A': "AB", 'B': "A"})
	l.PostRules = Rules{'A': "F"}

	report := l.AnalyseGrowth(4)
	require.Len(t, report.Generations, 5)

	lengths := make([]int, 0, 5)
	actions := make([]int, 0, 5)
	for _, g := range report.Generations {
		lengths = append(lengths, g.Length)
		actions = append(actions, g.Actions)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 8}, lengths)
	assert.Equal(t, []int{1, 1, 2, 3, 5}, actions)
	assert.Equal(t, 0.0, report.Generations[0].Growth)
	assert.InDelta(t, 1.6, report.Generations[4].Growth, 1e-9)
	assert.Greater(t, report.AverageGrowth(), 1.0)
}

func TestAnalyseGrowthCatalogNonDecreasing(t *testing.T) {
	catalog, report := DefaultCatalog()
	require.NoError(t, report.Err())

	for _, l := range catalog {
		g := l.AnalyseGrowth(3)
		for i := 1; i < len(g.Generations); i++ {
			assert.GreaterOrEqual(t, g.Generations[i].Length, g.Generations[i-1].Length, l.Title)
		}
	}
}

func TestRenderChart(t *testing.T) {
	l := NewLSystem("dragon", "+FX", 90, Rules{'X': "X+YF+", 'Y': "-FX-Y"})

	var buf bytes.Buffer
	require.NoError(t, l.AnalyseGrowth(5).RenderChart(&buf))
	assert.Contains(t, buf.String(), "echarts")
	assert.Contains(t, buf.String(), "Growth Analysis")
}
