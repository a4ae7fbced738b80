package lsystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPoolSwap(t *testing.T) {
	pool := NewBufferPool(4)
	pool.AppendString("AB")
	assert.Equal(t, "AB", string(pool.ReadAll()))

	pool.Swap()
	pool.ResetWritingHead()
	assert.Equal(t, 0, pool.GetLen())
	assert.Equal(t, "AB", string(pool.GetSwap().Bytes[:pool.GetSwap().Len]))

	pool.Append('C')
	assert.Equal(t, "C", string(pool.ReadAll()))
}

func TestBufferPoolGrowKeepsSwapBuffer(t *testing.T) {
	pool := NewBufferPool(2)
	pool.AppendString("XY")
	pool.Swap()
	pool.ResetWritingHead()

	pool.AppendString("a long generation that outgrows the buffer")
	pool.Append('!')

	assert.Equal(t, "a long generation that outgrows the buffer!", string(pool.ReadAll()))
	assert.GreaterOrEqual(t, pool.GetCap(), pool.GetLen())
	swap := pool.GetSwap()
	assert.Equal(t, "XY", string(swap.Bytes[:swap.Len]))
}

func TestBufferPoolZeroCapacity(t *testing.T) {
	pool := NewBufferPool(0)
	pool.Append('F')
	pool.AppendString("++")
	assert.Equal(t, "F++", string(pool.ReadAll()))

	pool.Reset()
	assert.Equal(t, 0, pool.GetLen())
}
