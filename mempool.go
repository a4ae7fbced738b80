package lsystem

type Buffer struct {
	Bytes []byte
	Len   int
}

func (b *Buffer) grow(need int) {
	newCap := 2 * len(b.Bytes)
	if newCap == 0 {
		newCap = 64
	}
	for newCap < need {
		newCap *= 2
	}
	newSlice := make([]byte, newCap)
	copy(newSlice, b.Bytes[:b.Len])
	b.Bytes = newSlice
}

// BufferPool holds two buffers: generation n is read from the swap buffer
// while generation n+1 is written to the active one.
type BufferPool struct {
	active   *Buffer
	inactive *Buffer

	swap bool
}

func NewBufferPool(capacity int) *BufferPool {
	return &BufferPool{
		active:   &Buffer{Bytes: make([]byte, capacity)},
		inactive: &Buffer{Bytes: make([]byte, capacity)},

		swap: false,
	}
}

func (m *BufferPool) Reset() {
	m.active.Len = 0
	m.inactive.Len = 0
	m.swap = false
}

func (m *BufferPool) GetActive() *Buffer {
	if m.swap {
		return m.inactive
	}
	return m.active
}

func (m *BufferPool) GetSwap() *Buffer {
	if m.swap {
		return m.active
	}
	return m.inactive
}

func (m *BufferPool) Append(c byte) {
	active := m.GetActive()
	if active.Len >= len(active.Bytes) {
		active.grow(active.Len + 1)
	}
	active.Bytes[active.Len] = c
	active.Len++
}

func (m *BufferPool) AppendString(s string) {
	active := m.GetActive()
	if active.Len+len(s) > len(active.Bytes) {
		active.grow(active.Len + len(s))
	}
	copy(active.Bytes[active.Len:], s)
	active.Len += len(s)
}

func (m *BufferPool) GetLen() int {
	return m.GetActive().Len
}

func (m *BufferPool) GetCap() int {
	return len(m.GetActive().Bytes)
}

// Swap exchanges the buffers. The previously written generation becomes
// readable through GetSwap.
func (m *BufferPool) Swap() {
	m.swap = !m.swap
}

func (m *BufferPool) ResetWritingHead() {
	m.GetActive().Len = 0
}

// ReadAll returns the written part of the active buffer. The slice is only
// valid until the next write.
func (m *BufferPool) ReadAll() []byte {
	active := m.GetActive()
	return active.Bytes[:active.Len]
}
