package intmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt2ShortBasic(t *testing.T) {
	t.Parallel()

	m := New()
	require.Equal(t, 0, m.Len())
	require.False(t, m.Contains(7))

	m.Put(7, 1)
	v, ok := m.Get(7)
	require.True(t, ok)
	require.Equal(t, int16(1), v)
	require.Equal(t, 1, m.Len())

	// Overwrite does not change size.
	m.Put(7, 2)
	v, _ = m.Get(7)
	require.Equal(t, int16(2), v)
	require.Equal(t, 1, m.Len())
}

func TestInt2ShortZeroAndNegativeKeys(t *testing.T) {
	t.Parallel()

	m := New()
	m.Put(0, 5)
	m.Put(-1, 6)

	v, ok := m.Get(0)
	require.True(t, ok)
	require.Equal(t, int16(5), v)

	v, ok = m.Get(-1)
	require.True(t, ok)
	require.Equal(t, int16(6), v)

	_, ok = m.Get(1)
	require.False(t, ok)
}

func TestInt2ShortGrow(t *testing.T) {
	t.Parallel()

	m := New()
	const n = 10_000
	for i := range int32(n) {
		m.Put(i*31, int16(i%1000))
	}
	require.Equal(t, n, m.Len())

	for i := range int32(n) {
		v, ok := m.Get(i * 31)
		require.True(t, ok)
		require.Equal(t, int16(i%1000), v)
	}
	require.False(t, m.Contains(n*31))
}

func TestInt2ShortWithCapacity(t *testing.T) {
	t.Parallel()

	m := NewWithCapacity(1000)
	for i := range int32(1000) {
		m.Put(i, int16(i))
	}
	require.Equal(t, 1000, m.Len())
}
