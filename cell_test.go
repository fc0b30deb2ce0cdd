package bint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCell(t *testing.T) {

	{
		c, err := NewCell(1, 0)
		require.EqualError(t, err, "invalid boundary")
		require.Nil(t, c)
	}

	c, err := NewCell(3, 6)
	require.NoError(t, err)
	require.Equal(t, uint(3), c.Value())
	require.Equal(t, uint(6), c.Boundary())
}

func TestCellUpDown(t *testing.T) {

	c, err := NewCell(4, 6)
	require.NoError(t, err)

	require.Equal(t, uint(5), c.Up())
	require.Equal(t, uint(0), c.Up())
	require.Equal(t, uint(5), c.Down())
	require.Equal(t, uint(5), c.Value())

	require.Equal(t, uint(1), c.UpBy(2))
	require.Equal(t, uint(4), c.DownBy(3))
	require.Equal(t, uint(6), c.Boundary())
}

func TestCellSequence(t *testing.T) {

	// initial value at the boundary normalizes to 0
	c, err := NewCell(6, 6)
	require.NoError(t, err)
	require.Equal(t, uint(0), c.Value())

	require.Equal(t, uint(5), c.Down())
	require.Equal(t, uint(0), c.Up())
	require.Equal(t, uint(1), c.Up())
	require.Equal(t, uint(3), c.UpBy(2))
}

func TestCellUpCount(t *testing.T) {

	const (
		initial  = uint(2)
		boundary = uint(5)
	)

	c, err := NewCell(initial, boundary)
	require.NoError(t, err)

	for n := uint(1); n <= 13; n++ {
		want := (initial + n) % boundary
		require.Equal(t, want, c.Up(), n)
		require.Equal(t, want, c.Value(), n)
	}
}
