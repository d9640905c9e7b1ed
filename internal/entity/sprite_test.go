package entity

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCeilSize(t *testing.T) {
	require.Equal(t, image.Pt(10, 20), ceilSize(10, 20))
	require.Equal(t, image.Pt(11, 21), ceilSize(10.0001, 20.5))
	require.Equal(t, image.Pt(1, 1), ceilSize(0.0004, 0.9))
	require.Equal(t, image.Point{}, ceilSize(0, 0))
}
