package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	require.Equal(t, "OK", OK.String())
	require.Equal(t, "FRAME_ERROR", FrameError.String())
	require.Equal(t, "READING_ERROR", ReadingError.String())

	require.NoError(t, OK.Err())
	require.ErrorIs(t, FrameError.Err(), ErrFrame)
	require.ErrorIs(t, ReadingError.Err(), ErrReading)
}
