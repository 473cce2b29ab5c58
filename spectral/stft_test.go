package spectral

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argonlab/timefreq/windowing"
)

// testSignal builds the reference two-component signal: 1 second at
// 1000 Hz, 10 Hz at amplitude 1.0 plus 50 Hz at amplitude 0.5.
func testSignal(t *testing.T) []float64 {
	t.Helper()

	ts := Times(1.0, 1000.0)
	signal, err := GenerateSignal(ts, []float64{10.0, 50.0}, []float64{1.0, 0.5})
	require.NoError(t, err)
	return signal
}

func TestSTFTShape(t *testing.T) {
	signal := testSignal(t)

	result, err := NewSTFT().Compute(signal, 1000.0, 256, 64, windowing.TypeHamming)
	require.NoError(t, err)

	expectedWindows := 1 + (len(signal)-256)/64
	assert.Equal(t, 12, expectedWindows)
	assert.Equal(t, expectedWindows, result.NumWindows)
	assert.Equal(t, 129, result.FreqBins)

	require.Len(t, result.Matrix, expectedWindows)
	for _, row := range result.Matrix {
		assert.Len(t, row, 129)
	}

	require.Len(t, result.Times, expectedWindows)
	require.Len(t, result.Freqs, 129)
}

func TestSTFTAxes(t *testing.T) {
	signal := testSignal(t)

	result, err := NewSTFT().Compute(signal, 1000.0, 256, 64, windowing.TypeHamming)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Times[0])
	assert.InDelta(t, 0.064, result.Times[1], 1e-12)

	assert.Equal(t, 0.0, result.Freqs[0])
	assert.InDelta(t, 1000.0/256.0, result.Freqs[1], 1e-12)
	assert.InDelta(t, 500.0, result.Freqs[len(result.Freqs)-1], 1e-9)

	assert.InDelta(t, 1000.0/256.0, result.FreqResolution, 1e-12)
	assert.InDelta(t, 0.064, result.TimeResolution, 1e-12)
}

func TestSTFTValidation(t *testing.T) {
	signal := testSignal(t)
	engine := NewSTFT()

	cases := []struct {
		name       string
		windowSize int
		hopLength  int
	}{
		{"zero window size", 0, 64},
		{"negative window size", -256, 64},
		{"zero hop length", 256, 0},
		{"negative hop length", 256, -64},
		{"hop larger than window", 256, 257},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Compute(signal, 1000.0, tc.windowSize, tc.hopLength, windowing.TypeHamming)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestSTFTSignalTooShort(t *testing.T) {
	signal := make([]float64, 100)

	_, err := NewSTFT().Compute(signal, 1000.0, 256, 64, windowing.TypeHamming)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "shorter than window_size")
}

func TestSTFTUnknownWindowType(t *testing.T) {
	signal := testSignal(t)

	_, err := NewSTFT().Compute(signal, 1000.0, 256, 64, windowing.Type("triangular"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, windowing.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "triangular")
}

func TestSTFTDeterministic(t *testing.T) {
	signal := testSignal(t)
	engine := NewSTFT()

	first, err := engine.Compute(signal, 1000.0, 256, 64, windowing.TypeHanning)
	require.NoError(t, err)
	second, err := engine.Compute(signal, 1000.0, 256, 64, windowing.TypeHanning)
	require.NoError(t, err)

	require.Equal(t, first.NumWindows, second.NumWindows)
	for i := range first.Matrix {
		for k := range first.Matrix[i] {
			assert.Equal(t, first.Matrix[i][k], second.Matrix[i][k])
		}
	}
}

func TestSTFTDisjointFrames(t *testing.T) {
	signal := testSignal(t)

	// hop == window gives non-overlapping frames
	result, err := NewSTFT().Compute(signal, 1000.0, 250, 250, windowing.TypeBlackman)
	require.NoError(t, err)

	assert.Equal(t, 4, result.NumWindows)
	assert.Equal(t, 250/2+1, result.FreqBins)
}
