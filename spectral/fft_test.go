package spectral

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"
)

func TestForwardPeakFrequency(t *testing.T) {
	ts := Times(1.0, 1000.0)
	signal, err := GenerateSignal(ts, []float64{10.0}, []float64{1.0})
	require.NoError(t, err)

	engine := NewFFT()
	result, err := engine.Forward(signal, 1000.0)
	require.NoError(t, err)

	require.Len(t, result.Freqs, len(signal)/2)
	require.Len(t, result.Magnitude, len(signal)/2)
	require.Len(t, result.Spectrum, len(signal))

	peakIdx := floats.MaxIdx(result.Magnitude)
	assert.InDelta(t, 10.0, result.Freqs[peakIdx], 1.0)

	// Amplitude 1 splits evenly across the mirrored bins, so the
	// normalized one-sided magnitude at the peak is 0.5
	assert.InDelta(t, 0.5, result.Magnitude[peakIdx], 0.05)
}

func TestForwardFrequencyAxis(t *testing.T) {
	ts := Times(1.0, 1000.0)
	signal, err := GenerateSignal(ts, []float64{10.0}, []float64{1.0})
	require.NoError(t, err)

	result, err := NewFFT().Forward(signal, 1000.0)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Freqs[0])
	assert.InDelta(t, 1.0, result.Freqs[1], 1e-12)
	assert.InDelta(t, 499.0, result.Freqs[len(result.Freqs)-1], 1e-9)
}

func TestRoundTrip(t *testing.T) {
	ts := Times(1.0, 1000.0)
	signal, err := GenerateSignal(ts, []float64{10.0, 50.0}, []float64{1.0, 0.5})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	noisy := AddNoise(signal, 0.25, rng)

	engine := NewFFT()
	result, err := engine.Forward(noisy, 1000.0)
	require.NoError(t, err)

	reconstructed := engine.Inverse(result.Spectrum)
	require.Len(t, reconstructed, len(noisy))

	for i := range noisy {
		assert.InDelta(t, noisy[i], reconstructed[i], 1e-10)
	}
}

func TestRoundTripOddLength(t *testing.T) {
	signal := make([]float64, 101)
	rng := rand.New(rand.NewSource(13))
	for i := range signal {
		signal[i] = rng.NormFloat64()
	}

	engine := NewFFT()
	result, err := engine.Forward(signal, 100.0)
	require.NoError(t, err)

	reconstructed := engine.Inverse(result.Spectrum)
	require.Len(t, reconstructed, len(signal))

	for i := range signal {
		assert.InDelta(t, signal[i], reconstructed[i], 1e-10)
	}
}

func TestForwardValidation(t *testing.T) {
	engine := NewFFT()

	_, err := engine.Forward(nil, 1000.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = engine.Forward([]float64{1, 2, 3}, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = engine.Forward([]float64{1, 2, 3}, -44100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestInverseEmpty(t *testing.T) {
	assert.Empty(t, NewFFT().Inverse(nil))
}
