package spectral

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidArgument marks validation failures on analysis parameters
var ErrInvalidArgument = errors.New("invalid argument")

// Times returns uniformly spaced sample times starting at zero, endpoint
// excluded. The number of samples is round(duration * sampleRate).
func Times(duration, sampleRate float64) []float64 {
	n := int(math.Round(duration * sampleRate))
	if n <= 0 {
		return []float64{}
	}

	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) / sampleRate
	}

	return t
}

// GenerateSignal synthesizes a composite signal as the elementwise sum of
// amplitude * sin(2*pi*frequency*t) over all components. Zero components
// yields the all-zero signal. Frequencies above Nyquist are not rejected;
// aliasing is the caller's responsibility.
func GenerateSignal(t, frequencies, amplitudes []float64) ([]float64, error) {
	if len(frequencies) != len(amplitudes) {
		return nil, fmt.Errorf("%w: frequencies (%d) and amplitudes (%d) must have equal length",
			ErrInvalidArgument, len(frequencies), len(amplitudes))
	}

	signal := make([]float64, len(t))
	component := make([]float64, len(t))

	for c, freq := range frequencies {
		for i, ti := range t {
			component[i] = math.Sin(2 * math.Pi * freq * ti)
		}
		floats.AddScaled(signal, amplitudes[c], component)
	}

	return signal, nil
}

// AddNoise returns a copy of the signal with Gaussian white noise of the
// given amplitude added. The caller supplies the random source so results
// stay reproducible.
func AddNoise(signal []float64, amplitude float64, rng *rand.Rand) []float64 {
	noisy := make([]float64, len(signal))
	for i, s := range signal {
		noisy[i] = s + amplitude*rng.NormFloat64()
	}
	return noisy
}
