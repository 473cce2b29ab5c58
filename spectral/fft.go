package spectral

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT wraps the external discrete Fourier transform primitive
type FFT struct {
	// No state needed - the transform is stateless
}

// FFTResult holds the frequency-domain representation of a full signal
type FFTResult struct {
	Freqs      []float64    // One-sided frequency axis in Hz, first n/2 bins
	Magnitude  []float64    // Amplitude-normalized magnitudes, first n/2 bins
	Spectrum   []complex128 // Raw untruncated complex spectrum, length n
	SampleRate float64
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Forward computes the discrete Fourier transform of the full signal.
// Magnitudes are divided by the signal length so they are independent of
// input size, and only the first n/2 bins are returned since the upper
// half mirrors the lower half for real input. The raw untruncated complex
// spectrum is kept for inversion.
func (f *FFT) Forward(signal []float64, sampleRate float64) (*FFTResult, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("%w: empty signal", ErrInvalidArgument)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidArgument, sampleRate)
	}

	n := len(signal)
	spectrum := fft.FFTReal(signal)

	half := n / 2
	freqs := make([]float64, half)
	magnitude := make([]float64, half)
	for k := 0; k < half; k++ {
		freqs[k] = float64(k) * sampleRate / float64(n)
		magnitude[k] = cmplx.Abs(spectrum[k]) / float64(n)
	}

	return &FFTResult{
		Freqs:      freqs,
		Magnitude:  magnitude,
		Spectrum:   spectrum,
		SampleRate: sampleRate,
	}, nil
}

// Compute computes the raw transform of a real frame
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	// mjibson/go-dsp handles all sizes, including non-power-of-2
	return fft.FFTReal(x)
}

// Inverse applies the inverse transform to a full untruncated complex
// spectrum and returns the real part of the result. Round trip through
// Forward reproduces the input to numerical precision.
func (f *FFT) Inverse(spectrum []complex128) []float64 {
	if len(spectrum) == 0 {
		return []float64{}
	}

	result := fft.IFFT(spectrum)
	signal := make([]float64, len(result))
	for i, v := range result {
		signal[i] = real(v)
	}

	return signal
}
