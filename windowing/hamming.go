package windowing

import (
	"fmt"
	"math"
)

// Hamming represents a symmetric Hamming window function
type Hamming struct {
	size         int
	coefficients []float64
}

// NewHamming creates a new Hamming window of the given length.
// The length must be at least 2 because the coefficient formula divides
// by size-1.
func NewHamming(size int) (*Hamming, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: window size must be at least 2, got %d", ErrInvalidArgument, size)
	}
	h := &Hamming{size: size}
	h.generate()
	return h, nil
}

// generate creates Hamming window coefficients
func (h *Hamming) generate() {
	h.coefficients = make([]float64, h.size)

	denominator := float64(h.size - 1)
	for i := 0; i < h.size; i++ {
		h.coefficients[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/denominator)
	}
}

// Apply applies the window to a frame (creates new array)
func (h *Hamming) Apply(frame []float64) ([]float64, error) {
	if len(frame) != h.size {
		return nil, fmt.Errorf("%w: frame length (%d) doesn't match window size (%d)", ErrInvalidArgument, len(frame), h.size)
	}

	windowed := make([]float64, h.size)
	for i := 0; i < h.size; i++ {
		windowed[i] = frame[i] * h.coefficients[i]
	}

	return windowed, nil
}

// ApplyInPlace applies the window to a frame in-place
func (h *Hamming) ApplyInPlace(frame []float64) error {
	if len(frame) != h.size {
		return fmt.Errorf("%w: frame length (%d) doesn't match window size (%d)", ErrInvalidArgument, len(frame), h.size)
	}

	for i := 0; i < h.size; i++ {
		frame[i] *= h.coefficients[i]
	}

	return nil
}

// GetCoefficients returns a copy of the window coefficients
func (h *Hamming) GetCoefficients() []float64 {
	coeffs := make([]float64, len(h.coefficients))
	copy(coeffs, h.coefficients)
	return coeffs
}

// GetSize returns the window size
func (h *Hamming) GetSize() int {
	return h.size
}

// GetType returns the window type
func (h *Hamming) GetType() Type {
	return TypeHamming
}
