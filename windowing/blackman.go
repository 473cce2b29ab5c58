package windowing

import (
	"fmt"
	"math"
)

// Blackman represents a symmetric Blackman window function
type Blackman struct {
	size         int
	coefficients []float64
}

// NewBlackman creates a new Blackman window of the given length
func NewBlackman(size int) (*Blackman, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: window size must be at least 2, got %d", ErrInvalidArgument, size)
	}
	b := &Blackman{size: size}
	b.generate()
	return b, nil
}

// generate creates Blackman window coefficients.
// The classic 0.42/0.5/0.08 coefficients keep every sample >= 0.
func (b *Blackman) generate() {
	b.coefficients = make([]float64, b.size)

	denominator := float64(b.size - 1)
	a0, a1, a2 := 0.42, 0.5, 0.08

	for i := 0; i < b.size; i++ {
		arg := 2 * math.Pi * float64(i) / denominator
		b.coefficients[i] = a0 - a1*math.Cos(arg) + a2*math.Cos(2*arg)
	}
}

// Apply applies the window to a frame (creates new array)
func (b *Blackman) Apply(frame []float64) ([]float64, error) {
	if len(frame) != b.size {
		return nil, fmt.Errorf("%w: frame length (%d) doesn't match window size (%d)", ErrInvalidArgument, len(frame), b.size)
	}

	windowed := make([]float64, b.size)
	for i := 0; i < b.size; i++ {
		windowed[i] = frame[i] * b.coefficients[i]
	}

	return windowed, nil
}

// ApplyInPlace applies the window to a frame in-place
func (b *Blackman) ApplyInPlace(frame []float64) error {
	if len(frame) != b.size {
		return fmt.Errorf("%w: frame length (%d) doesn't match window size (%d)", ErrInvalidArgument, len(frame), b.size)
	}

	for i := 0; i < b.size; i++ {
		frame[i] *= b.coefficients[i]
	}

	return nil
}

// GetCoefficients returns a copy of the window coefficients
func (b *Blackman) GetCoefficients() []float64 {
	coeffs := make([]float64, len(b.coefficients))
	copy(coeffs, b.coefficients)
	return coeffs
}

// GetSize returns the window size
func (b *Blackman) GetSize() int {
	return b.size
}

// GetType returns the window type
func (b *Blackman) GetType() Type {
	return TypeBlackman
}
