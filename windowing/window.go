package windowing

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks validation failures on window parameters
var ErrInvalidArgument = errors.New("invalid argument")

// Type identifies a window function family
type Type string

const (
	TypeHamming  Type = "hamming"
	TypeHanning  Type = "hanning"
	TypeBlackman Type = "blackman"
)

// Window is the common interface of all window generators
type Window interface {
	Apply(frame []float64) ([]float64, error)
	ApplyInPlace(frame []float64) error
	GetCoefficients() []float64
	GetSize() int
	GetType() Type
}

// ParseType validates a window type name against the supported families
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeHamming, TypeHanning, TypeBlackman:
		return Type(s), nil
	default:
		return "", fmt.Errorf("%w: unsupported window type: %q", ErrInvalidArgument, s)
	}
}

// New creates a window of the given family and length
func New(t Type, size int) (Window, error) {
	switch t {
	case TypeHamming:
		return NewHamming(size)
	case TypeHanning:
		return NewHanning(size)
	case TypeBlackman:
		return NewBlackman(size)
	default:
		return nil, fmt.Errorf("%w: unsupported window type: %q", ErrInvalidArgument, t)
	}
}

// ApplyWindow multiplies a frame elementwise by a window of the matching
// family and length
func ApplyWindow(frame []float64, t Type) ([]float64, error) {
	w, err := New(t, len(frame))
	if err != nil {
		return nil, err
	}
	return w.Apply(frame)
}
