package padding

import (
	"fmt"
	"math"
)

const (
	DefaultMinSize = 50 * 1024       // 50KB
	DefaultMaxSize = 5 * 1024 * 1024 // 5MB

	// MaxSize bounds a single padding draw.
	MaxSize = 1 << 30 // 1GB
)

// Range is an inclusive padding size window in bytes.
type Range struct {
	Min int
	Max int
}

// NewRange validates and returns a Range.
func NewRange(min, max int) (Range, error) {
	r := Range{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func (r Range) Validate() error {
	if r.Min < 0 {
		return fmt.Errorf("%w: min size %d is negative", ErrInvalidConfiguration, r.Min)
	}
	if r.Max < 0 {
		return fmt.Errorf("%w: max size %d is negative", ErrInvalidConfiguration, r.Max)
	}
	if r.Max > MaxSize {
		return fmt.Errorf("%w: max size %d exceeds limit %d", ErrInvalidConfiguration, r.Max, MaxSize)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min size %d exceeds max size %d", ErrInvalidConfiguration, r.Min, r.Max)
	}
	return nil
}

// Config is a read-only snapshot of a Generator's settings.
type Config struct {
	MinSize          int     `yaml:"min_size" json:"minSize"`
	MaxSize          int     `yaml:"max_size" json:"maxSize"`
	MinSizeKB        float64 `yaml:"min_size_kb" json:"minSizeKB"`
	MaxSizeKB        float64 `yaml:"max_size_kb" json:"maxSizeKB"`
	AvailableMethods int     `yaml:"available_methods" json:"availableMethods"`
}

// toKB converts bytes to KB rounded to two decimals.
func toKB(n int) float64 {
	return math.Round(float64(n)/1024*100) / 100
}

// rawSize is the number of random bytes whose base64 encoding is about size
// bytes long.
func rawSize(size int) int {
	return size/4*3 + size%4*3/4
}
