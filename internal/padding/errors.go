package padding

import (
	"errors"

	"volumizer/internal/entropy"
)

var (
	ErrInvalidConfiguration = errors.New("invalid padding configuration")
	// ErrEntropySource is returned when random bytes could not be drawn.
	// Generation never falls back to predictable filler.
	ErrEntropySource = entropy.ErrEntropy
)
