// Package entropy sources unpredictable bytes and uniform integers for padding.
//
// Every helper takes a Source so callers can swap the system CSPRNG for a
// faster keystream generator, or for a failing reader in tests. There is no
// fallback to a predictable generator: a broken source is always an error.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sort"

	"github.com/pkg/errors"
)

var ErrEntropy = errors.New("entropy source failure")

// Source fills buffers with cryptographically unpredictable bytes.
// Implementations must be safe for concurrent use.
type Source interface {
	io.Reader
}

// SourceError reports a Source that could not deliver bytes. It matches
// ErrEntropy under errors.Is.
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return ErrEntropy.Error() + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == ErrEntropy }

// NewFunc is a constructor function for creating sources
type NewFunc func() Source

// Registry maps source names to constructor functions
var Registry = map[string]NewFunc{
	"system":   System,
	"chacha20": func() Source { return NewChaCha20(rand.Reader) },
}

// ByName creates a source by its configuration name.
func ByName(name string) (Source, error) {
	fn, ok := Registry[name]
	if !ok {
		return nil, errors.Errorf("unknown entropy source: %s", name)
	}
	return fn(), nil
}

// Names lists registered source names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// System returns the operating system CSPRNG.
func System() Source {
	return rand.Reader
}

// Fill reads exactly len(buf) bytes from src.
func Fill(src Source, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if _, err := io.ReadFull(src, buf); err != nil {
		return errors.Wrapf(&SourceError{Err: err}, "read %d bytes", len(buf))
	}
	return nil
}

// Uint64 draws 8 bytes from src.
func Uint64(src Source) (uint64, error) {
	var b [8]byte
	if err := Fill(src, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// Intn returns a uniform value in [0, n). Modulo bias is removed by
// rejecting draws below 2^64 mod n.
func Intn(src Source, n int) (int, error) {
	if n <= 0 {
		return 0, errors.Errorf("invalid argument to Intn: %d", n)
	}
	if n == 1 {
		return 0, nil
	}
	v, err := uint64n(src, uint64(n))
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// uint64n returns a uniform value in [0, n) for n > 0.
func uint64n(src Source, n uint64) (uint64, error) {
	thresh := -n % n
	for {
		v, err := Uint64(src)
		if err != nil {
			return 0, err
		}
		if v >= thresh {
			return v % n, nil
		}
	}
}

// IntRange returns a uniform value in [min, max] inclusive. The span is
// computed in uint64 so ranges as wide as [math.MinInt, math.MaxInt] work.
func IntRange(src Source, min, max int) (int, error) {
	if min >= max {
		return min, nil
	}
	span := uint64(max) - uint64(min) + 1
	var (
		v   uint64
		err error
	)
	if span == 0 {
		v, err = Uint64(src)
	} else {
		v, err = uint64n(src, span)
	}
	if err != nil {
		return 0, err
	}
	return min + int(v), nil
}

// Shuffle permutes n elements with Fisher-Yates using src for every swap.
func Shuffle(src Source, n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		j, err := Intn(src, i+1)
		if err != nil {
			return err
		}
		swap(i, j)
	}
	return nil
}
