// Package padding appends randomized, inert markup to a payload so its
// transmitted size says little about the real content.
package padding

import (
	"encoding/base64"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"volumizer/internal/entropy"
	"volumizer/internal/flog"
	"volumizer/internal/pkg/buffer"
	"volumizer/internal/pkg/iterator"
)

const (
	minMultiple = 2
	maxMultiple = 4

	// MaxFragments bounds the count accepted by GenerateMultiple.
	MaxFragments = 64
)

type options struct {
	src     entropy.Source
	formats []Format
}

type Option func(*options)

// WithSource draws all randomness from src instead of the system CSPRNG.
func WithSource(src entropy.Source) Option {
	return func(o *options) { o.src = src }
}

// WithFormats restricts the catalog. Duplicates are collapsed.
func WithFormats(formats ...Format) Option {
	return func(o *options) { o.formats = append([]Format{}, formats...) }
}

// Generator produces padding. It is safe for concurrent use; SetRange swaps
// the whole size window atomically.
type Generator struct {
	rng     atomic.Pointer[Range]
	formats []Format
	src     entropy.Source
}

// New creates a generator padding between min and max bytes.
func New(min, max int, opts ...Option) (*Generator, error) {
	r, err := NewRange(min, max)
	if err != nil {
		return nil, err
	}

	o := options{src: entropy.System()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		return nil, fmt.Errorf("%w: nil entropy source", ErrInvalidConfiguration)
	}

	formats := AllFormats()
	if o.formats != nil {
		formats = nil
		for _, f := range o.formats {
			if !f.Valid() {
				return nil, fmt.Errorf("%w: unknown format %s", ErrInvalidConfiguration, f)
			}
			if !slices.Contains(formats, f) {
				formats = append(formats, f)
			}
		}
		if len(formats) == 0 {
			return nil, fmt.Errorf("%w: empty format catalog", ErrInvalidConfiguration)
		}
	}

	g := &Generator{formats: formats, src: o.src}
	g.rng.Store(&r)
	return g, nil
}

// NewDefault creates a generator with the 50KB to 5MB window.
func NewDefault(opts ...Option) (*Generator, error) {
	return New(DefaultMinSize, DefaultMaxSize, opts...)
}

// Generate appends one padding fragment of random size and format to content.
func (g *Generator) Generate(content string) (string, error) {
	r := g.rng.Load()
	size, err := entropy.IntRange(g.src, r.Min, r.Max)
	if err != nil {
		return "", err
	}
	i, err := entropy.Intn(g.src, len(g.formats))
	if err != nil {
		return "", err
	}
	f := g.formats[i]

	frag, err := g.Render(f, size)
	if err != nil {
		return "", err
	}
	flog.Debugf("padding %d bytes with %s", size, f)
	return content + frag, nil
}

// GenerateMultiple splits one random size evenly over count fragments in
// shuffled formats. A count of zero or less picks 2 to 4 at random; counts
// above MaxFragments are rejected. The division remainder is dropped.
func (g *Generator) GenerateMultiple(content string, count int) (string, error) {
	if count > MaxFragments {
		return "", fmt.Errorf("%w: fragment count %d exceeds %d", ErrInvalidConfiguration, count, MaxFragments)
	}
	var err error
	if count <= 0 {
		count, err = entropy.IntRange(g.src, minMultiple, maxMultiple)
		if err != nil {
			return "", err
		}
	}

	r := g.rng.Load()
	total, err := entropy.IntRange(g.src, r.Min, r.Max)
	if err != nil {
		return "", err
	}
	per := total / count

	shuffled := slices.Clone(g.formats)
	if err := entropy.Shuffle(g.src, len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}); err != nil {
		return "", err
	}
	it := &iterator.Iterator[Format]{Items: shuffled}

	var b strings.Builder
	b.Grow(len(content))
	b.WriteString(content)
	for range count {
		frag, err := g.Render(it.Next(), per)
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
	}
	flog.Debugf("padding %d bytes across %d fragments", per*count, count)
	return b.String(), nil
}

// Render produces a single fragment of format f whose payload encodes
// size*3/4 random bytes.
func (g *Generator) Render(f Format, size int) (string, error) {
	if !f.Valid() {
		return "", fmt.Errorf("unknown padding format %s", f)
	}
	if size < 0 {
		return "", fmt.Errorf("negative padding size %d", size)
	}

	bp := buffer.Get(rawSize(size))
	defer buffer.Put(bp)
	if err := entropy.Fill(g.src, *bp); err != nil {
		return "", err
	}
	return f.Render(base64.StdEncoding.EncodeToString(*bp)), nil
}

// SetRange replaces the size window. On error the previous window stays.
func (g *Generator) SetRange(min, max int) error {
	r, err := NewRange(min, max)
	if err != nil {
		return err
	}
	g.rng.Store(&r)
	return nil
}

// Range returns the current size window.
func (g *Generator) Range() Range {
	return *g.rng.Load()
}

// Formats returns a copy of the catalog this generator draws from.
func (g *Generator) Formats() []Format {
	return slices.Clone(g.formats)
}

func (g *Generator) Config() Config {
	r := g.rng.Load()
	return Config{
		MinSize:          r.Min,
		MaxSize:          r.Max,
		MinSizeKB:        toKB(r.Min),
		MaxSizeKB:        toKB(r.Max),
		AvailableMethods: len(g.formats),
	}
}
