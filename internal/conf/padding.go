package conf

import (
	"fmt"
	"slices"

	"volumizer/internal/entropy"
	"volumizer/internal/padding"
)

// Padding configures the padding generator.
type Padding struct {
	MinSize int `yaml:"min_size"` // Minimum padding bytes (default: 51200)
	MaxSize int `yaml:"max_size"` // Maximum padding bytes (default: 5242880)

	// Mode selects single (one fragment) or multiple (count fragments)
	Mode  string `yaml:"mode"`
	Count int    `yaml:"count"` // 0 picks 2-4 per call

	Formats_ []string         `yaml:"formats"` // empty means all
	Source   string           `yaml:"source"`  // system, chacha20
	Formats  []padding.Format `yaml:"-"`
}

func (p *Padding) setDefaults() {
	if p.MinSize == 0 && p.MaxSize == 0 {
		p.MinSize = padding.DefaultMinSize
		p.MaxSize = padding.DefaultMaxSize
	}
	if p.Mode == "" {
		p.Mode = "single"
	}
	if p.Source == "" {
		p.Source = "system"
	}
}

func (p *Padding) validate() []error {
	var errors []error

	if _, err := padding.NewRange(p.MinSize, p.MaxSize); err != nil {
		errors = append(errors, fmt.Errorf("padding %v", err))
	}

	validModes := []string{"single", "multiple"}
	if !slices.Contains(validModes, p.Mode) {
		errors = append(errors, fmt.Errorf("padding mode must be one of: %v", validModes))
	}
	if p.Count < 0 || p.Count > padding.MaxFragments {
		errors = append(errors, fmt.Errorf("padding count must be between 0-%d", padding.MaxFragments))
	}

	if _, ok := entropy.Registry[p.Source]; !ok {
		errors = append(errors, fmt.Errorf("padding source must be one of: %v", entropy.Names()))
	}

	p.Formats = nil
	for _, name := range p.Formats_ {
		f, err := padding.ParseFormat(name)
		if err != nil {
			errors = append(errors, err)
			continue
		}
		p.Formats = append(p.Formats, f)
	}
	return errors
}

// Generator builds a padding generator from the validated settings.
func (p *Padding) Generator() (*padding.Generator, error) {
	src, err := entropy.ByName(p.Source)
	if err != nil {
		return nil, err
	}
	opts := []padding.Option{padding.WithSource(src)}
	if len(p.Formats) > 0 {
		opts = append(opts, padding.WithFormats(p.Formats...))
	}
	return padding.New(p.MinSize, p.MaxSize, opts...)
}

// Multiple reports whether responses are padded with several fragments.
func (p *Padding) Multiple() bool {
	return p.Mode == "multiple"
}
