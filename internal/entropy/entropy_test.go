package entropy

import (
	"bytes"
	"errors"
	"io"
	"math"
	"slices"
	"testing"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("device unavailable")
}

func TestFillFailureIsEntropyError(t *testing.T) {
	buf := make([]byte, 16)
	err := Fill(failingReader{}, buf)
	if err == nil {
		t.Fatal("expected error from failing source")
	}
	if !errors.Is(err, ErrEntropy) {
		t.Errorf("expected ErrEntropy, got: %v", err)
	}
}

func TestFillShortSource(t *testing.T) {
	err := Fill(bytes.NewReader([]byte{1, 2, 3}), make([]byte, 8))
	if !errors.Is(err, ErrEntropy) {
		t.Errorf("expected ErrEntropy for short source, got: %v", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected underlying io.ErrUnexpectedEOF, got: %v", err)
	}
}

func TestIntn(t *testing.T) {
	src := System()
	if _, err := Intn(src, 0); err == nil {
		t.Error("Intn(0) should fail")
	}
	if v, err := Intn(src, 1); err != nil || v != 0 {
		t.Errorf("Intn(1) = %d, %v; want 0, nil", v, err)
	}

	counts := make([]int, 8)
	for i := 0; i < 4000; i++ {
		v, err := Intn(src, len(counts))
		if err != nil {
			t.Fatalf("Intn: %v", err)
		}
		if v < 0 || v >= len(counts) {
			t.Fatalf("Intn out of range: %d", v)
		}
		counts[v]++
	}
	for i, c := range counts {
		// Expected 500 per bucket; anything this far off means a broken sampler.
		if c < 300 || c > 700 {
			t.Errorf("bucket %d has %d hits, distribution looks biased", i, c)
		}
	}
}

func TestIntRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"degenerate", 1000, 1000},
		{"small", 2, 4},
		{"page sized", 51200, 5242880},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				v, err := IntRange(System(), tt.min, tt.max)
				if err != nil {
					t.Fatalf("IntRange: %v", err)
				}
				if v < tt.min || v > tt.max {
					t.Fatalf("IntRange(%d, %d) = %d", tt.min, tt.max, v)
				}
			}
		})
	}
}

func TestIntRangeWideSpans(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"non-negative ints", 0, math.MaxInt},
		{"all ints", math.MinInt, math.MaxInt},
		{"straddles zero", -10, math.MaxInt - 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				v, err := IntRange(System(), tt.min, tt.max)
				if err != nil {
					t.Fatalf("IntRange(%d, %d): %v", tt.min, tt.max, err)
				}
				if v < tt.min || v > tt.max {
					t.Fatalf("IntRange(%d, %d) = %d", tt.min, tt.max, v)
				}
			}
		})
	}
}

func TestIntRangeHitsBounds(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v, err := IntRange(System(), 2, 4)
		if err != nil {
			t.Fatal(err)
		}
		seen[v] = true
	}
	for _, want := range []int{2, 3, 4} {
		if !seen[want] {
			t.Errorf("value %d never drawn", want)
		}
	}
}

func TestShufflePreservesElements(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	shuffled := slices.Clone(items)
	if err := Shuffle(System(), len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}); err != nil {
		t.Fatal(err)
	}
	sorted := slices.Clone(shuffled)
	slices.Sort(sorted)
	if !slices.Equal(sorted, items) {
		t.Errorf("shuffle lost elements: %v", shuffled)
	}
}

func TestShuffleFailure(t *testing.T) {
	err := Shuffle(failingReader{}, 4, func(i, j int) {})
	if !errors.Is(err, ErrEntropy) {
		t.Errorf("expected ErrEntropy, got: %v", err)
	}
}

func TestChaCha20DeterministicForSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 44)
	a := NewChaCha20(bytes.NewReader(seed))
	b := NewChaCha20(bytes.NewReader(seed))

	outA := make([]byte, 1000)
	outB := make([]byte, 1000)
	if err := Fill(a, outA); err != nil {
		t.Fatal(err)
	}
	if err := Fill(b, outB); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(outA, outB) {
		t.Error("same seed should yield the same keystream")
	}
	if bytes.Equal(outA, make([]byte, len(outA))) {
		t.Error("keystream is all zeros")
	}
}

func TestChaCha20StreamAdvances(t *testing.T) {
	src := NewChaCha20(System())
	first := make([]byte, 64)
	second := make([]byte, 64)
	if err := Fill(src, first); err != nil {
		t.Fatal(err)
	}
	if err := Fill(src, second); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(first, second) {
		t.Error("consecutive reads returned identical blocks")
	}
}

func TestChaCha20SeedExhausted(t *testing.T) {
	src := NewChaCha20(bytes.NewReader([]byte{1, 2, 3}))
	err := Fill(src, make([]byte, 32))
	if !errors.Is(err, ErrEntropy) {
		t.Errorf("expected ErrEntropy, got: %v", err)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		src, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if _, err := Uint64(src); err != nil {
			t.Errorf("source %q failed: %v", name, err)
		}
	}
	if _, err := ByName("math"); err == nil {
		t.Error("expected error for unknown source")
	}
}
