package info

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"volumizer/internal/padding"
)

func TestFormatsCmd(t *testing.T) {
	var out bytes.Buffer
	FormatsCmd.SetOut(&out)
	FormatsCmd.SetArgs([]string{})
	if err := FormatsCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(padding.AllFormats()) {
		t.Fatalf("got %d lines: %q", len(lines), out.String())
	}
	for i, f := range padding.AllFormats() {
		if !strings.HasPrefix(lines[i], f.String()) {
			t.Errorf("line %d = %q, want %s first", i, lines[i], f)
		}
	}
}

func TestConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	data := "padding:\n  min_size: 1024\n  max_size: 2048\n  formats: [noscript, svg]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	ConfigCmd.SetOut(&out)
	ConfigCmd.SetArgs([]string{"-c", path})
	if err := ConfigCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	var got padding.Config
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}
	want := padding.Config{MinSize: 1024, MaxSize: 2048, MinSizeKB: 1, MaxSizeKB: 2, AvailableMethods: 2}
	if got != want {
		t.Errorf("config = %+v, want %+v", got, want)
	}
}
