package cmd

import (
	"testing"
)

func TestSubcommands(t *testing.T) {
	for _, name := range []string{"pad", "serve", "config", "formats"} {
		c, _, err := rootCmd.Find([]string{name})
		if err != nil {
			t.Errorf("Find(%q): %v", name, err)
			continue
		}
		if c.Name() != name {
			t.Errorf("Find(%q) resolved to %q", name, c.Name())
		}
	}
}
