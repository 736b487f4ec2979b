package pad

import (
	"fmt"
	"io"
	"os"
	"strings"
	"volumizer/internal/conf"
	"volumizer/internal/flog"
	"volumizer/internal/pkg/buffer"

	"github.com/spf13/cobra"
)

type options struct {
	confPath string
	input    string
	output   string
	minSize  int
	maxSize  int
	multiple bool
	count    int
	formats  []string
	source   string
}

var Cmd = newCmd()

func newCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "pad",
		Short: "Append random padding to a document.",
		Example: `  volumizer pad -i index.html -o index.padded.html
  volumizer pad --min 1024 --max 4096 --multiple -n 3 < page.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config(cmd)
			if err != nil {
				return err
			}
			flog.SetLevel(cfg.Log.Level)
			return o.run(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.confPath, "config", "c", "", "Path to the YAML configuration file.")
	f.StringVarP(&o.input, "input", "i", "-", "File to pad, - for stdin.")
	f.StringVarP(&o.output, "output", "o", "-", "Destination file, - for stdout.")
	f.IntVar(&o.minSize, "min", 0, "Minimum padding in bytes (overrides config).")
	f.IntVar(&o.maxSize, "max", 0, "Maximum padding in bytes (overrides config).")
	f.BoolVarP(&o.multiple, "multiple", "m", false, "Split padding over several formats.")
	f.IntVarP(&o.count, "count", "n", 0, "Number of fragments with --multiple, 0 picks 2-4.")
	f.StringSliceVarP(&o.formats, "format", "f", nil, "Restrict to these formats (repeatable).")
	f.StringVar(&o.source, "source", "", "Entropy source: system or chacha20.")
	return cmd
}

// config loads the file config and applies explicitly set flags on top.
func (o *options) config(cmd *cobra.Command) (*conf.Conf, error) {
	cfg, err := conf.LoadOrDefault(o.confPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("min") {
		cfg.Padding.MinSize = o.minSize
	}
	if flags.Changed("max") {
		cfg.Padding.MaxSize = o.maxSize
	}
	if o.multiple {
		cfg.Padding.Mode = "multiple"
	}
	if flags.Changed("count") {
		cfg.Padding.Count = o.count
	}
	if len(o.formats) > 0 {
		cfg.Padding.Formats_ = o.formats
	}
	if o.source != "" {
		cfg.Padding.Source = o.source
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *options) run(cfg *conf.Conf, stdin io.Reader, stdout io.Writer) error {
	gen, err := cfg.Padding.Generator()
	if err != nil {
		return err
	}

	in := stdin
	if o.input != "-" {
		file, err := os.Open(o.input)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	var content strings.Builder
	if _, err := buffer.Copy(&content, in); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var padded string
	if cfg.Padding.Multiple() {
		padded, err = gen.GenerateMultiple(content.String(), cfg.Padding.Count)
	} else {
		padded, err = gen.Generate(content.String())
	}
	if err != nil {
		return err
	}
	flog.Debugf("padded %d bytes to %d", content.Len(), len(padded))

	out := stdout
	if o.output != "-" {
		file, err := os.Create(o.output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}
	_, err = io.WriteString(out, padded)
	return err
}
