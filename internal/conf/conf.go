package conf

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

type Conf struct {
	Log     Log     `yaml:"log"`
	Padding Padding `yaml:"padding"`
	HTTP    HTTP    `yaml:"http"`
}

func LoadFromFile(path string) (*Conf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Load parses YAML config, fills defaults and validates the result.
func Load(data []byte) (*Conf, error) {
	var conf Conf

	if err := yaml.UnmarshalWithOptions(data, &conf, yaml.Strict()); err != nil {
		return &conf, err
	}

	conf.setDefaults()
	if err := conf.validate(); err != nil {
		return &conf, err
	}

	return &conf, nil
}

// Default returns a validated configuration with every field defaulted.
func Default() *Conf {
	var conf Conf
	conf.setDefaults()
	_ = conf.validate()
	return &conf
}

func (c *Conf) setDefaults() {
	c.Log.setDefaults()
	c.Padding.setDefaults()
	c.HTTP.setDefaults()
}

func (c *Conf) validate() error {
	var allErrors []error

	allErrors = append(allErrors, c.Log.validate()...)
	allErrors = append(allErrors, c.Padding.validate()...)
	allErrors = append(allErrors, c.HTTP.validate()...)

	return writeErr(allErrors)
}

// Validate re-checks a config after fields were changed in code, for
// example by command line flags.
func (c *Conf) Validate() error {
	return c.validate()
}

func writeErr(allErrors []error) error {
	if len(allErrors) > 0 {
		var messages []string
		for _, err := range allErrors {
			messages = append(messages, err.Error())
		}
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(messages, "\n  - "))
	}
	return nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Conf, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFromFile(path)
}
