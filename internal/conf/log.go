package conf

import (
	"fmt"
	"volumizer/internal/flog"
)

type Log struct {
	Level_ string     `yaml:"level"`
	Level  flog.Level `yaml:"-"`
}

func (l *Log) setDefaults() {
	if l.Level_ == "" {
		l.Level_ = "info"
	}
}

func (l *Log) validate() []error {
	var errors []error

	lvl, err := flog.ParseLevel(l.Level_)
	if err != nil {
		errors = append(errors, fmt.Errorf("log level must be one of: none, debug, info, warn, error, fatal"))
	}
	l.Level = lvl
	return errors
}
