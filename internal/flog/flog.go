package flog

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	Debug Level = iota
	Info
	Warn
	Error
	Fatal
	None
)

var levelNames = map[Level]string{
	Debug: "DEBUG",
	Info:  "INFO",
	Warn:  "WARN",
	Error: "ERROR",
	Fatal: "FATAL",
	None:  "NONE",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Level(%d)", int32(l))
}

// ParseLevel maps a config string (case insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if strings.EqualFold(s, name) {
			return l, nil
		}
	}
	return Info, fmt.Errorf("unknown log level %q", s)
}

var (
	minLevel atomic.Int32
	logger   = log.New(os.Stderr, "", log.LstdFlags)
)

func init() {
	minLevel.Store(int32(Info))
}

func SetLevel(l Level) {
	minLevel.Store(int32(l))
}

func GetLevel() Level {
	return Level(minLevel.Load())
}

// SetOutput redirects all log lines, mostly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func logf(l Level, format string, args ...any) {
	if l < GetLevel() {
		return
	}
	logger.Output(3, "["+l.String()+"] "+fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...any) { logf(Debug, format, args...) }
func Infof(format string, args ...any)  { logf(Info, format, args...) }
func Warnf(format string, args ...any)  { logf(Warn, format, args...) }
func Errorf(format string, args ...any) { logf(Error, format, args...) }

// Fatalf logs regardless of level and exits the process.
func Fatalf(format string, args ...any) {
	logger.Output(2, "[FATAL] "+fmt.Sprintf(format, args...))
	os.Exit(1)
}
