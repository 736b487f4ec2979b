package conf

import (
	"fmt"
	"net"
	"slices"
)

type HTTP struct {
	Listen_ string       `yaml:"listen"`
	Root    string       `yaml:"root"`
	OnError string       `yaml:"on_error"` // passthrough, fail
	Listen  *net.TCPAddr `yaml:"-"`
}

func (c *HTTP) setDefaults() {
	if c.Listen_ == "" {
		c.Listen_ = "127.0.0.1:8080"
	}
	if c.Root == "" {
		c.Root = "."
	}
	if c.OnError == "" {
		c.OnError = "passthrough"
	}
}

func (c *HTTP) validate() []error {
	var errors []error

	addr, err := validateAddr(c.Listen_)
	if err != nil {
		errors = append(errors, err)
	}
	c.Listen = addr

	validOnError := []string{"passthrough", "fail"}
	if !slices.Contains(validOnError, c.OnError) {
		errors = append(errors, fmt.Errorf("http on_error must be one of: %v", validOnError))
	}
	return errors
}

func validateAddr(addr string) (*net.TCPAddr, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address '%s': %v", addr, err)
	}
	if port == "" || port == "0" {
		return nil, fmt.Errorf("address '%s' requires a non-zero port", addr)
	}
	if host != "" && net.ParseIP(host) == nil {
		return nil, fmt.Errorf("address '%s' must use an IP literal", addr)
	}
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address '%s': %v", addr, err)
	}
	return tcpAddr, nil
}
