package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Lzww0608/uuidx"
)

// Config holds the defaults for the gen and fmt commands. It is usually
// loaded from a YAML file; command line flags take precedence.
type Config struct {
	Version   int    `yaml:"version"`
	Count     int    `yaml:"count"`
	Namespace string `yaml:"namespace"`
	Form      string `yaml:"form"`
	Upper     bool   `yaml:"upper"`
	Node      string `yaml:"node"`
}

// DefaultConfig returns the settings used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Version: 4,
		Count:   1,
		Form:    "hyphenated",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate returns the first invalid setting or nil
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch c.Version {
	case 1, 3, 4, 5, 6, 7, 8:
	default:
		return fmt.Errorf("version must be one of 1, 3, 4, 5, 6, 7, 8, got %d", c.Version)
	}
	if c.Count <= 0 {
		return fmt.Errorf("count must be > 0, got %d", c.Count)
	}
	if _, err := parseForm(c.Form); err != nil {
		return err
	}
	if c.Namespace != "" {
		if _, err := resolveNamespace(c.Namespace); err != nil {
			return err
		}
	}
	if c.Node != "" {
		if _, err := parseNode(c.Node); err != nil {
			return err
		}
	}
	return nil
}

// style returns the output style selected by the config
func (c *Config) style() uuidx.Style {
	form, _ := parseForm(c.Form)
	return uuidx.Style{Form: form, Upper: c.Upper}
}

func parseForm(s string) (uuidx.Form, error) {
	switch strings.ToLower(s) {
	case "", "hyphenated", "canonical":
		return uuidx.FormHyphenated, nil
	case "simple":
		return uuidx.FormSimple, nil
	case "braced":
		return uuidx.FormBraced, nil
	case "urn":
		return uuidx.FormURN, nil
	}
	return 0, fmt.Errorf("unknown form %q", s)
}

func resolveNamespace(s string) (uuidx.UUID, error) {
	switch strings.ToLower(s) {
	case "dns":
		return uuidx.NamespaceDNS, nil
	case "url":
		return uuidx.NamespaceURL, nil
	case "oid":
		return uuidx.NamespaceOID, nil
	case "x500":
		return uuidx.NamespaceX500, nil
	}
	ns, err := uuidx.Parse(s)
	if err != nil {
		return uuidx.Nil, fmt.Errorf("bad namespace %q: %w", s, err)
	}
	return ns, nil
}

// parseNode accepts a 48-bit node id as 12 hex digits or any form net.ParseMAC understands
func parseNode(s string) ([6]byte, error) {
	var node [6]byte
	if len(s) == 12 && !strings.ContainsAny(s, ":-.") {
		s = s[0:2] + ":" + s[2:4] + ":" + s[4:6] + ":" + s[6:8] + ":" + s[8:10] + ":" + s[10:12]
	}
	mac, err := net.ParseMAC(s)
	if err != nil || len(mac) != len(node) {
		return node, fmt.Errorf("bad node %q: want 6 bytes", s)
	}
	copy(node[:], mac)
	return node, nil
}
