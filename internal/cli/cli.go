// Package cli implements the uuidx command: gen, inspect and fmt.
package cli

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"

	"github.com/Lzww0608/uuidx"
	"github.com/Lzww0608/uuidx/draft"
	"github.com/Lzww0608/uuidx/generator"
)

// Options are the flags shared by every command
type Options struct {
	Config string `short:"c" long:"config" description:"YAML file with default settings" env:"UUIDX_CONFIG"`
}

type app struct {
	opts   Options
	stdout io.Writer
}

// config returns the file configuration, or the defaults when no file was given
func (a *app) config() (*Config, error) {
	if a.opts.Config == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(a.opts.Config)
}

// Run parses args (without the program name) and executes the selected command.
// Help requested with -h is written to stdout and is not an error.
func Run(args []string, stdout io.Writer) error {
	a := &app{stdout: stdout}
	parser := flags.NewNamedParser("uuidx", flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.AddGroup("Application Options", "", &a.opts); err != nil {
		return err
	}
	commands := []struct {
		name, short string
		data        interface{}
	}{
		{"gen", "Generate UUIDs", &genCommand{app: a}},
		{"inspect", "Describe UUIDs as YAML", &inspectCommand{app: a}},
		{"fmt", "Re-encode UUIDs", &fmtCommand{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, "", c.data); err != nil {
			return err
		}
	}

	_, err := parser.ParseArgs(args)
	var ferr *flags.Error
	if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
		_, err = fmt.Fprintln(stdout, ferr.Message)
	}
	return err
}

type genCommand struct {
	app       *app
	Version   int    `short:"v" long:"version" description:"UUID version: 1, 3, 4, 5, 6, 7 or 8"`
	Count     int    `short:"n" long:"count" description:"number of UUIDs"`
	Namespace string `long:"ns" description:"namespace for versions 3 and 5: dns, url, oid, x500 or a UUID"`
	Name      string `long:"name" description:"name for versions 3 and 5"`
	Node      string `long:"node" description:"node id for versions 1 and 6"`
	Form      string `short:"f" long:"form" description:"output form: hyphenated, simple, braced or urn"`
	Upper     bool   `short:"u" long:"upper" description:"upper-case hex digits"`
	Lower     bool   `long:"lower" description:"lower-case hex digits, overriding upper in the config"`
}

// settings merges the flags over the file configuration
func (c *genCommand) settings() (*Config, error) {
	cfg, err := c.app.config()
	if err != nil {
		return nil, err
	}
	if c.Version != 0 {
		cfg.Version = c.Version
	}
	if c.Count != 0 {
		cfg.Count = c.Count
	}
	if c.Namespace != "" {
		cfg.Namespace = c.Namespace
	}
	if c.Node != "" {
		cfg.Node = c.Node
	}
	if c.Form != "" {
		cfg.Form = c.Form
	}
	if err := applyCase(cfg, c.Upper, c.Lower); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// applyCase lets the --upper and --lower flags override the config in either direction
func applyCase(cfg *Config, upper, lower bool) error {
	switch {
	case upper && lower:
		return errors.New("--upper and --lower are mutually exclusive")
	case upper:
		cfg.Upper = true
	case lower:
		cfg.Upper = false
	}
	return nil
}

func (c *genCommand) Execute(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("gen: unexpected arguments %q", args)
	}
	cfg, err := c.settings()
	if err != nil {
		return err
	}
	next, err := c.source(cfg)
	if err != nil {
		return err
	}

	style := cfg.style()
	buf := make([]byte, 0, style.EncodedLen()+1)
	for i := 0; i < cfg.Count; i++ {
		uuid, err := next()
		if err != nil {
			return err
		}
		buf = append(uuid.AppendEncode(buf[:0], style), '\n')
		if _, err := c.app.stdout.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// source returns the generator for the configured version
func (c *genCommand) source(cfg *Config) (func() (uuidx.UUID, error), error) {
	var opts []generator.Option
	if cfg.Node != "" {
		node, err := parseNode(cfg.Node)
		if err != nil {
			return nil, err
		}
		opts = append(opts, generator.WithNode(node))
	}

	switch cfg.Version {
	case 1, 6:
		clock, err := generator.NewClock(opts...)
		if err != nil {
			return nil, err
		}
		if cfg.Version == 1 {
			return func() (uuidx.UUID, error) { return clock.NewV1(), nil }, nil
		}
		return func() (uuidx.UUID, error) { return clock.NewV6(), nil }, nil
	case 3, 5:
		if cfg.Namespace == "" {
			return nil, fmt.Errorf("gen: version %d needs a namespace", cfg.Version)
		}
		ns, err := resolveNamespace(cfg.Namespace)
		if err != nil {
			return nil, err
		}
		uuid := uuidx.NewV5(ns, []byte(c.Name))
		if cfg.Version == 3 {
			uuid = uuidx.NewV3(ns, []byte(c.Name))
		}
		return func() (uuidx.UUID, error) { return uuid, nil }, nil
	case 4:
		random, err := generator.NewRandom()
		if err != nil {
			return nil, err
		}
		return func() (uuidx.UUID, error) { return random.NewV4(), nil }, nil
	case 7:
		return generator.NewMonotonic().New, nil
	case 8:
		return func() (uuidx.UUID, error) {
			var b [16]byte
			if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
				return uuidx.Nil, &uuidx.RandomSourceError{Err: err}
			}
			return draft.NewV8(b), nil
		}, nil
	}
	return nil, fmt.Errorf("gen: unsupported version %d", cfg.Version)
}

type inspectCommand struct {
	app *app
}

// report is the YAML document printed by inspect
type report struct {
	UUID          string  `yaml:"uuid"`
	Version       int     `yaml:"version"`
	VersionName   string  `yaml:"version_name"`
	Variant       string  `yaml:"variant"`
	Time          string  `yaml:"time,omitempty"`
	ClockSequence *uint16 `yaml:"clock_sequence,omitempty"`
	Node          string  `yaml:"node,omitempty"`
}

func (c *inspectCommand) Execute(args []string) error {
	if len(args) == 0 {
		return errors.New("inspect: no UUIDs given")
	}
	enc := yaml.NewEncoder(c.app.stdout)
	for _, arg := range args {
		uuid, err := uuidx.Parse(arg)
		if err != nil {
			return fmt.Errorf("inspect: %w", err)
		}
		if err := enc.Encode(describe(uuid)); err != nil {
			return err
		}
	}
	return enc.Close()
}

func describe(u uuidx.UUID) report {
	r := report{
		UUID:        u.String(),
		Version:     int(u.Version()),
		VersionName: versionName(u.Version()),
		Variant:     u.Variant().String(),
	}
	if u.Variant() != uuidx.VariantRFC4122 {
		return r
	}

	switch u.Version() {
	case uuidx.VersionTimeBased, draft.VersionReorderedTime:
		t := u.Time()
		if u.Version() == draft.VersionReorderedTime {
			t = draft.TimeV6(u)
		}
		seq := u.ClockSequence()
		node := u.NodeID()
		r.Time = t.Format("2006-01-02T15:04:05.9999999Z07:00")
		r.ClockSequence = &seq
		r.Node = fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", node[0], node[1], node[2], node[3], node[4], node[5])
	case draft.VersionUnixTime:
		r.Time = draft.TimeV7(u).UTC().Format("2006-01-02T15:04:05.000Z07:00")
	}
	return r
}

func versionName(v uuidx.Version) string {
	switch v {
	case draft.VersionReorderedTime:
		return "ReorderedTime"
	case draft.VersionUnixTime:
		return "UnixTime"
	case draft.VersionCustom:
		return "Custom"
	}
	return v.String()
}

type fmtCommand struct {
	app   *app
	Form  string `short:"f" long:"form" description:"output form: hyphenated, simple, braced or urn"`
	Upper bool   `short:"u" long:"upper" description:"upper-case hex digits"`
	Lower bool   `long:"lower" description:"lower-case hex digits, overriding upper in the config"`
}

func (c *fmtCommand) Execute(args []string) error {
	cfg, err := c.app.config()
	if err != nil {
		return err
	}
	if c.Form != "" {
		cfg.Form = c.Form
	}
	if err := applyCase(cfg, c.Upper, c.Lower); err != nil {
		return err
	}
	if _, err := parseForm(cfg.Form); err != nil {
		return err
	}

	style := cfg.style()
	for _, arg := range args {
		uuid, err := uuidx.Parse(arg)
		if err != nil {
			return fmt.Errorf("fmt: %w", err)
		}
		if _, err := fmt.Fprintln(c.app.stdout, uuid.Encode(style)); err != nil {
			return err
		}
	}
	return nil
}
