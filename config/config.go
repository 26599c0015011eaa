// Package config holds the process-wide options of a conversion run. Options
// are read once at startup and never mutated while documents are generated.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	LinkerSentinel = "sentinel"
	LinkerRole     = "role"
)

const DefaultFallbackMessage = "Documentation for this entity could not be generated."

type Options struct {
	// CrossRefRole is the role used for references to documented entities.
	CrossRefRole string `mapstructure:"crossref_role" yaml:"crossref_role"`
	// AnchorRole is the role used for in-document anchors.
	AnchorRole string `mapstructure:"anchor_role" yaml:"anchor_role"`
	// CodeLanguage is the argument of emitted code-block directives. When
	// empty, preformatted text becomes a plain literal block.
	CodeLanguage string `mapstructure:"code_language" yaml:"code_language"`
	// RolePrefixes mark code spans that already hold rst role markup.
	RolePrefixes []string `mapstructure:"role_prefixes" yaml:"role_prefixes"`
	// Width wraps paragraphs at this many columns; 0 disables wrapping.
	Width          int    `mapstructure:"width" yaml:"width"`
	IncludePrivate bool   `mapstructure:"include_private" yaml:"include_private"`
	Linker         string `mapstructure:"linker" yaml:"linker"`
	Workers        int    `mapstructure:"workers" yaml:"workers"`
	// FallbackMessage replaces a document whose generation failed.
	FallbackMessage string `mapstructure:"fallback_message" yaml:"fallback_message"`
	OutputExtension string `mapstructure:"output_extension" yaml:"output_extension"`
}

func Default() Options {
	return Options{
		CrossRefRole:    "java:ref",
		AnchorRole:      "ref",
		CodeLanguage:    "java",
		RolePrefixes:    []string{":java:"},
		Width:           0,
		IncludePrivate:  false,
		Linker:          LinkerSentinel,
		Workers:         runtime.NumCPU(),
		FallbackMessage: DefaultFallbackMessage,
		OutputExtension: ".rst",
	}
}

// Load reads options from a YAML file and RSTDOC_* environment variables.
// An empty path only consults the environment.
func Load(path string) (Options, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("RSTDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("crossref_role", def.CrossRefRole)
	v.SetDefault("anchor_role", def.AnchorRole)
	v.SetDefault("code_language", def.CodeLanguage)
	v.SetDefault("role_prefixes", def.RolePrefixes)
	v.SetDefault("width", def.Width)
	v.SetDefault("include_private", def.IncludePrivate)
	v.SetDefault("linker", def.Linker)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("fallback_message", def.FallbackMessage)
	v.SetDefault("output_extension", def.OutputExtension)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Options{}, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("unmarshal config: %w", err)
	}
	opts.applyDefaults()
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// applyDefaults fills fields that must not be empty. An empty CodeLanguage
// is kept.
func (o *Options) applyDefaults() {
	def := Default()
	if o.CrossRefRole == "" {
		o.CrossRefRole = def.CrossRefRole
	}
	if o.AnchorRole == "" {
		o.AnchorRole = def.AnchorRole
	}
	if o.Linker == "" {
		o.Linker = def.Linker
	}
	if o.Workers <= 0 {
		o.Workers = def.Workers
	}
	if o.FallbackMessage == "" {
		o.FallbackMessage = def.FallbackMessage
	}
	if o.OutputExtension == "" {
		o.OutputExtension = def.OutputExtension
	}
	if !strings.HasPrefix(o.OutputExtension, ".") {
		o.OutputExtension = "." + o.OutputExtension
	}
}

func (o Options) Validate() error {
	switch o.Linker {
	case LinkerSentinel, LinkerRole:
	default:
		return fmt.Errorf("unknown linker %q (expected %s or %s)", o.Linker, LinkerSentinel, LinkerRole)
	}
	if o.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", o.Width)
	}
	return nil
}

// Write dumps options as YAML.
func Write(o Options) ([]byte, error) {
	data, err := yaml.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
