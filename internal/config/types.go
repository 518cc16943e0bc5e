package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatJSON    = "json"
	FormatJS      = "js"
	FormatCSS     = "css"
	FormatYAML    = "yaml"
	FormatTOML    = "toml"
	FormatMsgpack = "msgpack"
)

// Supported output contents.
const (
	ContentTheme     = "theme"
	ContentVariables = "variables"
)

// Config represents the full buttonkit generator document.
type Config struct {
	Version   string            `yaml:"version" toml:"version" validate:"required,semver"`
	Name      string            `yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	LogLevel  string            `yaml:"log_level,omitempty" toml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	SourceDir string            `yaml:"source_dir,omitempty" toml:"source_dir"`
	Strict    bool              `yaml:"strict,omitempty" toml:"strict"`
	Allowlist map[string]string `yaml:"allowlist,omitempty" toml:"allowlist" validate:"omitempty,dive,keys,token_path,endkeys,required"`
	Outputs   []Output          `yaml:"outputs" toml:"outputs" validate:"required,min=1,dive"`
}

// Output describes one generated file.
type Output struct {
	Path     string `yaml:"path" toml:"path" validate:"required"`
	Format   string `yaml:"format" toml:"format" validate:"required,output_format"`
	Content  string `yaml:"content,omitempty" toml:"content" validate:"omitempty,oneof=theme variables"`
	Selector string `yaml:"selector,omitempty" toml:"selector"`
}

// UnmarshalYAML normalises format names and applies content defaults.
func (o *Output) UnmarshalYAML(value *yaml.Node) error {
	type rawOutput Output
	var temp rawOutput
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*o = Output(temp)
	o.applyDefaults()
	return nil
}

func (o *Output) applyDefaults() {
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	if o.Content == "" {
		if o.Format == FormatCSS {
			o.Content = ContentVariables
		} else {
			o.Content = ContentTheme
		}
	}
	if o.Format == FormatCSS && o.Selector == "" {
		o.Selector = ":root"
	}
}

// Default returns the configuration used when no file is supplied: a
// Tailwind theme module and a CSS custom-property sheet under dist/.
func Default() *Config {
	cfg := &Config{
		Version:  "1.0",
		Name:     "buttonkit",
		LogLevel: "info",
		Outputs: []Output{
			{Path: "dist/tailwind-theme.js", Format: FormatJS},
			{Path: "dist/tokens.css", Format: FormatCSS},
		},
	}
	for i := range cfg.Outputs {
		cfg.Outputs[i].applyDefaults()
	}
	return cfg
}
