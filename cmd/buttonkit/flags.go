package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/buttonkit/internal/button"
)

var defaultConfigNames = []string{"buttonkit.yaml", "buttonkit.yml", "buttonkit.toml"}

func validateConfigPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}
	return nil
}

// discoverConfig returns the first default config file in dir, or "".
func discoverConfig(dir string) string {
	for _, name := range defaultConfigNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

type buttonFlags struct {
	variant  string
	size     string
	kind     string
	class    string
	label    string
	disabled bool
	loading  bool
}

func (f buttonFlags) options() (button.Options, error) {
	variant, err := button.ParseVariant(f.variant)
	if err != nil {
		return button.Options{}, err
	}
	size, err := button.ParseSize(f.size)
	if err != nil {
		return button.Options{}, err
	}
	kind, err := button.ParseKind(f.kind)
	if err != nil {
		return button.Options{}, err
	}
	return button.Options{
		Variant:    variant,
		Size:       size,
		Kind:       kind,
		Disabled:   f.disabled,
		Loading:    f.loading,
		ExtraClass: f.class,
	}, nil
}
