package config

import (
	"fmt"
	"path/filepath"

	kiterrors "github.com/alexisbeaulieu97/buttonkit/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return kiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Outputs))
	for i, out := range cfg.Outputs {
		clean := filepath.Clean(out.Path)
		if first, exists := seen[clean]; exists {
			return kiterrors.NewValidationError(fieldForOutput(i, "path"), fmt.Sprintf("duplicate output path %q (also outputs[%d])", out.Path, first), nil)
		}
		seen[clean] = i

		if out.Format == FormatCSS && out.Content != ContentVariables {
			return kiterrors.NewValidationError(fieldForOutput(i, "content"), "css output can only carry variables", nil)
		}
		if out.Selector != "" && out.Format != FormatCSS {
			return kiterrors.NewValidationError(fieldForOutput(i, "selector"), "selector applies to css output only", nil)
		}
	}

	return nil
}
