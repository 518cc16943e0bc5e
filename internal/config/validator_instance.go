package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	tokenPathPattern = regexp.MustCompile(`^(alias|mapped)(\.[A-Za-z0-9_/-]+)+$`)
	outputFormats    = map[string]struct{}{
		FormatJSON:    {},
		FormatJS:      {},
		FormatCSS:     {},
		FormatYAML:    {},
		FormatTOML:    {},
		FormatMsgpack: {},
	}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("token_path", func(fl validator.FieldLevel) bool {
			return tokenPathPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("output_format", func(fl validator.FieldLevel) bool {
			_, ok := outputFormats[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}
