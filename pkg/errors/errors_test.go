package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("buttonkit.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "buttonkit.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "buttonkit.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("outputs[0].format", "unsupported format \"xml\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "outputs[0].format", validationErr.Field)
	require.Contains(t, err.Error(), "unsupported format")
}

func TestNotFoundErrorQuotesPath(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("alias.color.foreground.missing")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "alias.color.foreground.missing", notFound.Path)
	require.Contains(t, err.Error(), `"alias.color.foreground.missing"`)
}

func TestIntegrityErrorSortsPaths(t *testing.T) {
	t.Parallel()

	err := NewIntegrityError(map[string]string{
		"alias.color.foreground.tertiary": "#32373d",
		"alias.color.background.primary":  "#292e33",
	})

	var integrityErr *IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	require.Equal(t, []string{
		"alias.color.background.primary",
		"alias.color.foreground.tertiary",
	}, integrityErr.Paths())
	require.Contains(t, err.Error(), "alias.color.foreground.tertiary=#32373d")
}

func TestIntegrityErrorNilWhenClean(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewIntegrityError(nil))
	require.NoError(t, NewIntegrityError(map[string]string{}))
}
