package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kiterrors "github.com/alexisbeaulieu97/buttonkit/pkg/errors"
)

func TestAliasColorsTraceToBrandOrAllowlist(t *testing.T) {
	t.Parallel()

	store := Default()
	allow := DefaultAllowlist()

	brandValues := make(map[string]struct{})
	store.Brand.Color.Each(func(_ string, token Token) {
		brandValues[normalizeColor(token.String())] = struct{}{}
	})

	tables := map[string]Table{
		"alias.color.foreground.": store.Alias.Color.Foreground,
		"alias.color.background.": store.Alias.Color.Background,
		"alias.color.interface.":  store.Alias.Color.Interface,
	}
	for prefix, table := range tables {
		table.Each(func(key string, token Token) {
			path := prefix + key
			if _, ok := brandValues[normalizeColor(token.String())]; ok {
				return
			}
			literal, ok := allow[path]
			if assert.True(t, ok, "%s=%s does not trace to brand and is not allowlisted", path, token) {
				assert.Equal(t, normalizeColor(literal), normalizeColor(token.String()), "stale allowlist entry for %s", path)
			}
		})
	}
}

func TestStrictValidationReportsLiteralOverrides(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Strict: true})
	require.Error(t, err)

	var integrityErr *kiterrors.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, []string{
		"alias.color.background.primary",
		"alias.color.background.secondary",
		"alias.color.background.tertiary",
		"alias.color.foreground.accent",
		"alias.color.foreground.tertiary",
		"alias.color.interface.primary-green",
		"mapped.color.panel/level1",
		"mapped.color.surface",
	}, integrityErr.Paths())
	assert.Equal(t, "#32373d", integrityErr.Violations["alias.color.foreground.tertiary"])
}

func TestValidateRejectsStaleAllowlistValue(t *testing.T) {
	t.Parallel()

	allow := DefaultAllowlist()
	allow["alias.color.foreground.accent"] = "#000000"

	err := Default().Validate(allow)

	var integrityErr *kiterrors.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, []string{"alias.color.foreground.accent"}, integrityErr.Paths())
}

func TestValidateTypographyAgainstBrand(t *testing.T) {
	t.Parallel()

	brand := NewBrand()
	alias, err := NewAlias(brand)
	require.NoError(t, err)
	mapped, err := NewMapped(alias)
	require.NoError(t, err)

	alias.Typography = NewTable(Entry{Key: "odd", Value: TypographyToken(Typography{
		Family: "Comic Sans",
		Size:   17,
		Weight: 700,
	})})

	err = Validate(brand, alias, mapped, DefaultAllowlist())

	var integrityErr *kiterrors.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, []string{
		"alias.typography.odd.family",
		"alias.typography.odd.size",
	}, integrityErr.Paths())
}

func TestNewAliasFailsOnMissingBrandReference(t *testing.T) {
	t.Parallel()

	brand := NewBrand()
	brand.Color = NewTable(str("brand/yellow/800", "#ffd67d"))

	_, err := NewAlias(brand)

	var integrityErr *kiterrors.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, []string{
		"alias.color.foreground.default",
		"alias.color.foreground.primary",
	}, integrityErr.Paths())
	assert.Contains(t, integrityErr.Violations["alias.color.foreground.primary"], "brand/white/0")
}

func TestNewMappedFailsOnMissingAliasReference(t *testing.T) {
	t.Parallel()

	alias, err := NewAlias(NewBrand())
	require.NoError(t, err)
	alias.Color.Background = NewTable()

	_, err = NewMapped(alias)

	var integrityErr *kiterrors.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, []string{"mapped.color.panel/level1", "mapped.color.surface"}, integrityErr.Paths())
}
