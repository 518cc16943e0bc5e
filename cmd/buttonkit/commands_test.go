package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kiterrors "github.com/alexisbeaulieu97/buttonkit/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--no-color"}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestResolveCommand(t *testing.T) {
	cases := []struct {
		name string
		path string
		want string
	}{
		{name: "alias color", path: "alias.color.foreground.accent", want: "#8fd6c9\n"},
		{name: "brand key with slashes", path: "brand.color.brand/yellow/800", want: "#ffd67d\n"},
		{name: "typography field", path: "alias.typography.body-regular.lineHeight", want: "1.2\n"},
		{name: "mapped color", path: "mapped.color.panel/level1", want: "#32373d\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, "resolve", tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestResolveCommandPrintsGroups(t *testing.T) {
	out, _, err := execute(t, "resolve", "mapped.color")
	require.NoError(t, err)

	var group map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &group))
	assert.Equal(t, map[string]string{
		"input-field/foreground": "#ffffff",
		"panel/level1":           "#32373d",
		"surface":                "#32373d",
	}, group)

	out, _, err = execute(t, "resolve", "brand.radius", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "S: 2\nL: 8\nfull: 9999\n", out)
}

func TestResolveCommandNotFound(t *testing.T) {
	_, _, err := execute(t, "resolve", "alias.color.foreground.missing")

	var notFound *kiterrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "alias.color.foreground.missing", notFound.Path)
}

func TestVarsCommand(t *testing.T) {
	out, _, err := execute(t, "vars")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ":root {\n  --color-brand-brand-yellow-800: #ffd67d;\n"), out)
	assert.Contains(t, out, "  --radius-l: 8px;\n")
	assert.True(t, strings.HasSuffix(out, "}\n"))

	out, _, err = execute(t, "vars", "--selector", ".dark")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, ".dark {\n"))
}

func TestCheckCommand(t *testing.T) {
	out, _, err := execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ all alias and mapped tokens trace to brand (6 allowlisted)")

	out, _, err = execute(t, "check", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "8 token value(s)")
	assert.Contains(t, out, "✗ alias.color.foreground.tertiary = #32373d")
	assert.Contains(t, out, "✗ mapped.color.surface = #32373d")
}

func TestRenderCommand(t *testing.T) {
	out, _, err := execute(t, "render", "--label", "Save")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<button type="button" class="font-bold`), out)
	assert.Contains(t, out, `aria-busy="false">Save</button>`)
	assert.NotContains(t, out, `" disabled`)

	out, _, err = execute(t, "render", "--label", "Sending", "--loading", "--type", "submit", "--variant", "outline", "--size", "large", "--class", "w-full")
	require.NoError(t, err)
	assert.Contains(t, out, `type="submit"`)
	assert.Contains(t, out, `w-full" disabled aria-busy="true">`)
	assert.Contains(t, out, "<svg")
}

func TestRenderCommandRejectsUnknownOptions(t *testing.T) {
	_, _, err := execute(t, "render", "--variant", "ghost")

	var validationErr *kiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "variant", validationErr.Field)

	_, _, err = execute(t, "render", "--size", "huge")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "size", validationErr.Field)
}

func TestPreviewCommand(t *testing.T) {
	out, _, err := execute(t, "preview", "--label", "Continue")
	require.NoError(t, err)
	assert.Contains(t, out, "Continue")

	out, _, err = execute(t, "preview", "--all")
	require.NoError(t, err)
	for _, label := range []string{"Primary Small", "Secondary Medium", "Outline Large"} {
		assert.Contains(t, out, label)
	}
}

func TestGenerateCommandDefaults(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "generate", "--out-dir", dir, "--no-revision")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+filepath.Join(dir, "dist", "tailwind-theme.js"))

	js, err := os.ReadFile(filepath.Join(dir, "dist", "tailwind-theme.js"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(js), "/* Code generated by buttonkit. DO NOT EDIT. */\n"))

	css, err := os.ReadFile(filepath.Join(dir, "dist", "tokens.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ":root {\n")
}

func TestGenerateCheck(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "generate", "--out-dir", dir, "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 2 output(s) out of date")
	assert.Contains(t, out, "missing "+filepath.Join(dir, "dist", "tokens.css"))

	_, _, err = execute(t, "generate", "--out-dir", dir)
	require.NoError(t, err)

	out, _, err = execute(t, "generate", "--out-dir", dir, "--check")
	require.NoError(t, err)
	assert.Equal(t, "2 output(s) up to date\n", out)
}

func TestGenerateCommandWithConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "buttonkit.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`version = "1.0"
name = "acme"
log_level = "warn"

[[outputs]]
path = "build/theme.yaml"
format = "yaml"

[[outputs]]
path = "build/vars.json"
format = "json"
content = "variables"
`), 0o644))

	out, _, err := execute(t, "--config", cfgPath, "generate", "--no-revision")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "wrote "))

	vars, err := os.ReadFile(filepath.Join(dir, "build", "vars.json"))
	require.NoError(t, err)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(vars, &decoded))
	assert.Equal(t, "#8fd6c9", decoded["--color-foreground-accent"])

	theme, err := os.ReadFile(filepath.Join(dir, "build", "theme.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(theme), "colors:\n")
}

func TestStrictConfigFailsStoreConstruction(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "buttonkit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`version: "1.0"
name: strict
strict: true
outputs:
  - path: out.css
    format: css
`), 0o644))

	_, _, err := execute(t, "--config", cfgPath, "vars")

	var integrity *kiterrors.IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Len(t, integrity.Violations, 8)
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "vars")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestBrowseRequiresTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(*os.File) bool { return false }

	_, _, err := execute(t, "browse")
	require.ErrorIs(t, err, errNotTerminal)
}
