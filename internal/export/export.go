package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/buttonkit/internal/config"
	"github.com/alexisbeaulieu97/buttonkit/internal/logger"
	"github.com/alexisbeaulieu97/buttonkit/internal/tokens"
	"github.com/alexisbeaulieu97/buttonkit/pkg/diff"
	kiterrors "github.com/alexisbeaulieu97/buttonkit/pkg/errors"
)

// Result describes one file written by Generate.
type Result struct {
	Path    string
	Format  string
	Content string
	Bytes   int
}

// Generator encodes the token store into build artifacts.
type Generator struct {
	store    *tokens.Store
	log      *logger.Logger
	revision Revision
}

// Option customises a Generator.
type Option func(*Generator)

// WithLogger attaches a logger. Without one the generator is silent.
func WithLogger(log *logger.Logger) Option {
	return func(g *Generator) {
		g.log = log.Component("export")
	}
}

// WithRevision stamps generated headers with the given source revision.
func WithRevision(rev Revision) Option {
	return func(g *Generator) {
		g.revision = rev
	}
}

// New returns a generator over store.
func New(store *tokens.Store, opts ...Option) *Generator {
	g := &Generator{store: store, log: logger.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes every output of cfg below baseDir. Relative output paths
// are resolved against baseDir; parent directories are created as needed.
func (g *Generator) Generate(ctx context.Context, cfg *config.Config, baseDir string) ([]Result, error) {
	results := make([]Result, 0, len(cfg.Outputs))
	for _, out := range cfg.Outputs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		data, err := g.Encode(out)
		if err != nil {
			return results, fmt.Errorf("encode %s: %w", out.Path, err)
		}

		path := out.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return results, fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return results, fmt.Errorf("write %s: %w", out.Path, err)
		}

		g.log.WithFields(map[string]any{
			"path":    path,
			"format":  out.Format,
			"content": out.Content,
			"bytes":   len(data),
		}).Info("output written")

		results = append(results, Result{Path: path, Format: out.Format, Content: out.Content, Bytes: len(data)})
	}
	return results, nil
}

// Drift describes an output whose file on disk no longer matches what
// Generate would write.
type Drift struct {
	Path    string
	Missing bool
	Diff    string
	Stats   diff.Stats
}

// Check encodes every output and compares it with the file already on disk.
// Generated-file banners are ignored so a new revision alone is not drift.
func (g *Generator) Check(ctx context.Context, cfg *config.Config, baseDir string) ([]Drift, error) {
	var drifts []Drift
	for _, out := range cfg.Outputs {
		if err := ctx.Err(); err != nil {
			return drifts, err
		}

		want, err := g.Encode(out)
		if err != nil {
			return drifts, fmt.Errorf("encode %s: %w", out.Path, err)
		}

		path := out.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		have, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return drifts, fmt.Errorf("read %s: %w", out.Path, err)
			}
			drifts = append(drifts, Drift{Path: path, Missing: true})
			continue
		}

		have, want = dropHeader(out.Format, have), dropHeader(out.Format, want)
		if bytes.Equal(have, want) {
			continue
		}

		drift := Drift{Path: path}
		if out.Format == config.FormatMsgpack {
			drift.Diff = "binary content differs\n"
		} else {
			drift.Diff, drift.Stats = diff.Unified(have, want, path, "generated")
		}
		g.log.WithFields(map[string]any{"path": path, "added": drift.Stats.Added, "removed": drift.Stats.Removed}).Warn("output out of date")
		drifts = append(drifts, drift)
	}
	return drifts, nil
}

func dropHeader(format string, data []byte) []byte {
	switch format {
	case config.FormatCSS, config.FormatJS, config.FormatYAML, config.FormatTOML:
		if first, rest, found := bytes.Cut(data, []byte("\n")); found && bytes.Contains(first, []byte("Code generated by buttonkit")) {
			return rest
		}
	}
	return data
}

// Encode renders a single output in memory.
func (g *Generator) Encode(out config.Output) ([]byte, error) {
	switch out.Format {
	case config.FormatCSS:
		if out.Content != config.ContentVariables {
			return nil, kiterrors.NewValidationError("content", "css output can only carry variables", nil)
		}
		selector := out.Selector
		if selector == "" {
			selector = ":root"
		}
		vars := tokens.FlattenToVariables(g.store)
		return []byte(g.header("/*", " */") + vars.CSS(selector)), nil
	case config.FormatJSON:
		return encodeJSON(g.payload(out.Content))
	case config.FormatJS:
		body, err := encodeJSON(g.payload(out.Content))
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		buf.WriteString(g.header("/*", " */"))
		buf.WriteString("const tailwindTheme = ")
		buf.Write(bytes.TrimRight(body, "\n"))
		buf.WriteString(";\n\nexport default tailwindTheme;\n")
		return buf.Bytes(), nil
	case config.FormatYAML:
		var buf bytes.Buffer
		buf.WriteString(g.header("#", ""))
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(g.payload(out.Content)); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case config.FormatTOML:
		var buf bytes.Buffer
		buf.WriteString(g.header("#", ""))
		if err := toml.NewEncoder(&buf).Encode(g.payload(out.Content).Plain()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case config.FormatMsgpack:
		return msgpack.Marshal(g.payload(out.Content))
	default:
		return nil, kiterrors.NewValidationError("format", fmt.Sprintf("unsupported output format %q", out.Format), nil)
	}
}

func (g *Generator) payload(content string) *tokens.Group {
	if content == config.ContentVariables {
		return tokens.FlattenToVariables(g.store).Group()
	}
	return tokens.TailwindTheme(g.store)
}

// header returns a one-line generated-file banner in the comment syntax of
// the target format.
func (g *Generator) header(open, end string) string {
	line := "Code generated by buttonkit"
	if rev := g.revision.String(); rev != "" {
		line += " from " + rev
	}
	line += ". DO NOT EDIT."
	return open + " " + line + end + "\n"
}

func encodeJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
