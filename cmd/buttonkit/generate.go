package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buttonkit/internal/export"
)

type generateOptions struct {
	OutDir     string
	NoRevision bool
	Check      bool
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the theme extension and CSS variables",
		Long: `Generate writes every output listed in the configuration. Without a
configuration file it writes dist/tailwind-theme.js and dist/tokens.css.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutDir, "out-dir", "o", "", "Directory relative output paths resolve against (default: config file directory)")
	cmd.Flags().BoolVar(&opts.NoRevision, "no-revision", false, "Omit the git revision from generated headers")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Report outputs that differ from what would be generated instead of writing them")

	return cmd
}

func runGenerate(cmd *cobra.Command, app *appContext, opts generateOptions) error {
	baseDir := app.BaseDir
	if opts.OutDir != "" {
		baseDir = opts.OutDir
	}

	genOpts := []export.Option{export.WithLogger(app.Logger)}
	if !opts.NoRevision {
		rev, err := export.DetectRevision(baseDir)
		if err != nil {
			app.Logger.Warn(fmt.Sprintf("revision detection failed: %v", err))
		}
		genOpts = append(genOpts, export.WithRevision(rev))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	gen := export.New(app.Store, genOpts...)
	out := cmd.OutOrStdout()

	if opts.Check {
		drifts, err := gen.Check(ctx, app.Config, baseDir)
		if err != nil {
			return err
		}
		for _, d := range drifts {
			if d.Missing {
				fmt.Fprintf(out, "missing %s\n", d.Path)
				continue
			}
			fmt.Fprint(out, d.Diff)
		}
		if len(drifts) > 0 {
			return fmt.Errorf("%d of %d output(s) out of date; run buttonkit generate", len(drifts), len(app.Config.Outputs))
		}
		fmt.Fprintf(out, "%d output(s) up to date\n", len(app.Config.Outputs))
		return nil
	}

	results, err := gen.Generate(ctx, app.Config, baseDir)
	if err != nil {
		return err
	}

	for _, res := range results {
		fmt.Fprintf(out, "wrote %s (%s, %s, %d bytes)\n", res.Path, res.Format, res.Content, res.Bytes)
	}
	return nil
}
