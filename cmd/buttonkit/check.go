package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buttonkit/internal/tokens"
	kiterrors "github.com/alexisbeaulieu97/buttonkit/pkg/errors"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	pathColor = color.New(color.FgYellow)
)

func newCheckCmd(root *rootFlags) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify every alias and mapped value traces back to a brand token",
		Long: `Check reports alias and mapped values that are neither brand primitives nor
listed in the allowlist. With --strict the allowlist is ignored, so every
literal override is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := root.loadConfig()
			if err != nil {
				return err
			}

			allow := tokens.Allowlist(cfg.Allowlist)
			if allow == nil {
				allow = tokens.DefaultAllowlist()
			}
			if strict || cfg.Strict {
				allow = tokens.Allowlist{}
			}

			return runCheck(cmd, tokens.Default(), allow)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Ignore the allowlist")

	return cmd
}

func runCheck(cmd *cobra.Command, store *tokens.Store, allow tokens.Allowlist) error {
	out := cmd.OutOrStdout()

	err := store.Validate(allow)
	if err == nil {
		fmt.Fprintf(out, "%s all alias and mapped tokens trace to brand (%d allowlisted)\n", passColor.Sprint("✓"), len(allow))
		return nil
	}

	var integrity *kiterrors.IntegrityError
	if !errors.As(err, &integrity) {
		return err
	}

	for _, path := range integrity.Paths() {
		fmt.Fprintf(out, "%s %s = %s\n", failColor.Sprint("✗"), pathColor.Sprint(path), integrity.Violations[path])
	}
	return fmt.Errorf("%d token value(s) not traced to brand", len(integrity.Violations))
}
