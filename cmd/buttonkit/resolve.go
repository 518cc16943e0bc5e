package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/buttonkit/internal/tokens"
	kiterrors "github.com/alexisbeaulieu97/buttonkit/pkg/errors"
)

type resolveOptions struct {
	Format string
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <dotted.path>",
		Short: "Print the token or group at a dotted path",
		Long: `Resolve walks the token tree (brand, alias, mapped) one segment at a time.
Segments are matched literally, so keys containing slashes are written as-is:

  buttonkit resolve brand.color.brand/yellow/800
  buttonkit resolve alias.typography.body-regular.lineHeight`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd)
			if err != nil {
				return err
			}

			node, ok := tokens.ResolveByDottedPath(app.Store.Root(), args[0])
			if !ok {
				return kiterrors.NewNotFoundError(args[0])
			}
			return printNode(cmd, node, opts.Format)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "Output format for groups (json, yaml)")

	return cmd
}

func printNode(cmd *cobra.Command, node tokens.Node, format string) error {
	out := cmd.OutOrStdout()

	if token, ok := node.(tokens.Token); ok && token.Kind() != tokens.KindTypography {
		fmt.Fprintln(out, token.String())
		return nil
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	default:
		return kiterrors.NewValidationError("format", fmt.Sprintf("unsupported format %q (want json or yaml)", format), nil)
	}
}
