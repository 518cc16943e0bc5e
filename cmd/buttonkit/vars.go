package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buttonkit/internal/tokens"
)

func newVarsCmd(root *rootFlags) *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "vars",
		Short: "Print the CSS custom properties derived from the tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tokens.FlattenToVariables(app.Store).CSS(selector))
			return nil
		},
	}

	cmd.Flags().StringVarP(&selector, "selector", "s", ":root", "Selector wrapping the declarations")

	return cmd
}
