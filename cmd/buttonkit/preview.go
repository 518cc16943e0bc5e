package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buttonkit/internal/button"
)

func newPreviewCmd(root *rootFlags) *cobra.Command {
	flags := &buttonFlags{}
	var all bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview buttons in the terminal",
		Long: `Preview draws a button with the token colors. With --all it draws every
variant at every size.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if all {
				fmt.Fprintln(out, button.Gallery(app.Store))
				return nil
			}

			opts, err := flags.options()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, button.New(flags.label, opts).View(app.Store))
			return nil
		},
	}

	addButtonFlags(cmd, flags)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Preview every variant and size")

	return cmd
}
