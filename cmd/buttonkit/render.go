package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/buttonkit/internal/button"
)

func addButtonFlags(cmd *cobra.Command, flags *buttonFlags) {
	cmd.Flags().StringVar(&flags.variant, "variant", "primary", "Visual variant (primary, secondary, outline)")
	cmd.Flags().StringVar(&flags.size, "size", "medium", "Size (small, medium, large)")
	cmd.Flags().StringVar(&flags.kind, "type", "button", "Button type attribute (button, submit, reset)")
	cmd.Flags().StringVar(&flags.class, "class", "", "Extra classes appended to the composed class string")
	cmd.Flags().StringVar(&flags.label, "label", "Button", "Button label")
	cmd.Flags().BoolVar(&flags.disabled, "disabled", false, "Render the disabled state")
	cmd.Flags().BoolVar(&flags.loading, "loading", false, "Render the loading state")
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &buttonFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the HTML markup for a button",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			app, err := root.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := button.New(flags.label, opts).Render(out, app.Store); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	addButtonFlags(cmd, flags)

	return cmd
}
