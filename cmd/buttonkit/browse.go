package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/buttonkit/internal/tui"
)

var errNotTerminal = errors.New("browse needs an interactive terminal; use resolve or vars instead")

var isTerminal = func(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

func newBrowseCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse tokens and CSS variables interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errNotTerminal
			}

			app, err := root.load(cmd)
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(tui.NewModel(app.Store), tea.WithAltScreen()).Run()
			return err
		},
	}

	return cmd
}
