package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/gmes/internal/tui"
	"github.com/spf13/cobra"
)

// rootFlags are shared by every command
type rootFlags struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gmes",
		Short:         "Browse and play browser gmes from the terminal",
		Long:          "Browse the gme catalog in a searchable grid, keep favorites, and play gmes in a sandboxed browser view",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "config file (default ~/.config/gmes/config.yaml)")

	// Add all subcommands
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newFavoritesCmd(flags))
	cmd.AddCommand(newFavoriteCmd(flags))
	cmd.AddCommand(newPlayCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// runTUI starts the interactive grid
func runTUI(flags *rootFlags) error {
	a, err := newApp(appOptions{configPath: flags.configPath, startSandbox: true})
	if err != nil {
		return err
	}
	defer a.Close()

	model := tui.NewModel(a.library, a.cfg.UI.GridColumns)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	a.logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gmes %s\n", Version)
		},
	}
}
