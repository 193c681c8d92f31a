package main

import (
	"fmt"

	"github.com/mmcdole/gmes/internal/tui/styles"
	"github.com/spf13/cobra"
)

func newFavoritesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List favorite gmes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(appOptions{configPath: flags.configPath})
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			favorites := a.library.Favorites()
			if len(favorites) == 0 {
				fmt.Fprintln(out, "No favorites yet. Use 'gmes favorite <url>' or press s in the grid.")
				return nil
			}

			for _, f := range favorites {
				title := f.Title
				if title == "" {
					title = f.URL
				}
				fmt.Fprintf(out, "%s %s\n  %s\n", styles.FavoriteChar, title, styles.DimStyle.Render(f.URL))
			}
			return nil
		},
	}
}

func newFavoriteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <url> [title]",
		Short: "Toggle a gme's favorite state",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(appOptions{configPath: flags.configPath})
			if err != nil {
				return err
			}
			defer a.Close()

			url, title := args[0], ""
			if len(args) == 2 {
				title = args[1]
			}

			added, err := a.library.ToggleFavorite(url, title)
			if err != nil {
				return fmt.Errorf("failed to save favorites: %w", err)
			}

			out := cmd.OutOrStdout()
			if added {
				fmt.Fprintf(out, "%s Added %s\n", styles.FavoriteChar, url)
			} else {
				fmt.Fprintf(out, "%s Removed %s\n", styles.NotFavoriteChar, url)
			}
			return nil
		},
	}
}
