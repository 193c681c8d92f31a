package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/gmes/internal/domain"
	"github.com/mmcdole/gmes/internal/service"
	"github.com/mmcdole/gmes/internal/tui/styles"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultTableWidth = 100

func newListCmd(flags *rootFlags) *cobra.Command {
	var fuzzy bool

	cmd := &cobra.Command{
		Use:   "list [term]",
		Short: "List gmes in the catalog",
		Long:  "Display the catalog, favorites first, optionally filtered by a search term",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := appOptions{configPath: flags.configPath}
			if fuzzy {
				opts.searchMode = "fuzzy"
			}
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			a.library.LoadCatalog(context.Background())
			if len(args) == 1 {
				a.library.Search(args[0])
			}

			out := cmd.OutOrStdout()
			items := a.library.Rendered()
			if len(items) == 0 {
				fmt.Fprintln(out, "No gmes found")
				if suggestion, ok := a.library.Suggestion(); ok {
					fmt.Fprintf(out, "Did you mean %q?\n", suggestion)
				}
				return nil
			}

			fmt.Fprintf(out, "\n%d of %d gmes\n\n", len(items), len(a.library.Catalog()))
			fmt.Fprintln(out, renderItemTable(items, a.library.IsFavorite, terminalWidth(out)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&fuzzy, "fuzzy", "f", false, "match the term as a fuzzy subsequence")
	return cmd
}

// renderItemTable renders items with a favorite column, sized to width
func renderItemTable(items []domain.CatalogItem, isFavorite func(string) bool, width int) string {
	nameWidth := 32
	urlWidth := max(width-nameWidth-3-8, 20)

	columns := []table.Column{
		{Title: " ", Width: 1},
		{Title: "Name", Width: nameWidth},
		{Title: "URL", Width: urlWidth},
	}

	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		star := styles.NotFavoriteChar
		if isFavorite(item.URL) {
			star = styles.FavoriteChar
		}
		rows = append(rows, table.Row{
			star,
			styles.Truncate(item.Name, nameWidth),
			styles.Truncate(item.URL, urlWidth),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.DimGray).
		BorderBottom(true).
		Bold(true)
	// Unfocused tables still highlight the cursor row
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}

// terminalWidth returns the width of w when it is a terminal
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultTableWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTableWidth
	}
	return width
}

// findItem picks the catalog item a user named: an exact case-insensitive
// match wins, then the first search result.
func findItem(lib *service.LibraryService, name string) (domain.CatalogItem, bool) {
	lib.Search(name)
	results := lib.Filtered()
	for _, item := range results {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	if len(results) > 0 {
		return results[0], true
	}
	return domain.CatalogItem{}, false
}
