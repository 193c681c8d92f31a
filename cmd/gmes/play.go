package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/mmcdole/gmes/internal/domain"
	"github.com/mmcdole/gmes/internal/service"
	"github.com/mmcdole/gmes/internal/tui/styles"
	"github.com/spf13/cobra"
)

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func newPlayCmd(flags *rootFlags) *cobra.Command {
	var fullscreen bool

	cmd := &cobra.Command{
		Use:   "play <name>",
		Short: "Play a gme in the browser",
		Long:  "Find a gme by name and serve it in a sandboxed browser view until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(appOptions{configPath: flags.configPath, startSandbox: true})
			if err != nil {
				return err
			}
			defer a.Close()

			errOut := cmd.ErrOrStderr()
			a.library.SetNotifier(domain.NotifierFunc(func(n domain.Notification) {
				fmt.Fprintln(errOut, n.Message)
			}))

			a.library.LoadCatalog(context.Background())
			item, ok := findItem(a.library, args[0])
			if !ok {
				if suggestion, found := a.library.Suggestion(); found {
					return fmt.Errorf("no gme named %q, did you mean %q?", args[0], suggestion)
				}
				return fmt.Errorf("no gme named %q", args[0])
			}

			if err := playWithSpinner(errOut, a.library, item); err != nil {
				return err
			}

			_, title := a.library.Current()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styles.SuccessStyle.Render(fmt.Sprintf("✓ Playing %s at %s", title, a.library.ViewURL())))

			if fullscreen {
				// The service notifies on failure
				_ = a.library.Fullscreen()
			}

			fmt.Fprintln(out, styles.DimStyle.Render("Press Ctrl+C to stop."))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			<-ctx.Done()

			a.library.Close()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&fullscreen, "fullscreen", "f", false, "open in a fullscreen browser window")
	return cmd
}

// playWithSpinner loads the item while animating a spinner on w
func playWithSpinner(w io.Writer, lib *service.LibraryService, item domain.CatalogItem) error {
	token, err := lib.BeginPlay(item.URL, item.Name)
	if err != nil {
		return err
	}

	// Channel to receive result
	type result struct {
		markup string
		err    error
	}
	resultCh := make(chan result, 1)

	// Start the fetch in background
	go func() {
		markup, err := lib.FetchContent(context.Background(), item.URL)
		resultCh <- result{markup, err}
	}()

	// Spinner animation
	frame := 0
	fmt.Fprintf(w, "\r%s Loading %s...", styles.SpinnerFrames[frame], item.Name)

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case res := <-resultCh:
			// Clear spinner line
			fmt.Fprint(w, clearSpinnerLine)

			err := lib.FinishPlay(token, item.URL, item.Name, res.markup, res.err)
			if errors.Is(err, domain.ErrContentUnavailable) {
				// Already reported through the notifier
				return errors.New("gme could not be loaded")
			}
			return err

		case <-ticker.C:
			frame++
			fmt.Fprintf(w, "\r%s Loading %s...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)], item.Name)
		}
	}
}
