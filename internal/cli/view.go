package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/treemap/pkg/errors"
	"github.com/matzehuels/treemap/pkg/pipeline"
)

// viewCommand opens the interactive treemap explorer.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		depth  int
		ignore []string
	)

	cmd := &cobra.Command{
		Use:   "view [path]",
		Short: "Explore a directory treemap in the terminal",
		Long: `View scans a directory and opens an interactive treemap.

Click a block to select it (click again to deselect), then:

  e        expand the selected folder
  a        expand the folder and every folder inside it
  c        collapse the parent folder
  x        collapse the entire display
  q        zoom into the selected folder or file
  b        zoom back out to the parent folder
  ↑ / ↓    grow or shrink the selected file
  m        move the selected file into the folder under the mouse
  v        paste a copy of the selected file into the folder under the mouse
  d        duplicate the selected file
  del      remove the selection from the display
  esc      quit

Edits only change the display; nothing on disk is touched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := pipeline.Options{Path: pathArg(args), Logger: c.Logger}
			applyConfig(&opts, cfg)
			opts.Ignore = append(opts.Ignore, ignore...)
			if depth < 0 {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "depth cannot be negative: %d", depth)
			}

			spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Scanning %s...", opts.Path))
			spinner.Start()
			t, err := pipeline.Scan(ctx, opts)
			if err != nil {
				spinner.StopWithError("Scan failed")
				return err
			}
			spinner.Stop()
			c.Logger.Debug("scanned directory", "path", opts.Path, "nodes", t.Len())

			pipeline.ExpandDepth(t, t.Root(), depth)
			model := NewExplorerModel(t, cfg.ResizeStep)

			p := tea.NewProgram(model,
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
			)
			if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("run explorer: %w", err)
			}
			return ctx.Err()
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 1, "levels expanded at start (0 expands everything)")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "glob patterns of names to skip (repeatable)")

	return cmd
}
