package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	tp "github.com/xlab/treeprint"

	"github.com/matzehuels/treemap/pkg/pipeline"
	"github.com/matzehuels/treemap/pkg/render/sink"
	"github.com/matzehuels/treemap/pkg/treemap"
)

// treeCommand prints the scanned hierarchy, or the visible blocks of its
// layout when --flat is given.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		depth  int
		flat   bool
		ignore []string
	)

	cmd := &cobra.Command{
		Use:   "tree [path]",
		Short: "Print a directory's size hierarchy",
		Example: `  treemap tree ./src --depth 2
  treemap tree . --flat --depth 1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := pipeline.Options{Path: pathArg(args), Depth: depth, Logger: c.Logger}
			applyConfig(&opts, cfg)
			opts.Ignore = append(opts.Ignore, ignore...)

			prog := newProgress(log.FromContext(cmd.Context()))
			t, err := pipeline.Scan(cmd.Context(), opts)
			if err != nil {
				return err
			}
			prog.done("scanned", "path", opts.Path, "nodes", t.Len())

			if err := pipeline.Layout(t, opts); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if flat {
				fmt.Fprintln(out, blocksTable(sink.NewFrame(t, t.Root())))
				return nil
			}
			fmt.Fprint(out, hierarchy(t, t.Root(), depth))
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "levels to show below the root (0 shows everything)")
	cmd.Flags().BoolVar(&flat, "flat", false, "print the visible blocks of the layout as a table")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "glob patterns of names to skip (repeatable)")

	return cmd
}

// hierarchy renders the subtree at id as an indented tree, each line being a
// name followed by its entity suffix. maxDepth limits the levels below id;
// zero means unlimited.
func hierarchy(t *treemap.Tree, id treemap.NodeID, maxDepth int) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}
	p := tp.New()
	p.SetValue(nodeLine(n))
	addChildren(p, t, n, maxDepth, 1)
	return p.String()
}

func addChildren(p tp.Tree, t *treemap.Tree, n *treemap.Node, maxDepth, level int) {
	if maxDepth > 0 && level > maxDepth {
		return
	}
	for _, cid := range n.Children() {
		child := t.Node(cid)
		if child.IsLeaf() {
			p.AddNode(nodeLine(child))
			continue
		}
		branch := p.AddBranch(nodeLine(child))
		addChildren(branch, t, child, maxDepth, level+1)
	}
}

func nodeLine(n *treemap.Node) string {
	if e := n.Entity(); e != nil {
		return n.Name() + e.Suffix(n)
	}
	return n.Name()
}

// blocksTable lays the frame's blocks out as a table, one row per visible
// rectangle, with the swatch column painted in the block's colour.
func blocksTable(f sink.Frame) string {
	rows := make([][]string, 0, len(f.Blocks))
	for _, b := range f.Blocks {
		rows = append(rows, []string{
			"  ",
			b.Path,
			formatSize(b.Size),
			fmt.Sprintf("%d,%d", b.X, b.Y),
			strconv.Itoa(b.W) + "x" + strconv.Itoa(b.H),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Path", "Size", "Origin", "Extent").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 && row >= 0 && row < len(f.Blocks) {
				return lipgloss.NewStyle().Background(lipgloss.Color(f.Blocks[row].Colour.Hex()))
			}
			if col == 2 {
				return lipgloss.NewStyle().Foreground(colorAccent).Align(lipgloss.Right)
			}
			return lipgloss.NewStyle().Foreground(colorValue)
		})
	return t.Render()
}
