package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/treemap/pkg/treemap"
)

// Explorer styles
var (
	statusStyle     = lipgloss.NewStyle().Foreground(colorValue)
	statusHintStyle = lipgloss.NewStyle().Foreground(colorDim)
	statusErrStyle  = lipgloss.NewStyle().Foreground(colorFail)
)

const (
	selectedOutline = "#ffffff"
	hoverOutline    = "#9ca3af"
	explorerHint    = "click to select · ↑/↓ resize · e/a expand · c/x collapse · q zoom · b back · esc quit"
)

// =============================================================================
// ExplorerModel - Interactive treemap
// =============================================================================

// ExplorerModel is the bubbletea model for the interactive treemap. One
// terminal cell is one layout unit; the bottom row is the status line.
//
// After every action the model re-runs size propagation and layout over the
// whole window, so the tree's invariants hold between frames.
type ExplorerModel struct {
	Tree *treemap.Tree

	// Focus is the subtree currently filling the window; q zooms into the
	// selection and b zooms back out to Focus's parent.
	Focus    treemap.NodeID
	Selected treemap.NodeID
	Hover    treemap.NodeID

	Width  int
	Height int

	// Step is the fraction ↑/↓ grow or shrink the selected leaf by.
	Step float64

	// Err is the last mutation failure, shown until the next action.
	Err error
}

// NewExplorerModel creates an explorer over t with the root selected, laid
// out for a default 80x24 terminal until the first WindowSizeMsg arrives.
func NewExplorerModel(t *treemap.Tree, step float64) ExplorerModel {
	m := ExplorerModel{
		Tree:     t,
		Focus:    t.Root(),
		Selected: t.Root(),
		Hover:    treemap.NoNode,
		Width:    80,
		Height:   24,
		Step:     step,
	}
	m.relayout(true)
	return m
}

func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.relayout(true)

	case tea.MouseMsg:
		p := treemap.Point{X: msg.X, Y: msg.Y}
		m.Hover = m.nodeAt(p)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(p)
		}

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "b":
			m.zoomOut()
			return m, nil
		}
		if m.Selected != treemap.NoNode {
			m.Err = nil
			m.handleKey(key)
		}
	}
	return m, nil
}

// handleKey applies one key to the current selection.
func (m *ExplorerModel) handleKey(key string) {
	t, sel := m.Tree, m.Selected
	switch key {
	case "up":
		t.ChangeSize(sel, m.Step)
		m.relayout(false)
	case "down":
		t.ChangeSize(sel, -m.Step)
		m.relayout(false)
	case "delete", "backspace":
		if sel != m.Focus && t.DeleteSelf(sel) {
			m.Selected = treemap.NoNode
			m.relayout(true)
		}
	case "m":
		m.Err = t.Move(sel, m.Hover)
		m.Selected = m.Hover
		m.relayout(true)
	case "v":
		m.Err = t.CopyPaste(sel, m.Hover)
		m.Selected = m.Hover
		m.relayout(true)
	case "e":
		t.Expand(sel)
		m.Selected = treemap.NoNode
	case "a":
		t.ExpandAll(sel)
		m.Selected = treemap.NoNode
	case "d":
		_, _, m.Err = t.Duplicate(sel)
		m.Selected = treemap.NoNode
		m.relayout(true)
	case "c":
		t.Collapse(sel)
		if sel != m.Focus {
			m.Selected = t.Node(sel).Parent()
		}
	case "x":
		t.CollapseAll(sel)
		m.Selected = m.Focus
	case "q":
		if sel != m.Focus {
			m.Focus = sel
			m.relayout(true)
		}
	}
	if m.Hover != treemap.NoNode && !t.Attached(m.Hover) {
		m.Hover = treemap.NoNode
	}
}

// click toggles the selection of the block under p. Clicks outside the
// treemap keep the current selection.
func (m *ExplorerModel) click(p treemap.Point) {
	hit := m.nodeAt(p)
	switch {
	case hit == treemap.NoNode:
	case hit == m.Selected:
		m.Selected = treemap.NoNode
	default:
		m.Selected = hit
	}
}

// zoomOut shows Focus's parent, fully collapsed, with the parent selected.
func (m *ExplorerModel) zoomOut() {
	parent := m.Tree.Node(m.Focus).Parent()
	if parent == treemap.NoNode {
		return
	}
	m.Tree.CollapseAll(parent)
	m.Focus = parent
	m.Selected = parent
	m.Err = nil
	m.relayout(true)
}

// nodeAt hit-tests p against the displayed subtree.
func (m ExplorerModel) nodeAt(p treemap.Point) treemap.NodeID {
	if p.Y >= m.mapHeight() || p.X >= m.Width {
		return treemap.NoNode
	}
	id, ok := m.Tree.NodeAt(m.Focus, p)
	if !ok {
		return treemap.NoNode
	}
	return id
}

// relayout propagates sizes from the real root and lays Focus out over the
// window. Structural edits and zooms also refresh depths and colours.
func (m *ExplorerModel) relayout(refresh bool) {
	m.Tree.RecomputeSizes(m.Tree.Root())
	m.Tree.Layout(m.Focus, treemap.Rect{W: max(m.Width, 0), H: m.mapHeight()})
	if refresh {
		m.Tree.RefreshDisplayMetadata(m.Focus)
	}
}

func (m ExplorerModel) mapHeight() int {
	return max(m.Height-1, 0)
}

// =============================================================================
// Rendering
// =============================================================================

// cell is one terminal cell of the treemap canvas.
type cell struct {
	ch   rune
	bg   string
	fg   string
	bold bool
}

func (m ExplorerModel) View() string {
	var b strings.Builder
	for _, row := range m.canvas() {
		b.WriteString(renderRow(row))
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	return b.String()
}

// canvas paints the visible blocks, their labels and the hover and
// selection outlines.
func (m ExplorerModel) canvas() [][]cell {
	w, h := max(m.Width, 0), m.mapHeight()
	grid := make([][]cell, h)
	for y := range grid {
		grid[y] = make([]cell, w)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' ', bg: "#000000"}
		}
	}

	for _, blk := range m.Tree.VisibleRectangles(m.Focus) {
		r := blk.Rect
		bg := blk.Colour.Hex()
		fg := "#ffffff"
		if blk.Colour.Luminance() > 0.5 {
			fg = "#000000"
		}
		for y := max(r.Y, 0); y < min(r.Y+r.H, h); y++ {
			for x := max(r.X, 0); x < min(r.X+r.W, w); x++ {
				grid[y][x] = cell{ch: ' ', bg: bg, fg: fg}
			}
		}
		if r.H > 0 && r.W > 2 && r.Y < h {
			label := []rune(m.Tree.Node(blk.ID).Name())
			for i := 0; i < len(label) && r.X+1+i < min(r.X+r.W-1, w); i++ {
				grid[r.Y][r.X+1+i].ch = label[i]
			}
		}
	}

	m.outline(grid, m.Hover, hoverOutline, false)
	m.outline(grid, m.Selected, selectedOutline, true)
	return grid
}

// outline draws a box along the border of id's rectangle.
func (m ExplorerModel) outline(grid [][]cell, id treemap.NodeID, colour string, bold bool) {
	if id == treemap.NoNode || !m.Tree.Attached(id) {
		return
	}
	r := m.Tree.Node(id).Rect()
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W-1, r.Y+r.H-1
	set := func(x, y int, ch rune) {
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			return
		}
		grid[y][x].ch = ch
		grid[y][x].fg = colour
		grid[y][x].bold = bold
	}
	for x := x0; x <= x1; x++ {
		set(x, y0, '─')
		set(x, y1, '─')
	}
	for y := y0; y <= y1; y++ {
		set(x0, y, '│')
		set(x1, y, '│')
	}
	if x0 == x1 || y0 == y1 {
		return
	}
	set(x0, y0, '┌')
	set(x1, y0, '┐')
	set(x0, y1, '└')
	set(x1, y1, '┘')
}

// renderRow styles runs of identically coloured cells together.
func renderRow(row []cell) string {
	var b strings.Builder
	for start := 0; start < len(row); {
		end := start + 1
		for end < len(row) && sameStyle(row[end], row[start]) {
			end++
		}
		runes := make([]rune, 0, end-start)
		for _, c := range row[start:end] {
			runes = append(runes, c.ch)
		}
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(row[start].bg)).
			Foreground(lipgloss.Color(row[start].fg)).
			Bold(row[start].bold)
		b.WriteString(style.Render(string(runes)))
		start = end
	}
	return b.String()
}

func sameStyle(a, b cell) bool {
	return a.bg == b.bg && a.fg == b.fg && a.bold == b.bold
}

// statusLine describes the selection, or the last error, in one row.
func (m ExplorerModel) statusLine() string {
	switch {
	case m.Err != nil:
		return statusErrStyle.Render(truncate(m.Err.Error(), m.Width))
	case m.Selected != treemap.NoNode && m.Tree.Attached(m.Selected):
		return statusStyle.Render(truncate(m.Tree.DisplayText(m.Selected, m.Width), m.Width))
	default:
		return statusHintStyle.Render(truncate(explorerHint, m.Width))
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if n < 0 || len(r) <= n {
		return s
	}
	return string(r[:n])
}
