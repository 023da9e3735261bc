package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/treemap/pkg/pipeline"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorAccent = lipgloss.Color("36")  // teal
	colorOK     = lipgloss.Color("35")  // green
	colorWarn   = lipgloss.Color("220") // amber
	colorFail   = lipgloss.Color("167") // soft red
	colorCmd    = lipgloss.Color("75")  // light blue
	colorValue  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleAccent = lipgloss.NewStyle().Foreground(colorAccent)
	styleOK     = lipgloss.NewStyle().Foreground(colorOK)
	styleWarn   = lipgloss.NewStyle().Foreground(colorWarn)
	styleFail   = lipgloss.NewStyle().Foreground(colorFail)
	styleCmd    = lipgloss.NewStyle().Foreground(colorCmd)
	styleValue  = lipgloss.NewStyle().Foreground(colorValue)
	styleLabel  = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	markOK   = "✓"
	markFail = "✗"
	markWarn = "!"
	markInfo = "›"
	markFile = "→"
)

// =============================================================================
// Printer
// =============================================================================

// printer writes styled status lines. Commands build one from
// cmd.OutOrStdout() so their output can be captured.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) printer {
	return printer{w: w}
}

func (p printer) line(mark lipgloss.Style, icon, msg string) {
	fmt.Fprintln(p.w, mark.Render(icon)+" "+msg)
}

func (p printer) success(format string, args ...any) {
	p.line(styleOK, markOK, fmt.Sprintf(format, args...))
}

func (p printer) failure(format string, args ...any) {
	p.line(styleFail, markFail, fmt.Sprintf(format, args...))
}

func (p printer) warning(format string, args ...any) {
	p.line(styleWarn, markWarn, styleWarn.Render(fmt.Sprintf(format, args...)))
}

func (p printer) info(format string, args ...any) {
	p.line(styleDim, markInfo, fmt.Sprintf(format, args...))
}

// detail prints an indented, dimmed line under the previous status line.
func (p printer) detail(format string, args ...any) {
	fmt.Fprintln(p.w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

func (p printer) file(path string) {
	fmt.Fprintln(p.w, "  "+styleDim.Render(markFile)+" "+styleValue.Render(path))
}

func (p printer) keyValue(key, value string) {
	fmt.Fprintln(p.w, styleLabel.Render(key)+" "+styleValue.Render(value))
}

// stats prints one dimmed line such as
// "12 nodes · 9 blocks · 1.20MB · fresh · 35ms".
func (p printer) stats(s pipeline.Stats, cached bool) {
	var parts []string
	if s.NodeCount > 0 {
		parts = append(parts, fmt.Sprintf("%d nodes", s.NodeCount))
	}
	if s.BlockCount > 0 {
		parts = append(parts, fmt.Sprintf("%d blocks", s.BlockCount))
	}
	if s.TotalSize > 0 {
		parts = append(parts, formatSize(s.TotalSize))
	}
	if cached {
		parts = append(parts, styleOK.Render("cached"))
	} else {
		parts = append(parts, "fresh")
	}
	if total := s.ScanTime + s.LayoutTime + s.RenderTime; total > 0 {
		parts = append(parts, total.Round(time.Millisecond).String())
	}
	fmt.Fprintln(p.w, "  "+styleDim.Render(strings.Join(parts, " · ")))
}

func (p printer) nextStep(description, cmd string) {
	fmt.Fprintln(p.w, styleDim.Render(description+":")+" "+styleCmd.Render(cmd))
}
