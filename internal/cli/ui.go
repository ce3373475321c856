// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/transportation/internal/config"
)

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // borders
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
)

// theme is the set of styles for one run. Without color every style is
// plain, so output is stable in pipes and tests.
type theme struct {
	title, label, value, dim, success, warning, mark lipgloss.Style
	border                                           lipgloss.Style
	cellWidth                                        int
	maxCells                                         int
}

func newTheme(rc config.RenderConfig) *theme {
	plain := lipgloss.NewStyle()
	th := &theme{
		title: plain, label: plain, value: plain, dim: plain,
		success: plain, warning: plain, mark: plain, border: plain,
		cellWidth: rc.CellWidth,
		maxCells:  rc.MaxCells,
	}
	if rc.Color {
		th.title = plain.Bold(true).Foreground(colorCyan)
		th.label = plain.Foreground(colorGray)
		th.value = plain.Foreground(colorWhite)
		th.dim = plain.Foreground(colorDim)
		th.success = plain.Foreground(colorGreen)
		th.warning = plain.Foreground(colorYellow)
		th.mark = plain.Bold(true).Foreground(colorCyan)
		th.border = plain.Foreground(colorDim)
	}

	return th
}

func (th *theme) printTitle(w io.Writer, s string) {
	fmt.Fprintln(w, th.title.Render(s))
}

func (th *theme) printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, th.label.Width(14).Render(key)+" "+th.value.Render(value))
}

func (th *theme) printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, th.success.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func (th *theme) printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, th.warning.Render(iconWarning)+" "+th.warning.Render(fmt.Sprintf(format, args...)))
}

func (th *theme) printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, th.dim.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// grid is a labeled matrix ready for rendering.
type grid struct {
	rows, cols []string
	cells      [][]string
	marked     func(i, j int) bool // cells drawn with the mark style
}

// renderGrid draws g as a bordered table; grids above the configured cell
// budget are summarized instead.
func (th *theme) renderGrid(w io.Writer, g grid) {
	if th.maxCells > 0 && len(g.rows)*len(g.cols) > th.maxCells {
		th.printInfo(w, "%dx%d matrix omitted (render.max_cells = %d)", len(g.rows), len(g.cols), th.maxCells)
		return
	}

	rows := make([][]string, len(g.rows))
	for i, label := range g.rows {
		rows[i] = append([]string{label}, g.cells[i]...)
	}
	cell := lipgloss.NewStyle().Width(th.cellWidth).Align(lipgloss.Right).PaddingRight(1)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(th.border).
		Headers(append([]string{""}, g.cols...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow || col == 0:
				return cell.Inherit(th.label)
			case g.marked != nil && g.marked(row, col-1):
				return cell.Inherit(th.mark)
			}
			return cell.Inherit(th.value)
		})
	fmt.Fprintln(w, t.Render())
}
