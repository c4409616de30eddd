// Package ui implements pick.UI for an interactive terminal.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/xtding233/rpick/internal/pick"
)

// Terminal prompts on out and reads answers line by line from in.
type Terminal struct {
	in       *bufio.Reader
	out      io.Writer
	verbose  bool
	renderer *lipgloss.Renderer
}

// NewTerminal returns a Terminal. Chance tables are shown only when
// verbose is set. Styling follows what out supports, so a pipe or buffer
// gets plain text.
func NewTerminal(in io.Reader, out io.Writer, verbose bool) *Terminal {
	return &Terminal{
		in:       bufio.NewReader(in),
		out:      out,
		verbose:  verbose,
		renderer: lipgloss.NewRenderer(out),
	}
}

// ForceColor styles tables with 256 colours whatever out turns out to be.
func (t *Terminal) ForceColor() {
	t.renderer.SetColorProfile(termenv.ANSI256)
}

func (t *Terminal) ShouldRenderTables() bool { return t.verbose }

func (t *Terminal) Notify(message string) {
	fmt.Fprintln(t.out, message)
}

// RequestConsent accepts on an empty line, "y" or "Y". End of input also
// counts as the default answer.
func (t *Terminal) RequestConsent(choice string) bool {
	fmt.Fprintf(t.out, "Choice is %s. Accept? (Y/n) ", choice)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.out)
		return true
	}
	switch strings.TrimSpace(line) {
	case "", "y", "Y":
		return true
	}
	return false
}

// RenderTable draws the table with the offered row highlighted and the
// totals, if any, as a last bold row.
func (t *Terminal) RenderTable(tbl pick.Table) {
	cell := t.renderer.NewStyle().Padding(0, 1)
	header := cell.Bold(true)
	chosen := cell.Bold(true).Foreground(lipgloss.Color("3"))
	footer := cell.Bold(true)

	chosenRow, footerRow := -2, -2
	rows := make([][]string, 0, len(tbl.Rows)+1)
	for i, r := range tbl.Rows {
		if r.Chosen {
			chosenRow = i
		}
		rows = append(rows, formatCells(r.Cells))
	}
	if len(tbl.Footer) > 0 {
		footerRow = len(rows)
		rows = append(rows, formatCells(tbl.Footer))
	}

	out := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(t.renderer.NewStyle()).
		Headers(formatCells(tbl.Header)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return header
			case chosenRow:
				return chosen
			case footerRow:
				return footer
			}
			return cell
		})
	fmt.Fprintln(t.out, out.Render())
}

func formatCells(cells []pick.Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = formatCell(c)
	}
	return out
}

func formatCell(c pick.Cell) string {
	switch c.Kind {
	case pick.CellFloat:
		return fmt.Sprintf("%6.2f%%", c.Float)
	case pick.CellBool:
		if c.Bool {
			return "✓"
		}
		return ""
	case pick.CellInt:
		return strconv.FormatInt(c.Int, 10)
	case pick.CellUint:
		return strconv.FormatUint(c.Uint, 10)
	}
	return c.Text
}
