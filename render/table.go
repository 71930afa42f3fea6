// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/homology/chain"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)
	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
	groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)
	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))
)

var tableHeaders = []string{"n", "H_n", "rank", "torsion"}

func rows[T any](h *chain.Homology[T], ring string) [][]string {
	out := make([][]string, 0, h.Len())
	for n, g := range h.All() {
		out = append(out, []string{
			strconv.Itoa(n),
			Group(g, ring),
			strconv.Itoa(g.FreeRank()),
			torsionList(g),
		})
	}

	return out
}

// Table renders h as a bordered terminal table with one row per dimension.
func Table[T any](h *chain.Homology[T], ring string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(tableHeaders...).
		Rows(rows(h, ring)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return groupStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}

// Markdown renders h as a Markdown document: a heading, a table and the
// Euler characteristic.
func Markdown[T any](h *chain.Homology[T], ring string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Homology over %s\n\n", ring)
	if h.Len() == 0 {
		b.WriteString("The complex is empty.\n")

		return b.String()
	}
	b.WriteString("| " + strings.Join(tableHeaders, " | ") + " |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, r := range rows(h, ring) {
		b.WriteString("| " + strings.Join(r, " | ") + " |\n")
	}
	fmt.Fprintf(&b, "\nEuler characteristic: %d\n", h.EulerCharacteristic())

	return b.String()
}

// RenderMarkdown styles md for the terminal with glamour, wrapping at width
// columns (0 disables wrapping).
func RenderMarkdown(md string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("render: markdown: %w", err)
	}

	return r.Render(md)
}
