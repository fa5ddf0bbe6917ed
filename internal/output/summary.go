// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tfctl/dirgen/internal/differ"
	"github.com/tfctl/dirgen/internal/pixel"
)

// WriteSummary renders one row per substitution followed by a totals line.
// With colored set, each color cell is drawn as a swatch of that color.
func WriteSummary(w io.Writer, m *differ.Mapping, colored bool) {
	pairs := m.Pairs()
	if len(pairs) == 0 {
		fmt.Fprintln(w, "No differing pixels.")
		return
	}

	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cellStyle := lipgloss.NewStyle().Align(lipgloss.Left)

	conflicts := map[pixel.Pixel]bool{}
	for _, c := range m.Conflicts() {
		conflicts[c] = true
	}

	var rows [][]string
	for i, p := range pairs {
		note := ""
		if conflicts[p.Source] {
			note = "ambiguous"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			swatch(p.Source, colored),
			swatch(p.Target, colored),
			note,
		})
	}

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col > 0 {
				style = style.PaddingLeft(1)
			}
			return style
		}).
		Headers("#", "FROM", "TO", "").
		BorderHeader(false).
		Rows(rows...)
	fmt.Fprintln(w, t)

	fmt.Fprintf(w, "%s colors, %s pixels changed", humanize.Comma(int64(len(pairs))), humanize.Comma(int64(m.Changed())))
	if n := len(conflicts); n > 0 {
		fmt.Fprintf(w, ", %s ambiguous", humanize.Comma(int64(n)))
	}
	fmt.Fprintln(w)
}

// swatch renders p's hex code, on a background of p itself when colored.
func swatch(p pixel.Pixel, colored bool) string {
	if !colored {
		return p.Hex()
	}

	c := colorful.Color{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
	fg := "#ffffff"
	if l, _, _ := c.Lab(); l > 0.6 { //nolint:mnd
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg)).
		Render(" " + p.Hex() + " ")
}
