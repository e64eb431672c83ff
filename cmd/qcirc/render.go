// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	missStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)

	return t
}

// bitString renders bits as "100101".
func bitString(bits []int) string {
	var b strings.Builder
	for _, v := range bits {
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

func joinFactors(parts []string) string { return strings.Join(parts, " × ") }
