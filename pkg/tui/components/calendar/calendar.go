// Package calendar renders the month grid for the TUI.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Day describes a single day rendered in the calendar.
type Day struct {
	Day        int
	Date       string
	InJapan    bool
	Holiday    string
	HasLog     bool
	EventCount int
	IsToday    bool
	IsSelected bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	TaiwanStyle   lipgloss.Style
	JapanStyle    lipgloss.Style
	HolidayStyle  lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	MarkerStyle   lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		TaiwanStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		JapanStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		HolidayStyle:  lipgloss.NewStyle().Underline(true),
		TodayStyle:    lipgloss.NewStyle().Bold(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		MarkerStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		ShowHeader:    true,
	}
}

// Render produces the multi-line month grid. Cells must be a 7-multiple
// with zero Day values as leading and trailing blanks.
func Render(cells []Day, opts Options) string {
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("日    一    二    三    四    五    六"))
	}

	for row := 0; row*7 < len(cells); row++ {
		var rendered []string
		for col := 0; col < 7; col++ {
			idx := row*7 + col
			if idx >= len(cells) || cells[idx].Day == 0 {
				rendered = append(rendered, "     ")
				continue
			}
			rendered = append(rendered, renderDay(cells[idx], opts))
		}
		lines = append(lines, strings.Join(rendered, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(d Day, opts Options) string {
	style := opts.TaiwanStyle
	if d.InJapan {
		style = opts.JapanStyle
	}
	if d.Holiday != "" {
		style = style.Inherit(opts.HolidayStyle)
	}
	if d.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if d.IsSelected {
		style = opts.SelectedStyle
	}

	marks := ""
	width := 0
	if d.HasLog {
		marks += "•"
		width++
	}
	if n := d.EventCount; n > 0 {
		if n > 9 {
			n = 9
		}
		marks += fmt.Sprintf("+%d", n)
		width += 2
	}

	// Pad by rune width; the bullet is multi-byte.
	return style.Render(fmt.Sprintf("%2d", d.Day)) +
		opts.MarkerStyle.Render(marks) + strings.Repeat(" ", 3-width)
}

// Detail renders the selected day's full line: flag, holiday and events.
func Detail(d Day, events []string, opts Options) string {
	var b strings.Builder
	flag := "🇹🇼"
	if d.InJapan {
		flag = "🇯🇵"
	}
	b.WriteString(fmt.Sprintf("%s %s", d.Date, flag))
	if d.Holiday != "" {
		b.WriteString("  " + opts.HolidayStyle.Render(d.Holiday))
	}
	for _, ev := range events {
		b.WriteString("\n  · " + ev)
	}
	return b.String()
}
