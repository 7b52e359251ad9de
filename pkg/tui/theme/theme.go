package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Tabs     TabsTheme
	Panel    PanelTheme
	Footer   FooterTheme
	Calendar CalendarTheme
}

// TabsTheme styles the top tab bar.
type TabsTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Warn  lipgloss.Style
	Faint lipgloss.Style
	Done  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Header   lipgloss.Style
	Taiwan   lipgloss.Style
	Japan    lipgloss.Style
	Holiday  lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Marker   lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Tabs: TabsTheme{
			Active: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true).
				Underline(true),
			Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Faint: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Done:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Taiwan:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Japan:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
			Holiday:  lipgloss.NewStyle().Underline(true),
			Today:    lipgloss.NewStyle().Bold(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			Marker:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}
