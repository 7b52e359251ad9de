package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/ycwu/lifedash/pkg/journal"
	"github.com/ycwu/lifedash/pkg/plan"
	"github.com/ycwu/lifedash/pkg/progress"
	"github.com/ycwu/lifedash/pkg/task"
	"github.com/ycwu/lifedash/pkg/template"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1736553600000  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, done, total int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d/%d\n", done, total)
}

func (pp *PrettyPrint) id(id int64) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	s := fmt.Sprintf("%d", id)
	_, _ = y.Print(s)
	_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(s)))
}

// Tasks prints the weekly goal list with a completion header.
func (pp *PrettyPrint) Tasks(list task.List) {
	pp.TitleWithCount("本週目標", list.CompletedCount(), len(list))

	if len(list) == 0 {
		pp.none()
		return
	}

	p := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	tag := color.New(color.FgCyan, color.Faint)

	for _, t := range list {
		if pp.ShowID {
			pp.id(t.ID)
		}
		box := "[ ]"
		printer := p
		if t.Completed {
			box = "[x]"
			printer = done
		}
		_, _ = printer.Printf("%s %s ", box, t.Text)
		_, _ = tag.Printf("#%s\n", t.Tag)
	}
	_, _ = p.Println("")
}

const barWidth = 20

// Progress prints the yearly metrics as a table with inline bars.
func (pp *PrettyPrint) Progress(list progress.List) {
	pp.Title("年度進度")

	if len(list) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50

	for _, m := range list {
		pct := m.Percent()
		row := []interface{}{m.Label, bar(pct), fmt.Sprintf("%.4g/%.4g %s", m.Current, m.Target, m.Unit)}
		if pp.ShowID {
			row = append([]interface{}{m.ID}, row...)
		}
		table.AddRow(row...)
	}
	fmt.Println(table)
	fmt.Println("")
}

func bar(pct float64) string {
	filled := int(pct / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// Journal prints one day's record: levels, timestamped entries and notes.
func (pp *PrettyPrint) Journal(date string, d journal.DailyLog) {
	pp.Title(date)

	p := color.New()
	faint := color.New(color.Faint)
	warn := color.New(color.FgHiRed)

	_, _ = p.Printf("能量 %s (%d/%d)\n", strings.Repeat("⭐", d.Energy), d.Energy, journal.EnergyMax)
	stress := p
	if d.Stress >= plan.StressWarnLevel {
		stress = warn
	}
	_, _ = stress.Printf("壓力 %d/%d\n\n", d.Stress, journal.StressMax)

	if len(d.Entries) == 0 {
		pp.none()
	} else {
		for _, e := range d.Entries {
			if pp.ShowID {
				pp.id(e.ID)
			}
			_, _ = faint.Printf("%s ", e.Time)
			_, _ = p.Println(e.Text)
		}
		_, _ = p.Println("")
	}

	if d.Notes != "" {
		_, _ = faint.Println(d.Notes)
		_, _ = p.Println("")
	}
}

// Forecast prints the stress forecast as a horizontal bar chart, marking
// the weeks at or above the warning level.
func (pp *PrettyPrint) Forecast(points []plan.ForecastPoint) {
	pp.Title("壓力預測")

	p := color.New()
	warn := color.New(color.FgHiRed, color.Bold)
	faint := color.New(color.Faint)

	for _, pt := range points {
		printer := p
		if pt.Stress >= plan.StressWarnLevel {
			printer = warn
		}
		_, _ = faint.Printf("%-4s", pt.Week)
		_, _ = printer.Printf("%s %d\n", strings.Repeat("▇", pt.Stress), pt.Stress)
	}
	fmt.Println("")
}

// Quarters prints the yearly timeline.
func (pp *PrettyPrint) Quarters(quarters []plan.Quarter) {
	pp.Title("年度時間線")

	b := color.New(color.Bold)
	p := color.New()

	faint := color.New(color.Faint)
	for _, q := range quarters {
		_, _ = b.Printf("%s ", q.Q)
		_, _ = faint.Printf("%-8s", q.Weeks)
		_, _ = p.Printf(" %s", q.Focus)
		_, _ = faint.Printf("  (%s)\n", q.Location)
	}
	fmt.Println("")
}

// Protocols prints the emergency playbook.
func (pp *PrettyPrint) Protocols(protocols []plan.Protocol) {
	pp.Title("緊急應對")

	b := color.New(color.Bold)
	p := color.New()

	for _, pr := range protocols {
		_, _ = b.Printf("%s\n", pr.Title)
		_, _ = p.Printf("  → %s\n", pr.Action)
	}
	fmt.Println("")
}

// Templates prints the daily-schedule template catalog.
func (pp *PrettyPrint) Templates(templates []template.Template) {
	pp.Title("日誌範本")

	b := color.New(color.Bold)
	faint := color.New(color.Faint)

	for _, t := range templates {
		_, _ = b.Printf("%s", t.Name)
		_, _ = faint.Printf("  %s\n", t.Intensity)
		_, _ = faint.Printf("    %s\n", t.Desc)
	}
	fmt.Println("")
}

// Template prints one template's full schedule.
func (pp *PrettyPrint) Template(t template.Template) {
	b := color.New(color.Bold)
	p := color.New()

	_, _ = b.Printf("%s (%s)\n", t.Name, t.Intensity)
	_, _ = p.Println(t.Schedule)
	fmt.Println("")
}

// Alerts prints the dashboard alert lines.
func (pp *PrettyPrint) Alerts(alerts []string) {
	w := color.New(color.FgHiYellow)
	for _, a := range alerts {
		_, _ = w.Printf("! %s\n", a)
	}
	fmt.Println("")
}

// Summary prints the generated weekly summary text.
func (pp *PrettyPrint) Summary(week int, text string) {
	pp.Title(fmt.Sprintf("Week %d 總結", week))
	fmt.Println(text)
	fmt.Println("")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}
