package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/ycwu/lifedash/pkg/app"
	"github.com/ycwu/lifedash/pkg/location"
)

// Cells are 6 columns wide: day number, log dot, event count marker.
const cellWidth = 6
const gridWidth = 7 * cellWidth

var weekdayHeader = []string{"日", "一", "二", "三", "四", "五", "六"}

// Month prints the resolved month grid. Days in Japan render highlighted,
// holidays underlined, today bold. A dot marks days with journal entries
// and +n the number of events.
func (pp *PrettyPrint) Month(year int, month time.Month, cells []app.DayCell) {
	today := time.Now().Format("2006-01-02")

	tf := color.New(color.FgWhite, color.Italic)
	title := fmt.Sprintf("%d年%d月", year, int(month))
	mid := (gridWidth - len([]rune(title))*2) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), title)

	h := color.New(color.Faint)
	for _, wd := range weekdayHeader {
		_, _ = h.Printf("%s%s", wd, strings.Repeat(" ", cellWidth-2))
	}
	fmt.Print("\n")

	for i, cell := range cells {
		if cell.Day == 0 {
			fmt.Print(strings.Repeat(" ", cellWidth))
		} else {
			pp.printCell(cell, cell.Date == today)
		}
		if (i+1)%7 == 0 {
			fmt.Print("\n")
		}
	}

	pp.legend()
}

func (pp *PrettyPrint) printCell(cell app.DayCell, today bool) {
	attrs := []color.Attribute{}
	if cell.Location == location.Japan {
		attrs = append(attrs, color.FgHiMagenta)
	}
	if cell.Holiday != "" {
		attrs = append(attrs, color.Underline)
	}
	if today {
		attrs = append(attrs, color.Bold)
	}
	printer := color.New(attrs...)

	marks := ""
	if cell.HasLog {
		marks += "•"
	}
	if n := len(cell.Events); n > 0 {
		marks += fmt.Sprintf("+%d", n)
	}
	_, _ = printer.Printf("%2d", cell.Day)
	pad := cellWidth - 2 - len([]rune(marks))
	if pad < 1 {
		pad = 1
	}
	_, _ = color.New(color.Faint).Printf("%s%s", marks, strings.Repeat(" ", pad))
}

// MonthDetail lists the days carrying a holiday or events below the grid.
func (pp *PrettyPrint) MonthDetail(cells []app.DayCell) {
	p := color.New()
	faint := color.New(color.Faint)

	for _, cell := range cells {
		if cell.Day == 0 || (cell.Holiday == "" && len(cell.Events) == 0) {
			continue
		}
		_, _ = p.Printf("%2d %s", cell.Day, cell.Location.Flag())
		if cell.Holiday != "" {
			_, _ = faint.Printf(" %s", cell.Holiday)
		}
		for _, ev := range cell.Events {
			_, _ = p.Printf(" · %s", ev.Text)
		}
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

func (pp *PrettyPrint) legend() {
	faint := color.New(color.Faint)
	jp := color.New(color.FgHiMagenta)

	_, _ = faint.Print("\n")
	_, _ = jp.Print("■")
	_, _ = faint.Printf(" %s %s   ", location.Japan.Flag(), location.Japan.Name())
	_, _ = faint.Printf("□ %s %s   • 日誌   +n 事件\n\n", location.Taiwan.Flag(), location.Taiwan.Name())
}
