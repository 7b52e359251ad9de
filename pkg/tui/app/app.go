// Package teaui hosts the Bubble Tea program for the dashboard TUI.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/ycwu/lifedash/pkg/ai"
	"github.com/ycwu/lifedash/pkg/app"
	"github.com/ycwu/lifedash/pkg/dateutil"
	"github.com/ycwu/lifedash/pkg/event"
	"github.com/ycwu/lifedash/pkg/journal"
	"github.com/ycwu/lifedash/pkg/location"
	"github.com/ycwu/lifedash/pkg/plan"
	"github.com/ycwu/lifedash/pkg/progress"
	"github.com/ycwu/lifedash/pkg/store"
	"github.com/ycwu/lifedash/pkg/task"
	"github.com/ycwu/lifedash/pkg/tui/components/calendar"
	summarypane "github.com/ycwu/lifedash/pkg/tui/components/summary"
	"github.com/ycwu/lifedash/pkg/tui/theme"
)

type tab int

const (
	tabDashboard tab = iota
	tabCalendar
	tabTasks
	tabSummary
)

var tabNames = []string{"總覽", "月曆", "目標", "週總結"}

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

type insertTarget int

const (
	insertNone insertTarget = iota
	insertTask
	insertTaskEdit
	insertEvent
	insertJournal
	insertNotes
)

type errMsg struct{ err error }

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

type summaryMsg struct{ text string }

// Model contains UI state.
type Model struct {
	svc    *app.Service
	client *ai.Client
	ctx    context.Context
	cancel context.CancelFunc

	tab    tab
	mode   mode
	insert insertTarget
	input  textinput.Model

	termWidth  int
	termHeight int
	status     string

	tasks   task.List
	metrics progress.List
	logs    journal.Logs
	events  event.Events
	cells   []app.DayCell

	year     int
	month    time.Month
	selected time.Time

	taskCursor int

	summary summarypane.Model

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	theme theme.Theme
}

// New builds the initial model around the service.
func New(svc *app.Service) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	ti := textinput.New()
	ti.Placeholder = ""

	now := time.Now()
	m := &Model{
		svc:      svc,
		client:   ai.New(ai.LoadOptions()),
		ctx:      ctx,
		cancel:   cancel,
		input:    ti,
		year:     now.Year(),
		month:    now.Month(),
		selected: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local),
		summary:  summarypane.New(),
		theme:    theme.Default(),
	}
	m.refresh()
	return m
}

// Init starts the store watcher.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.svc)
}

// refresh reloads every snapshot from the service. Reads are local disk, so
// this stays synchronous.
func (m *Model) refresh() {
	if m.svc == nil {
		return
	}
	m.tasks = m.svc.Tasks()
	m.metrics = m.svc.Progress()
	m.logs = m.svc.Logs()
	m.events = m.svc.Events()
	m.cells = m.svc.Month(m.year, m.month)
	if m.taskCursor >= len(m.tasks) {
		m.taskCursor = len(m.tasks) - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) generateSummary() tea.Cmd {
	if !m.summary.Trigger() {
		return nil
	}
	svc := m.svc
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		now := time.Now()
		prompt := ai.BuildPrompt(dateutil.WeekNumber(now), svc.Tasks(), svc.WeekLogs(now))
		return summaryMsg{text: client.Summarize(ctx, prompt)}
	}
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "ERR: watch " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.refresh()
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
	case summaryMsg:
		m.summary.SetResult(msg.text)
	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.mode == modeInsert {
		return m.handleInsertKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.stopWatch()
		m.cancel()
		return tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % 4
		return nil
	case "shift+tab":
		m.tab = (m.tab + 3) % 4
		return nil
	case "1", "2", "3", "4":
		m.tab = tab(int(msg.String()[0] - '1'))
		return nil
	}

	switch m.tab {
	case tabCalendar:
		return m.handleCalendarKey(msg)
	case tabTasks:
		return m.handleTasksKey(msg)
	case tabSummary:
		if msg.String() == "g" {
			return m.generateSummary()
		}
	}
	return nil
}

func (m *Model) handleCalendarKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		m.moveSelection(-1)
	case "right", "l":
		m.moveSelection(1)
	case "up", "k":
		m.moveSelection(-7)
	case "down", "j":
		m.moveSelection(7)
	case "[":
		m.year, m.month = dateutil.PrevMonth(m.year, m.month)
		m.clampSelection()
		m.refresh()
	case "]":
		m.year, m.month = dateutil.NextMonth(m.year, m.month)
		m.clampSelection()
		m.refresh()
	case "t":
		if _, err := m.svc.ToggleLocation(m.selectedDate()); err != nil {
			m.status = "ERR: " + err.Error()
			break
		}
		m.refresh()
	case "e":
		m.enterInsert(insertEvent, "事件: ")
	case "o":
		m.enterInsert(insertJournal, "日誌: ")
	case "n":
		m.enterInsert(insertNotes, "筆記: ")
	}
	return nil
}

func (m *Model) handleTasksKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	case "down", "j":
		if m.taskCursor < len(m.tasks)-1 {
			m.taskCursor++
		}
	case "space", "enter":
		if t := m.cursorTask(); t != nil {
			if _, err := m.svc.ToggleTask(t.ID); err != nil {
				m.status = "ERR: " + err.Error()
				break
			}
			m.refresh()
		}
	case "a":
		m.enterInsert(insertTask, "目標: ")
	case "e":
		if t := m.cursorTask(); t != nil {
			m.enterInsert(insertTaskEdit, "編輯: ")
			m.input.SetValue(t.Text)
			m.input.CursorEnd()
		}
	case "d":
		if t := m.cursorTask(); t != nil {
			if err := m.svc.RemoveTask(t.ID); err != nil {
				m.status = "ERR: " + err.Error()
				break
			}
			m.refresh()
		}
	}
	return nil
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.leaveInsert()
		return nil
	case "enter":
		m.commitInsert()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) enterInsert(target insertTarget, placeholder string) {
	m.mode = modeInsert
	m.insert = target
	m.input.Placeholder = placeholder
	m.input.Reset()
	m.input.Focus()
}

func (m *Model) leaveInsert() {
	m.mode = modeNormal
	m.insert = insertNone
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) commitInsert() {
	text := strings.TrimSpace(m.input.Value())
	target := m.insert
	m.leaveInsert()
	if text == "" && target != insertNotes {
		return
	}

	var err error
	switch target {
	case insertTask:
		_, err = m.svc.AddTask(text, "Work")
	case insertTaskEdit:
		if t := m.cursorTask(); t != nil {
			err = m.svc.EditTask(t.ID, text)
		}
	case insertEvent:
		_, err = m.svc.AddEvent(m.selectedDate(), text)
	case insertJournal:
		_, err = m.svc.AddJournalEntry(m.selectedDate(), text)
	case insertNotes:
		err = m.svc.SetNotes(m.selectedDate(), text)
	}
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.refresh()
}

func (m *Model) cursorTask() *task.Task {
	if m.taskCursor < 0 || m.taskCursor >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.taskCursor]
}

func (m *Model) moveSelection(days int) {
	m.selected = m.selected.AddDate(0, 0, days)
	if m.selected.Year() != m.year || m.selected.Month() != m.month {
		m.year = m.selected.Year()
		m.month = m.selected.Month()
		m.refresh()
	}
}

// clampSelection keeps the selected day inside the displayed month after a
// month jump.
func (m *Model) clampSelection() {
	day := m.selected.Day()
	if max := dateutil.DaysInMonth(m.year, m.month); day > max {
		day = max
	}
	m.selected = time.Date(m.year, m.month, day, 0, 0, 0, 0, time.Local)
}

func (m *Model) selectedDate() string {
	return dateutil.Format(m.selected)
}

// View renders the active tab between the tab bar and the footer.
func (m *Model) View() string {
	var body string
	switch m.tab {
	case tabDashboard:
		body = m.viewDashboard()
	case tabCalendar:
		body = m.viewCalendar()
	case tabTasks:
		body = m.viewTasks()
	case tabSummary:
		body = m.viewSummary()
	}

	sections := []string{m.viewTabs(), body, m.viewFooter()}
	return strings.Join(sections, "\n\n")
}

func (m *Model) viewTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		style := m.theme.Tabs.Inactive
		if tab(i) == m.tab {
			style = m.theme.Tabs.Active
		}
		parts = append(parts, style.Render(fmt.Sprintf("%d %s", i+1, name)))
	}
	return strings.Join(parts, "   ")
}

func (m *Model) viewDashboard() string {
	th := m.theme.Panel
	now := time.Now()

	var b strings.Builder
	b.WriteString(th.Title.Render(fmt.Sprintf("Week %d  %s", dateutil.WeekNumber(now), dateutil.WeekRange(now))))
	b.WriteString("\n\n")

	for _, a := range m.svc.AlertsFor(now) {
		b.WriteString(th.Warn.Render("! "+a) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(th.Title.Render(fmt.Sprintf("本週目標 %d/%d", m.tasks.CompletedCount(), len(m.tasks))) + "\n")
	for _, t := range m.tasks {
		line := "[ ] " + t.Text
		style := th.Body
		if t.Completed {
			line = "[x] " + t.Text
			style = th.Done
		}
		b.WriteString(style.Render(line) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(th.Title.Render("年度進度") + "\n")
	for _, metric := range m.metrics {
		b.WriteString(fmt.Sprintf("%s %s %.0f%%\n", padLabel(metric.Label), progressBar(metric), metric.Percent()))
	}
	b.WriteString("\n")

	b.WriteString(th.Title.Render("壓力預測") + "\n")
	for _, pt := range plan.Forecast {
		style := th.Faint
		if pt.Stress >= plan.StressWarnLevel {
			style = th.Warn
		}
		b.WriteString(style.Render(fmt.Sprintf("%-4s %s", pt.Week, strings.Repeat("▇", pt.Stress))) + "\n")
	}

	return b.String()
}

func padLabel(label string) string {
	// Terminal columns, counting CJK runes double.
	width := 0
	for _, r := range label {
		if r > 0x2e80 {
			width += 2
		} else {
			width++
		}
	}
	pad := 16 - width
	if pad < 1 {
		pad = 1
	}
	return label + strings.Repeat(" ", pad)
}

func progressBar(m progress.Metric) string {
	const width = 20
	filled := int(m.Percent() / 100 * width)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (m *Model) viewCalendar() string {
	opts := calendar.Options{
		HeaderStyle:   m.theme.Calendar.Header,
		TaiwanStyle:   m.theme.Calendar.Taiwan,
		JapanStyle:    m.theme.Calendar.Japan,
		HolidayStyle:  m.theme.Calendar.Holiday,
		TodayStyle:    m.theme.Calendar.Today,
		SelectedStyle: m.theme.Calendar.Selected,
		MarkerStyle:   m.theme.Calendar.Marker,
		ShowHeader:    true,
	}

	today := dateutil.Format(time.Now())
	selected := m.selectedDate()

	days := make([]calendar.Day, len(m.cells))
	var selectedDay calendar.Day
	for i, c := range m.cells {
		if c.Day == 0 {
			continue
		}
		days[i] = calendar.Day{
			Day:        c.Day,
			Date:       c.Date,
			InJapan:    c.Location == location.Japan,
			Holiday:    c.Holiday,
			HasLog:     c.HasLog,
			EventCount: len(c.Events),
			IsToday:    c.Date == today,
			IsSelected: c.Date == selected,
		}
		if c.Date == selected {
			selectedDay = days[i]
		}
	}

	title := m.theme.Panel.Title.Render(fmt.Sprintf("%d年%d月", m.year, int(m.month)))
	grid := calendar.Render(days, opts)

	var detail string
	if selectedDay.Day != 0 {
		texts := make([]string, 0, len(m.events.On(selected)))
		for _, ev := range m.events.On(selected) {
			texts = append(texts, ev.Text)
		}
		detail = calendar.Detail(selectedDay, texts, opts)
	}

	d := m.logs.Get(selected)
	lines := []string{
		title, grid, detail,
		m.theme.Panel.Faint.Render(fmt.Sprintf("能量 %d/%d  壓力 %d/%d", d.Energy, journal.EnergyMax, d.Stress, journal.StressMax)),
	}
	if m.mode == modeInsert {
		lines = append(lines, m.input.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewTasks() string {
	th := m.theme.Panel

	var b strings.Builder
	b.WriteString(th.Title.Render(fmt.Sprintf("本週目標 %d/%d", m.tasks.CompletedCount(), len(m.tasks))))
	b.WriteString("\n\n")

	for i, t := range m.tasks {
		cursor := "  "
		if i == m.taskCursor {
			cursor = "> "
		}
		box := "[ ]"
		style := th.Body
		if t.Completed {
			box = "[x]"
			style = th.Done
		}
		b.WriteString(cursor + style.Render(fmt.Sprintf("%s %s", box, t.Text)) +
			th.Faint.Render("  #"+t.Tag) + "\n")
	}

	if m.mode == modeInsert {
		b.WriteString("\n" + m.input.View())
	}
	return b.String()
}

func (m *Model) viewSummary() string {
	th := m.theme.Panel
	now := time.Now()

	title := th.Title.Render(fmt.Sprintf("Week %d 總結", dateutil.WeekNumber(now)))

	switch m.summary.State() {
	case summarypane.StateLoading:
		return title + "\n\n" + th.Faint.Render("生成中...")
	case summarypane.StateDone:
		return title + "\n\n" + m.summary.Text()
	default:
		return title + "\n\n" + th.Faint.Render("按 g 生成本週總結")
	}
}

func (m *Model) viewFooter() string {
	help := "q 離開  tab 切換"
	switch m.tab {
	case tabCalendar:
		help += "  ←↓↑→ 移動  [] 換月  t 位置  e 事件  o 日誌  n 筆記"
	case tabTasks:
		help += "  jk 移動  space 完成  a 新增  e 編輯  d 刪除"
	case tabSummary:
		help += "  g 生成"
	}
	if m.mode == modeInsert {
		help = "enter 確認  esc 取消"
	}

	footer := m.theme.Footer.Help.Render(help)
	if m.status != "" {
		footer += "  " + m.theme.Footer.Status.Render(m.status)
	}
	return footer
}

// Run launches the interactive TUI program.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
