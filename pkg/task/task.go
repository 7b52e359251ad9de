// Package task models the weekly goal list.
package task

import (
	"strings"
	"time"
)

// Tags is the fixed set of goal tags.
var Tags = []string{"Tech", "Trading", "Work", "Health", "Personal", "Learning"}

// ValidTag reports whether tag is one of the fixed set.
func ValidTag(tag string) bool {
	for _, t := range Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Task is a single weekly goal.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Tag       string `json:"tag"`
	Completed bool   `json:"completed"`
}

// List holds tasks in insertion order, which is also display order.
type List []Task

// DefaultGoals returns the seeded weekly goal list.
func DefaultGoals() List {
	return List{
		{ID: 1, Text: "Claude code開發環境搭建", Tag: "Tech"},
		{ID: 2, Text: "TradingView API串接測試", Tag: "Trading"},
		{ID: 3, Text: "Mikai文件化框架建立", Tag: "Work"},
		{ID: 4, Text: "啟動獵頭流程", Tag: "Work"},
		{ID: 5, Text: "運動習慣啟動 (06:00鬧鐘)", Tag: "Health"},
	}
}

// CompletedCount returns the number of completed tasks.
func (l List) CompletedCount() int {
	n := 0
	for _, t := range l {
		if t.Completed {
			n++
		}
	}
	return n
}

// Add appends a new incomplete task with a fresh id. Empty text is a no-op
// and returns nil. An unknown tag falls back to Work.
func (l *List) Add(text, tag string) *Task {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if !ValidTag(tag) {
		tag = "Work"
	}
	t := Task{ID: l.nextID(), Text: text, Tag: tag}
	*l = append(*l, t)
	return &(*l)[len(*l)-1]
}

// Toggle flips the completed flag for id. Returns the task, or nil when the
// id is unknown.
func (l List) Toggle(id int64) *Task {
	for i := range l {
		if l[i].ID == id {
			l[i].Completed = !l[i].Completed
			return &l[i]
		}
	}
	return nil
}

// EditText replaces a task's text in place. Empty text is a no-op.
func (l List) EditText(id int64, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	for i := range l {
		if l[i].ID == id {
			l[i].Text = text
			return true
		}
	}
	return false
}

// Remove deletes the task with id, preserving the order of the rest.
func (l *List) Remove(id int64) bool {
	for i := range *l {
		if (*l)[i].ID == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

// nextID derives a time-based id, bumping past any existing id so rapid adds
// within the same millisecond stay unique.
func (l List) nextID() int64 {
	id := time.Now().UnixMilli()
	for _, t := range l {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}
