package task

import "testing"

func TestDefaultGoals(t *testing.T) {
	goals := DefaultGoals()
	if len(goals) != 5 {
		t.Fatalf("default goals = %d, want 5", len(goals))
	}
	for _, g := range goals {
		if g.Completed {
			t.Errorf("goal %d should start incomplete", g.ID)
		}
		if !ValidTag(g.Tag) {
			t.Errorf("goal %d has invalid tag %q", g.ID, g.Tag)
		}
	}
	if goals.CompletedCount() != 0 {
		t.Error("fresh list should have no completed goals")
	}
}

func TestAdd(t *testing.T) {
	list := List{}

	added := list.Add("讀完一本書", "Learning")
	if added == nil {
		t.Fatal("add returned nil")
	}
	if added.Tag != "Learning" || added.Completed {
		t.Errorf("unexpected task: %+v", added)
	}
	if len(list) != 1 {
		t.Fatalf("list length = %d", len(list))
	}
}

func TestAddEmptyTextIsNoOp(t *testing.T) {
	list := DefaultGoals()
	if got := list.Add("   ", "Tech"); got != nil {
		t.Fatal("whitespace text should be rejected")
	}
	if len(list) != 5 {
		t.Fatalf("list length changed: %d", len(list))
	}
}

func TestAddUnknownTagFallsBackToWork(t *testing.T) {
	list := List{}
	added := list.Add("something", "Bogus")
	if added.Tag != "Work" {
		t.Errorf("tag = %q, want Work", added.Tag)
	}
}

func TestToggle(t *testing.T) {
	list := DefaultGoals()

	got := list.Toggle(3)
	if got == nil || !got.Completed {
		t.Fatal("toggle should complete the task")
	}
	if list.CompletedCount() != 1 {
		t.Errorf("completed count = %d", list.CompletedCount())
	}

	got = list.Toggle(3)
	if got == nil || got.Completed {
		t.Fatal("second toggle should reopen the task")
	}

	if list.Toggle(999) != nil {
		t.Error("unknown id should return nil")
	}
}

func TestEditText(t *testing.T) {
	list := DefaultGoals()

	if !list.EditText(1, "新文字") {
		t.Fatal("edit failed")
	}
	if list[0].Text != "新文字" {
		t.Errorf("text = %q", list[0].Text)
	}

	if list.EditText(1, "  ") {
		t.Error("empty text should be a no-op")
	}
	if list[0].Text != "新文字" {
		t.Error("no-op edit changed text")
	}
}

func TestRemove(t *testing.T) {
	list := DefaultGoals()

	if !list.Remove(2) {
		t.Fatal("remove failed")
	}
	if len(list) != 4 {
		t.Fatalf("list length = %d", len(list))
	}
	for _, g := range list {
		if g.ID == 2 {
			t.Error("removed task still present")
		}
	}
	if list.Remove(2) {
		t.Error("second remove should fail")
	}
}

func TestRapidAddsGetUniqueIDs(t *testing.T) {
	list := List{}
	a := list.Add("first", "Tech")
	b := list.Add("second", "Tech")
	c := list.Add("third", "Tech")
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("ids collide: %d %d %d", a.ID, b.ID, c.ID)
	}
	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Errorf("ids not increasing: %d %d %d", a.ID, b.ID, c.ID)
	}
}
