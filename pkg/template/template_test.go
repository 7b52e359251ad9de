package template

import (
	"strings"
	"testing"
)

func TestAllCatalog(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("templates = %d, want 5", len(all))
	}
	want := []string{"A", "B", "C", "D", "F"}
	for i, key := range want {
		if all[i].Key != key {
			t.Errorf("template %d key = %q, want %q", i, all[i].Key, key)
		}
	}
}

func TestGet(t *testing.T) {
	tmpl, ok := Get("F")
	if !ok {
		t.Fatal("F should exist")
	}
	if tmpl.Intensity != "Burnout Protocol" {
		t.Errorf("intensity = %q", tmpl.Intensity)
	}

	if _, ok := Get("E"); ok {
		t.Error("E is not a template")
	}
}

func TestMarkdown(t *testing.T) {
	tmpl, _ := Get("A")
	md := Markdown(tmpl, "2026-01-15")

	for _, want := range []string{
		"### 2026-01-15 (模式 A)",
		"**今日模式**: A: 在台標準週 - 中強度",
		"**能量狀態**: ⭐⭐⭐⭐ (4/5)",
		"#### 📅 執行時間表",
		"06:00-07:00 | 🏃 運動（跑步/重訓/游泳）",
		"#### ✅ 完成事項",
		"#### 🎯 明日重點",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}
