package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ycwu/lifedash/pkg/app"
	"github.com/ycwu/lifedash/pkg/task"
)

func TestBuildPrompt(t *testing.T) {
	tasks := task.List{
		{ID: 1, Text: "運動", Completed: true},
		{ID: 2, Text: "讀書", Completed: true},
		{ID: 3, Text: "寫程式"},
	}
	logs := []app.WeekLog{
		{Date: "2026-01-12", Energy: 4, Stress: 6},
		{Date: "2026-01-13", Energy: 3, Stress: 8},
	}

	got := BuildPrompt(3, tasks, logs)
	want := "你是個人效率教練。用繁體中文提供：1.本週總結(3-4句) 2.亮點 3.問題 4.下週建議(3-5項)\n" +
		"Week 3：已完成：運動、讀書｜未完成：寫程式｜每日：2026-01-12:E4/5,S6/10; 2026-01-13:E3/5,S8/10"
	if got != want {
		t.Errorf("prompt mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestBuildPromptEmptySections(t *testing.T) {
	got := BuildPrompt(1, nil, nil)
	want := "你是個人效率教練。用繁體中文提供：1.本週總結(3-4句) 2.亮點 3.問題 4.下週建議(3-5項)\n" +
		"Week 1：已完成：無｜未完成：無｜每日：無"
	if got != want {
		t.Errorf("prompt mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestSummarizeJoinsContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("content type = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"text":"第一段"},{"text":"第二段"}]}`))
	}))
	defer srv.Close()

	c := New(Options{Endpoint: srv.URL, Model: "m", MaxTokens: 10, Timeout: time.Second})
	got := c.Summarize(context.Background(), "prompt")
	if got != "第一段\n第二段" {
		t.Errorf("summary = %q", got)
	}
}

func TestSummarizeEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	c := New(Options{Endpoint: srv.URL, Timeout: time.Second})
	if got := c.Summarize(context.Background(), "prompt"); got != EmptyMessage {
		t.Errorf("summary = %q, want %q", got, EmptyMessage)
	}
}

func TestSummarizeBadStatusFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(Options{Endpoint: srv.URL, Timeout: time.Second})
	if got := c.Summarize(context.Background(), "prompt"); got != FallbackMessage {
		t.Errorf("summary = %q, want %q", got, FallbackMessage)
	}
}

func TestSummarizeConnectionErrorFallsBack(t *testing.T) {
	c := New(Options{Endpoint: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
	if got := c.Summarize(context.Background(), "prompt"); got != FallbackMessage {
		t.Errorf("summary = %q, want %q", got, FallbackMessage)
	}
}
