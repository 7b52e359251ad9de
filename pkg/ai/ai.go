// Package ai generates the weekly coaching summary by sending a fixed
// Traditional Chinese prompt to a hosted language model. Failures never
// propagate as errors to the caller; the documented fallback strings are
// returned instead so the summary view always renders.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ycwu/lifedash/pkg/app"
	"github.com/ycwu/lifedash/pkg/logger"
	"github.com/ycwu/lifedash/pkg/task"
)

// Fallback texts shown in place of a summary.
const (
	// FallbackMessage is returned when the request fails outright.
	FallbackMessage = "無法連接 AI"
	// EmptyMessage is returned when the response carries no text.
	EmptyMessage = "無法生成"
)

// Options configures the summary client.
type Options struct {
	Endpoint  string
	Model     string
	APIKey    string
	MaxTokens int
	Timeout   time.Duration
}

// LoadOptions reads client settings from the shared config, applying the
// documented defaults. The API key comes from LIFEDASH_AI_API_KEY.
func LoadOptions() Options {
	viper.SetDefault("ai.endpoint", "https://api.anthropic.com/v1/messages")
	viper.SetDefault("ai.model", "claude-sonnet-4-20250514")
	viper.SetDefault("ai.max_tokens", 1000)
	viper.SetDefault("ai.timeout", "30s")
	_ = viper.BindEnv("ai.api_key", "LIFEDASH_AI_API_KEY")

	return Options{
		Endpoint:  viper.GetString("ai.endpoint"),
		Model:     viper.GetString("ai.model"),
		APIKey:    viper.GetString("ai.api_key"),
		MaxTokens: viper.GetInt("ai.max_tokens"),
		Timeout:   viper.GetDuration("ai.timeout"),
	}
}

// Client calls the model endpoint.
type Client struct {
	opts   Options
	client *http.Client
}

// New creates a Client from opts.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		opts:   opts,
		client: &http.Client{Timeout: timeout},
	}
}

// BuildPrompt assembles the fixed coaching prompt from the current week
// number, the goal list split by completion, and the recorded daily levels.
func BuildPrompt(week int, tasks task.List, logs []app.WeekLog) string {
	var done, open []string
	for _, t := range tasks {
		if t.Completed {
			done = append(done, t.Text)
		} else {
			open = append(open, t.Text)
		}
	}

	daily := make([]string, 0, len(logs))
	for _, l := range logs {
		daily = append(daily, fmt.Sprintf("%s:E%d/5,S%d/10", l.Date, l.Energy, l.Stress))
	}

	return fmt.Sprintf(
		"你是個人效率教練。用繁體中文提供：1.本週總結(3-4句) 2.亮點 3.問題 4.下週建議(3-5項)\nWeek %d：已完成：%s｜未完成：%s｜每日：%s",
		week, joinOr(done, "、"), joinOr(open, "、"), joinOr(daily, "; "))
}

func joinOr(parts []string, sep string) string {
	if len(parts) == 0 {
		return "無"
	}
	return strings.Join(parts, sep)
}

type request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type response struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Summarize posts the prompt and returns the joined response text. All
// failures are logged and collapse into FallbackMessage; an empty response
// becomes EmptyMessage.
func (c *Client) Summarize(ctx context.Context, prompt string) string {
	body, err := json.Marshal(request{
		Model:     c.opts.Model,
		MaxTokens: c.opts.MaxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		logger.Log().WithError(err).Warn("ai: marshal request")
		return FallbackMessage
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint, bytes.NewReader(body))
	if err != nil {
		logger.Log().WithError(err).Warn("ai: build request")
		return FallbackMessage
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("anthropic-version", "2023-06-01")
	if c.opts.APIKey != "" {
		req.Header.Set("x-api-key", c.opts.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Log().WithError(err).Warn("ai: request failed")
		return FallbackMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log().WithField("status", resp.StatusCode).Warn("ai: bad status")
		return FallbackMessage
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Log().WithError(err).Warn("ai: decode response")
		return FallbackMessage
	}

	parts := make([]string, 0, len(parsed.Content))
	for _, c := range parsed.Content {
		if c.Text != "" {
			parts = append(parts, c.Text)
		}
	}
	if len(parts) == 0 {
		return EmptyMessage
	}
	return strings.Join(parts, "\n")
}
