package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sweeparr/internal/config"
)

const userAgent = "Sweeparr/0.1.0"

// Service defines the notification surface exposed to the runner and daemon.
type Service interface {
	RunCompleted(ctx context.Context, processed int, dryRun bool, duration time.Duration) error
	RunFailed(ctx context.Context, err error) error
	Test(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := &http.Client{Timeout: timeout}
	return &ntfyService{
		endpoint: topic,
		client:   client,
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) RunCompleted(ctx context.Context, processed int, dryRun bool, duration time.Duration) error {
	duration = duration.Round(time.Second)
	if duration < 0 {
		duration = 0
	}
	durationText := duration.String()
	if duration == 0 {
		durationText = "0s"
	}

	var title string
	var message string
	if dryRun {
		title = "Sweeparr - Dry Run Complete"
		message = fmt.Sprintf("Dry run complete: would remove %d episodes (%s)", processed, durationText)
	} else {
		title = "Sweeparr - Cleanup Complete"
		message = fmt.Sprintf("✅ Cleanup complete: %d episodes removed (%s)", processed, durationText)
	}

	data := payload{
		title:   title,
		message: message,
		tags:    []string{"sweeparr", "cleanup", "completed"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) RunFailed(ctx context.Context, err error) error {
	message := "❌ Cleanup run failed: "
	if err != nil {
		message += strings.TrimSpace(err.Error())
	} else {
		message += "unknown"
	}

	data := payload{
		title:    "Sweeparr - Error",
		message:  message,
		tags:     []string{"sweeparr", "error", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) Test(ctx context.Context) error {
	data := payload{
		title:    "Sweeparr - Test",
		message:  "🧪 Notification system test",
		tags:     []string{"sweeparr", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) RunCompleted(context.Context, int, bool, time.Duration) error { return nil }
func (noopService) RunFailed(context.Context, error) error                      { return nil }
func (noopService) Test(context.Context) error                                  { return nil }
