package notify

import (
	"context"
	"time"

	"github.com/zatekoja/hivclinic/internal/domain/providers"
	"github.com/zatekoja/hivclinic/internal/infrastructure/observability"
)

// LogNotifier writes notifications to the structured log
type LogNotifier struct {
	metrics *observability.Metrics
}

// NewLogNotifier creates a log-backed notifier. metrics may be nil.
func NewLogNotifier(metrics *observability.Metrics) providers.Notifier {
	return &LogNotifier{metrics: metrics}
}

// Notify logs n at a level matching its severity
func (n *LogNotifier) Notify(ctx context.Context, note providers.Notification) {
	if note.Time.IsZero() {
		note.Time = time.Now()
	}
	logger := observability.LoggerFromContext(ctx)
	event := logger.Info()
	if note.Level == providers.NotificationError {
		event = logger.Error()
	}
	event.
		Str("level_ui", string(note.Level)).
		Str("title", note.Title).
		Time("at", note.Time).
		Msg(note.Message)

	observability.RecordNotification(ctx, n.metrics, string(note.Level))
}
