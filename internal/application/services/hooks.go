package services

import (
	"context"
	"errors"
	"time"

	"github.com/zatekoja/hivclinic/internal/domain/providers"
	"github.com/zatekoja/hivclinic/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
)

// ErrLoadSuperseded is returned by a load whose result was discarded
// because a newer load started after it.
var ErrLoadSuperseded = errors.New("load superseded by a newer request")

// ErrServiceClosed is returned by loads issued after Close
var ErrServiceClosed = errors.New("service closed")

// loadGuard makes each load supersede the previous one: starting a load
// cancels the one in flight, and a generation counter lets the late
// finisher recognise that its result is stale. Callers hold their own
// mutex around every method.
type loadGuard struct {
	generation uint64
	cancel     context.CancelFunc
}

func (g *loadGuard) begin(ctx context.Context) (context.Context, uint64) {
	if g.cancel != nil {
		g.cancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	g.generation++
	g.cancel = cancel
	return loadCtx, g.generation
}

// finish reports whether gen is still the latest load and releases its
// context if so
func (g *loadGuard) finish(gen uint64) bool {
	if gen != g.generation {
		return false
	}
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	return true
}

func (g *loadGuard) inFlight() bool {
	return g.cancel != nil
}

func (g *loadGuard) stop() {
	g.generation++
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, providers.Notification) {}

func notifierOrNop(n providers.Notifier) providers.Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}

func notifySuccess(ctx context.Context, n providers.Notifier, title, message string) {
	n.Notify(ctx, providers.Notification{
		Level:   providers.NotificationSuccess,
		Title:   title,
		Message: message,
		Time:    time.Now(),
	})
}

// notifyError shows prefix followed by the error's display message
func notifyError(ctx context.Context, n providers.Notifier, title, prefix string, err error) {
	observability.LoggerFromContext(ctx).Warn().Err(err).Str("title", title).Msg(prefix)
	n.Notify(ctx, providers.Notification{
		Level:   providers.NotificationError,
		Title:   title,
		Message: prefix + ": " + apperrors.DisplayMessage(err),
		Time:    time.Now(),
	})
}
