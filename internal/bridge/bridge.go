package bridge

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// EventType names a platform bridge event.
type EventType string

// UpdateConfig carries the color scheme chosen by the host platform.
const UpdateConfig EventType = "UpdateConfig"

type Event struct {
	Type   EventType
	Scheme string
}

// Bridge is the host platform the quiz runs inside.
type Bridge interface {
	Init(ctx context.Context) error
	Events() <-chan Event
	NotificationsEnabled() bool
}

// Local is a Bridge for running outside a host platform. It reports the
// configured scheme once after Init.
type Local struct {
	scheme        string
	notifications bool
	logger        *zap.Logger

	once   sync.Once
	events chan Event
}

func NewLocal(scheme string, notifications bool, logger *zap.Logger) *Local {
	return &Local{
		scheme:        scheme,
		notifications: notifications,
		logger:        logger.Named("bridge"),
		events:        make(chan Event, 1),
	}
}

func (l *Local) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.once.Do(func() {
		l.logger.Debug("bridge initialized", zap.String("scheme", l.scheme))
		l.events <- Event{Type: UpdateConfig, Scheme: l.scheme}
	})
	return nil
}

func (l *Local) Events() <-chan Event {
	return l.events
}

func (l *Local) NotificationsEnabled() bool {
	return l.notifications
}
