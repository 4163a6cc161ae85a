// internal/notify/notify.go
package notify

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Kind classifies a notification
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
	Warning Kind = "warning"
)

// Notification is a short-lived, dismissible message about a
// synchronization outcome
type Notification struct {
	Message string    `json:"message"`
	Kind    Kind      `json:"kind"`
	At      time.Time `json:"at"`
}

// Callback receives every emitted notification, decoupling "an operation
// finished" from "how the user is told"
type Callback func(Notification)

// Emitter surfaces transient notifications. At most one is visible at a
// time per emitter; the newest replaces the oldest.
type Emitter struct {
	mu       sync.Mutex
	current  *Notification
	onNotify Callback
	log      *logrus.Logger
}

// NewEmitter creates a notification emitter
func NewEmitter(log *logrus.Logger) *Emitter {
	return &Emitter{log: log}
}

// OnNotify registers the delivery callback. A nil callback disables push
// delivery; Current still reflects the latest notification.
func (e *Emitter) OnNotify(fn Callback) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onNotify = fn
}

// Emit publishes a notification, replacing any currently visible one
func (e *Emitter) Emit(message string, kind Kind) {
	n := Notification{
		Message: message,
		Kind:    kind,
		At:      time.Now().UTC(),
	}

	e.mu.Lock()
	e.current = &n
	fn := e.onNotify
	e.mu.Unlock()

	if e.log != nil {
		e.log.WithFields(logrus.Fields{
			"kind":    kind,
			"message": message,
		}).Debug("notification emitted")
	}

	if fn != nil {
		fn(n)
	}
}

// Current returns the visible notification, or nil when dismissed
func (e *Emitter) Current() *Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return nil
	}
	n := *e.current
	return &n
}

// Dismiss hides the visible notification. Idempotent.
func (e *Emitter) Dismiss() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.current = nil
}
