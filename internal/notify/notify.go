// Package notify defines the notification events the tracker emits toward
// the presentation layer.
package notify

import (
	"fmt"
	"io"
)

// Level is the kind of a notification.
type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Warning Level = "warning"
	Info    Level = "info"
)

// Notification is a transient user-facing message. Display duration and
// dismissal are the host's concern.
type Notification struct {
	Level   Level
	Message string
}

// Notifier receives notifications for display.
type Notifier interface {
	Notify(level Level, message string)
}

// Console writes level-tagged notifications to a writer.
type Console struct {
	W io.Writer
}

// Notify implements Notifier.
func (c Console) Notify(level Level, message string) {
	fmt.Fprintf(c.W, "[%s] %s\n", level, message)
}

// Discard drops all notifications.
type Discard struct{}

// Notify implements Notifier.
func (Discard) Notify(Level, string) {}

// Recorder collects notifications for inspection in tests.
type Recorder struct {
	Notifications []Notification
}

// Notify implements Notifier.
func (r *Recorder) Notify(level Level, message string) {
	r.Notifications = append(r.Notifications, Notification{Level: level, Message: message})
}

// Last returns the most recent notification, or a zero value if none.
func (r *Recorder) Last() Notification {
	if len(r.Notifications) == 0 {
		return Notification{}
	}
	return r.Notifications[len(r.Notifications)-1]
}
