// ABOUTME: Signal type for one-per-action user feedback
// ABOUTME: Selects the most specific available message for failures

package notify

import "errors"

// Level indicates whether a signal reports success or failure.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

// Signal is a single transient notification surfaced after one user action.
type Signal struct {
	Level   Level
	Message string
}

// Success builds a success signal.
func Success(message string) Signal {
	return Signal{Level: LevelSuccess, Message: message}
}

// Error builds an error signal.
func Error(message string) Signal {
	return Signal{Level: LevelError, Message: message}
}

// IsError reports whether the signal carries a failure.
func (s Signal) IsError() bool {
	return s.Level == LevelError
}

// Messenger is implemented by errors that carry a preferred user-facing
// message, such as a server-supplied rejection reason.
type Messenger interface {
	UserMessage() string
}

// FromError converts a failed action's error into exactly one error signal.
// Message precedence: remote-supplied reason, then a connectivity-specific
// message, then the caller's fallback.
func FromError(err error, fallback string) Signal {
	var m Messenger
	if errors.As(err, &m) {
		if msg := m.UserMessage(); msg != "" {
			return Error(msg)
		}
	}
	return Error(fallback)
}
