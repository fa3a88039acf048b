// Package observer implements the search_listener / subject plumbing:
// attach/detach/notify, safe against detach-during-notify, with re-entrant
// attach-during-notify queued to the next cycle.
package observer

import "github.com/rs/zerolog"

// Listener is notified synchronously whenever the Subject it is attached to
// calls Notify.
type Listener[S any] interface {
	Update(subject S)
}

// Subject holds a collection of non-owning listener back-references. Embed
// it in a search driver to get Attach/Detach/Notify for free.
type Subject[S any] struct {
	listeners []Listener[S]
	pending   []Listener[S]
	notifying bool
}

// Attach adds o to the listener list. If called from inside Notify (i.e.
// from a listener's own Update), the attach is queued and takes effect
// starting with the next Notify call.
func (s *Subject[S]) Attach(o Listener[S]) {
	if s.notifying {
		s.pending = append(s.pending, o)
		return
	}
	s.listeners = append(s.listeners, o)
}

// Detach removes o from the listener list. Safe to call during Notify,
// including detaching the listener currently being notified or one later in
// attachment order.
func (s *Subject[S]) Detach(o Listener[S]) {
	for i, l := range s.listeners {
		if l == o {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Notify calls Update(self) on each listener attached at the start of this
// call, in attachment order, exactly once each. It iterates a snapshot of
// s.listeners rather than s.listeners itself, so a Detach made from inside
// an Update — of the listener currently being notified or of one later in
// attachment order — only shrinks s.listeners and never skips a still-
// attached snapshot entry: membership is rechecked against the live list
// before every call, so a listener detached earlier in this same cycle is
// skipped rather than notified again.
// Listeners queued by a re-entrant Attach during this call are merged in
// before the call returns, and seen on the next Notify.
func (s *Subject[S]) Notify(self S) {
	s.notifying = true
	snapshot := append([]Listener[S](nil), s.listeners...)
	for _, l := range snapshot {
		if !s.isAttached(l) {
			continue
		}
		l.Update(self)
	}
	s.notifying = false

	if len(s.pending) > 0 {
		s.listeners = append(s.listeners, s.pending...)
		s.pending = s.pending[:0]
	}
}

// isAttached reports whether o is currently in s.listeners.
func (s *Subject[S]) isAttached(o Listener[S]) bool {
	for _, l := range s.listeners {
		if l == o {
			return true
		}
	}
	return false
}

// Listeners returns the currently attached listeners, in attachment order.
// The returned slice aliases Subject's internal state and must not be
// mutated by the caller.
func (s *Subject[S]) Listeners() []Listener[S] {
	return s.listeners
}

// LogEvent is one structured log line produced by a LoggingListener.
type LogEvent struct {
	Message string
	Fields  map[string]any
}

// LoggingListener adapts any Subject into a zerolog.Logger call per Update.
// Describe turns a notified subject into a message and structured fields;
// it is supplied by the subject's own package so LoggingListener stays
// generic over the subject type without importing it (abstractsearch embeds
// Subject, so Subject cannot import abstractsearch back).
type LoggingListener[S any] struct {
	Logger   zerolog.Logger
	Describe func(subject S) LogEvent
}

// NewLoggingListener builds a listener that logs through logger using
// describe to extract the message and fields from each notified subject.
func NewLoggingListener[S any](logger zerolog.Logger, describe func(S) LogEvent) *LoggingListener[S] {
	return &LoggingListener[S]{Logger: logger, Describe: describe}
}

// Update logs one structured event derived from subject.
func (l *LoggingListener[S]) Update(subject S) {
	ev := l.Describe(subject)
	e := l.Logger.Info()
	for k, v := range ev.Fields {
		e = e.Interface(k, v)
	}
	e.Msg(ev.Message)
}

var _ Listener[int] = (*LoggingListener[int])(nil)
