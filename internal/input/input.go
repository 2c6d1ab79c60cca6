package input

import (
	"GopherGrab/internal/logger"

	"go.uber.org/zap"
)

type Event int

const (
	Pressed Event = iota
	Released
)

func (e Event) String() string {
	switch e {
	case Pressed:
		return "Pressed"
	case Released:
		return "Released"
	default:
		return "Unknown"
	}
}

// ActionMap routes named action events to bound handlers. Handlers for the
// same action and event run in binding order.
type ActionMap struct {
	bindings map[string]map[Event][]func()
}

func NewActionMap() *ActionMap {
	return &ActionMap{bindings: make(map[string]map[Event][]func())}
}

func (m *ActionMap) BindAction(action string, event Event, handler func()) {
	if handler == nil {
		return
	}
	events, ok := m.bindings[action]
	if !ok {
		events = make(map[Event][]func())
		m.bindings[action] = events
	}
	events[event] = append(events[event], handler)
}

func (m *ActionMap) Unbind(action string) {
	delete(m.bindings, action)
}

func (m *ActionMap) IsBound(action string, event Event) bool {
	return len(m.bindings[action][event]) > 0
}

// Dispatch runs the handlers bound to action and event and reports whether any ran.
func (m *ActionMap) Dispatch(action string, event Event) bool {
	handlers := m.bindings[action][event]
	if len(handlers) == 0 {
		logger.Log.Debug("No binding for action",
			zap.String("action", action),
			zap.Stringer("event", event))
		return false
	}
	for _, h := range handlers {
		h()
	}
	return true
}
