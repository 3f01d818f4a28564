package service

import (
	"sync"
)

// EventType defines the type of event
type EventType string

const (
	EventDatasetLoaded   EventType = "dataset_loaded"
	EventLoadFailed      EventType = "load_failed"
	EventTick            EventType = "tick"
	EventSettled         EventType = "settled"
	EventViewportChanged EventType = "viewport_changed"
	EventThemeChanged    EventType = "theme_changed"
	EventHover           EventType = "hover"
	EventNavigate        EventType = "navigate"
	EventDestroyed       EventType = "destroyed"
)

// Event represents an event that occurred in the system
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// EventBus allows publishing and subscribing to events
type EventBus struct {
	mu          sync.RWMutex
	subscribers []chan<- Event
	dropped     func()
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]chan<- Event, 0),
	}
}

// OnDrop registers a callback for events a slow subscriber missed
func (eb *EventBus) OnDrop(fn func()) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.dropped = fn
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers = append(eb.subscribers, ch)
}

// Unsubscribe removes a subscriber
func (eb *EventBus) Unsubscribe(ch chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	for i, sub := range eb.subscribers {
		if sub == ch {
			eb.subscribers = append(eb.subscribers[:i], eb.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers without blocking
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is slow, skip
			if eb.dropped != nil {
				eb.dropped()
			}
		}
	}
}
