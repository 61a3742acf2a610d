package store

import "fmt"

// EventKind tells whether a notification precedes or follows a mutation.
type EventKind int

const (
	// PropertyChanging is raised before a property is created, replaced or removed.
	PropertyChanging EventKind = iota
	// PropertyChanged is raised after the mutation has been committed.
	PropertyChanged
)

func (k EventKind) String() string {
	switch k {
	case PropertyChanging:
		return "changing"
	case PropertyChanged:
		return "changed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes a property notification.
type Event struct {
	Source *PropertyBag
	Name   string
	Kind   EventKind
}

// Handler receives property notifications.
type Handler func(e Event)

// Subscription is the handle returned when registering a Handler.
type Subscription struct {
	list *handlerList
	id   uint64
}

// Unsubscribe removes the handler. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.list == nil {
		return
	}
	s.list.remove(s.id)
	s.list = nil
}

type registeredHandler struct {
	id uint64
	fn Handler
}

// handlerList keeps handlers in registration order. remove always builds a
// fresh slice, so a slice read by raise is never modified underneath it.
type handlerList struct {
	nextID   uint64
	handlers []registeredHandler
}

func (l *handlerList) add(fn Handler) *Subscription {
	l.nextID++
	l.handlers = append(l.handlers, registeredHandler{id: l.nextID, fn: fn})
	return &Subscription{list: l, id: l.nextID}
}

func (l *handlerList) remove(id uint64) {
	kept := make([]registeredHandler, 0, len(l.handlers))
	for _, h := range l.handlers {
		if h.id != id {
			kept = append(kept, h)
		}
	}
	l.handlers = kept
}

func (l *handlerList) raise(e Event) {
	for _, h := range l.handlers {
		h.fn(e)
	}
}
