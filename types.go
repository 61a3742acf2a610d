package lazyprop

import (
	"github.com/davidroman0O/lazyprop/store"
)

// Logger is the logging interface used by property bags.
type Logger = store.Logger

// Holder owns the property bag its lazy properties live in.
//
// Lazy reads and creates values through the bag with the caller's type, so a
// property holding a value of another type is recreated by the factory
// rather than reported as a mismatch.
type Holder interface {
	Bag() *store.PropertyBag
}

// NotificationHolder is a Holder that announces property mutations.
type NotificationHolder interface {
	Holder

	// OnPropertyChanging registers a handler raised before a mutation.
	OnPropertyChanging(h store.Handler) (*store.Subscription, error)

	// OnPropertyChanged registers a handler raised after a mutation.
	OnPropertyChanged(h store.Handler) (*store.Subscription, error)
}
