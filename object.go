package lazyprop

import (
	"github.com/davidroman0O/lazyprop/store"
)

// Object is an embeddable NotificationHolder backed by a property bag.
// The zero value is ready to use; the bag is created on first access.
type Object struct {
	bag *store.PropertyBag
}

// NewObject creates an Object whose bag is built with opts.
func NewObject(opts ...store.BagOption) *Object {
	return &Object{bag: store.NewPropertyBag(opts...)}
}

// Bag implements Holder.
func (o *Object) Bag() *store.PropertyBag {
	if o.bag == nil {
		o.bag = store.NewPropertyBag()
	}
	return o.bag
}

// OnPropertyChanging implements NotificationHolder.
func (o *Object) OnPropertyChanging(h store.Handler) (*store.Subscription, error) {
	return o.Bag().OnPropertyChanging(h)
}

// OnPropertyChanged implements NotificationHolder.
func (o *Object) OnPropertyChanged(h store.Handler) (*store.Subscription, error) {
	return o.Bag().OnPropertyChanged(h)
}

var _ NotificationHolder = (*Object)(nil)
