// Package store provides PropertyBag, a lazily populated, change-notifying
// property store.
//
// A PropertyBag maps property names to boxed values. Values are stored
// without static type information and asserted to the caller's type on every
// read, using generics:
//
//	bag := store.NewPropertyBag()
//	store.SetValue(bag, "Title", "draft")
//	title, err := store.GetValue[string](bag, "Title")
//
// Core features include:
//   - Lazy creation: GetOrCreateValue runs its factory only on a miss
//   - Change detection: SetValue reports and notifies only real changes
//   - Changing/changed notifications around every create, replace and delete
//   - Per-call hooks, custom equality and default value providers
//   - Insertion-ordered enumeration
//
// Null values:
//
// A stored nil (untyped, or a typed nil pointer, map, slice, channel, func or
// interface) is the null value. It is present in the bag and reads as the
// zero value of whatever type is requested.
//
// Concurrency:
//
// PropertyBag has no internal locking and expects a single owner. Wrap it in
// a Synchronized to share it between goroutines.
package store
