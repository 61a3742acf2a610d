// Package lazyprop provides lazily-initialized, change-notifying properties.
//
// A property is computed on first access by a factory, cached in a
// store.PropertyBag, and replaced only through operations that report and
// notify real changes. Types embed Object to gain a bag and implement
// property getters with Lazy:
//
//	type Document struct {
//		lazyprop.Object
//	}
//
//	func (d *Document) Tags() []string {
//		tags, _ := lazyprop.Lazy(d, "Tags", func() []string { return []string{} })
//		return tags
//	}
//
// Core components include:
//   - Holder: anything owning the property bag its properties live in
//   - Object: an embeddable Holder owning a property bag
//   - Lazy / LazyValue: typed accessors over a Holder
//
// Property names are always passed explicitly; two calls with the same name
// address the same property wherever they are made.
package lazyprop
