package store

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema returns a JSON Schema describing the dynamic type of the value
// stored under name.
func (b *PropertyBag) Schema(name string) (*jsonschema.Schema, error) {
	boxed, ok := b.entries.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}
	if isNull(boxed) {
		return nil, fmt.Errorf("%w: %q", ErrNullValue, name)
	}
	return TypeSchema(reflect.TypeOf(boxed)), nil
}

// TypeSchema converts a reflect.Type to a JSON schema.
func TypeSchema(t reflect.Type) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference:            true, // inline the root instead of a $ref into definitions
		AllowAdditionalProperties: false,
	}
	return reflector.ReflectFromType(t)
}
