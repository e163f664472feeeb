package schemarules

import "reflect"

type (
	// Provider resolves the validator governing a model type's fields.
	Provider interface {
		// Validator returns the validator for t, or nil if the type declares
		// no validation rules. Errors are recovered by the engine and
		// downgraded to a logged warning.
		Validator(t reflect.Type) (Validator, error)
	}

	// Validator exposes the validation constraints declared for one model
	// type, keyed by field name.
	Validator interface {
		// FieldDefinitions returns the definitions bound to the named field.
		// The name is matched case-insensitively. Entries may be nil; the
		// engine skips them.
		FieldDefinitions(name string) []Definition
	}
)
