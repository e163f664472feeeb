package schemarules

import (
	"errors"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Common string format definitions. Each validates with the matching
// govalidator predicate and surfaces govalidator's pattern, so the Pattern
// rule annotates the schema with the same expression the runtime check
// enforces.
var (
	// IsEmail requires a valid email address.
	IsEmail Definition = formatDef{name: "email", check: govalidator.IsEmail, pattern: govalidator.Email}
	// IsUUID requires a valid UUID of any version.
	IsUUID Definition = formatDef{name: "uuid", check: govalidator.IsUUID, pattern: govalidator.UUID}
	// IsURL requires a valid URL.
	IsURL Definition = formatDef{name: "url", check: govalidator.IsURL, pattern: govalidator.URL}
	// IsAlphanumeric requires ASCII letters and digits only.
	IsAlphanumeric Definition = formatDef{name: "alphanumeric", check: govalidator.IsAlphanumeric, pattern: govalidator.Alphanumeric}
	// IsInt requires an integer in decimal notation.
	IsInt Definition = formatDef{name: "integer", check: govalidator.IsInt, pattern: govalidator.Int}
)

type formatDef struct {
	name    string
	check   func(string) bool
	pattern string
}

func (r formatDef) Constraint() string { return r.name }
func (r formatDef) Pattern() string    { return r.pattern }

// Validate implements validation.Rule. Nil and empty values pass; pair with
// Required to reject them.
func (r formatDef) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if !r.check(s) {
		return errors.New("must be a valid " + r.name)
	}
	return nil
}
