package schemarules

import "fmt"

// LengthRule copies string length bounds onto the property schema. A max of
// zero or less means unbounded above and leaves maxLength unset.
type LengthRule struct{}

func (LengthRule) Name() string { return "Length" }

func (LengthRule) Matches(d Definition) bool {
	_, ok := d.(LengthDefinition)
	return ok
}

func (LengthRule) Apply(ctx *RuleContext) error {
	prop := ctx.Property()
	if prop == nil {
		return fmt.Errorf("property %q not present in schema", ctx.PropertyKey)
	}
	ld, ok := ctx.Definition.(LengthDefinition)
	if !ok {
		return fmt.Errorf("definition %q is not length-bounded", ctx.Definition.Constraint())
	}
	lo, hi := ld.LengthBounds()
	if lo > 0 {
		prop.MinLength = uint64(lo)
	}
	if hi > 0 {
		max := uint64(hi)
		prop.MaxLength = &max
	}
	return nil
}
