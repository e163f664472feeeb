package schemarules

import "fmt"

// NotEmptyRule sets a minimum length of one on properties that forbid empty
// values.
type NotEmptyRule struct{}

func (NotEmptyRule) Name() string { return "NotEmpty" }

func (NotEmptyRule) Matches(d Definition) bool {
	ne, ok := d.(NotEmptyDefinition)
	return ok && ne.NotEmpty()
}

func (NotEmptyRule) Apply(ctx *RuleContext) error {
	prop := ctx.Property()
	if prop == nil {
		return fmt.Errorf("property %q not present in schema", ctx.PropertyKey)
	}
	prop.MinLength = 1
	return nil
}
