package schemarules

import "slices"

// RequiredRule adds properties with not-nil or not-empty constraints to the
// schema's required set. Adding an already-present key is a no-op.
type RequiredRule struct{}

func (RequiredRule) Name() string { return "Required" }

func (RequiredRule) Matches(d Definition) bool {
	if nn, ok := d.(NotNullDefinition); ok && nn.NotNull() {
		return true
	}
	if ne, ok := d.(NotEmptyDefinition); ok && ne.NotEmpty() {
		return true
	}
	return false
}

func (RequiredRule) Apply(ctx *RuleContext) error {
	if !slices.Contains(ctx.Schema.Required, ctx.PropertyKey) {
		ctx.Schema.Required = append(ctx.Schema.Required, ctx.PropertyKey)
	}
	return nil
}
