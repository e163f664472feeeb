package schemarules

import "fmt"

// PatternRule copies a regular expression onto the property schema verbatim,
// without re-escaping.
type PatternRule struct{}

func (PatternRule) Name() string { return "Pattern" }

func (PatternRule) Matches(d Definition) bool {
	pd, ok := d.(PatternDefinition)
	return ok && pd.Pattern() != ""
}

func (PatternRule) Apply(ctx *RuleContext) error {
	prop := ctx.Property()
	if prop == nil {
		return fmt.Errorf("property %q not present in schema", ctx.PropertyKey)
	}
	pd, ok := ctx.Definition.(PatternDefinition)
	if !ok {
		return fmt.Errorf("definition %q carries no pattern", ctx.Definition.Constraint())
	}
	prop.Pattern = pd.Pattern()
	return nil
}
