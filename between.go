package schemarules

import "fmt"

// BetweenRule maps an interval constraint onto the property's minimum and
// maximum bounds. Each side applies independently; a nil or non-numeric
// bound skips that side only.
type BetweenRule struct{}

func (BetweenRule) Name() string { return "Between" }

func (BetweenRule) Matches(d Definition) bool {
	_, ok := d.(RangeDefinition)
	return ok
}

func (BetweenRule) Apply(ctx *RuleContext) error {
	prop := ctx.Property()
	if prop == nil {
		return fmt.Errorf("property %q not present in schema", ctx.PropertyKey)
	}
	rd, ok := ctx.Definition.(RangeDefinition)
	if !ok {
		return fmt.Errorf("definition %q is not a range", ctx.Definition.Constraint())
	}
	bounds := rd.Range()
	if f, numeric := toFloat(bounds.From); numeric {
		prop.Min = &f
		prop.ExclusiveMin = bounds.ExclusiveFrom
	}
	if f, numeric := toFloat(bounds.To); numeric {
		prop.Max = &f
		prop.ExclusiveMax = bounds.ExclusiveTo
	}
	return nil
}
