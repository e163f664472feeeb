package schemarules

import "fmt"

// ComparisonRule maps a single comparison against a numeric comparand onto
// the property's minimum or maximum bound. Non-numeric comparands (another
// property, enum or date values) never match, so the constraint is simply
// not annotated.
type ComparisonRule struct{}

func (ComparisonRule) Name() string { return "Comparison" }

func (ComparisonRule) Matches(d Definition) bool {
	cd, ok := d.(ComparisonDefinition)
	if !ok {
		return false
	}
	_, comparand := cd.Comparison()
	_, numeric := toFloat(comparand)
	return numeric
}

func (ComparisonRule) Apply(ctx *RuleContext) error {
	prop := ctx.Property()
	if prop == nil {
		return fmt.Errorf("property %q not present in schema", ctx.PropertyKey)
	}
	cd, ok := ctx.Definition.(ComparisonDefinition)
	if !ok {
		return fmt.Errorf("definition %q is not a comparison", ctx.Definition.Constraint())
	}
	op, comparand := cd.Comparison()
	f, ok := toFloat(comparand)
	if !ok {
		return nil
	}
	switch op {
	case GreaterThanOrEqual:
		prop.Min = &f
	case GreaterThan:
		prop.Min = &f
		prop.ExclusiveMin = true
	case LessThanOrEqual:
		prop.Max = &f
	case LessThan:
		prop.Max = &f
		prop.ExclusiveMax = true
	}
	return nil
}
