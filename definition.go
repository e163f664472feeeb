package schemarules

// Operator identifies the direction of a comparison constraint.
type Operator string

// Comparison operators understood by the built-in Comparison rule.
const (
	GreaterThan        Operator = "greaterThan"
	GreaterThanOrEqual Operator = "greaterThanOrEqual"
	LessThan           Operator = "lessThan"
	LessThanOrEqual    Operator = "lessThanOrEqual"
)

type (
	// Definition is an opaque descriptor of one validation constraint bound
	// to one model field. Rules never inspect concrete definition types;
	// they discover what a definition can express through the capability
	// interfaces below.
	Definition interface {
		// Constraint returns a short label for the constraint, used in log
		// messages only.
		Constraint() string
	}

	// NotNullDefinition is implemented by definitions that forbid nil values.
	NotNullDefinition interface {
		Definition
		NotNull() bool
	}

	// NotEmptyDefinition is implemented by definitions that forbid empty values.
	NotEmptyDefinition interface {
		Definition
		NotEmpty() bool
	}

	// LengthDefinition is implemented by definitions that bound string length.
	// A max of zero or less means unbounded above.
	LengthDefinition interface {
		Definition
		LengthBounds() (min, max int)
	}

	// PatternDefinition is implemented by definitions carrying a regular
	// expression the value must match.
	PatternDefinition interface {
		Definition
		Pattern() string
	}

	// ComparisonDefinition is implemented by definitions comparing the value
	// against a single comparand.
	ComparisonDefinition interface {
		Definition
		Comparison() (Operator, any)
	}

	// RangeDefinition is implemented by definitions constraining the value
	// to an interval.
	RangeDefinition interface {
		Definition
		Range() RangeBounds
	}
)

// RangeBounds describes an interval constraint. Either bound may be nil or
// non-numeric, in which case that side carries no schema annotation.
type RangeBounds struct {
	From, To                   any
	ExclusiveFrom, ExclusiveTo bool
}
