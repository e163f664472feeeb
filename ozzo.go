package schemarules

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type (
	// Ruler is implemented by model types that declare validation rules for
	// their fields. One declaration serves two consumers: the definitions
	// satisfy [validation.Rule], so callers can feed them straight into
	// ozzo-validation for runtime checks, and the engine reads their
	// capability surface to annotate schemas.
	Ruler interface {
		Rules() []*FieldRules
	}

	// FieldRules binds a struct field pointer to its validation definitions.
	FieldRules struct {
		fieldPtr any
		defs     []Definition
	}
)

// Field creates a FieldRules binding a struct field pointer to definitions.
func Field[T any](fieldPtr *T, defs ...Definition) *FieldRules {
	return &FieldRules{fieldPtr: fieldPtr, defs: defs}
}

// Required is a definition that the field must be present and non-empty.
var Required Definition = requiredDef{RequiredRule: validation.Required}

type requiredDef struct {
	validation.RequiredRule
}

func (requiredDef) Constraint() string { return "required" }
func (requiredDef) NotNull() bool      { return true }
func (requiredDef) NotEmpty() bool     { return true }

// NotNil is a definition that the field must not be nil. Empty non-nil
// values are allowed.
var NotNil Definition = notNilDef{Rule: validation.NotNil}

type notNilDef struct {
	validation.Rule
}

func (notNilDef) Constraint() string { return "not nil" }
func (notNilDef) NotNull() bool      { return true }

// Length returns a definition bounding a string's rune length. A max of
// zero or less leaves the upper bound open.
func Length(min, max int) Definition {
	return lengthDef{LengthRule: validation.RuneLength(min, max), min: min, max: max}
}

type lengthDef struct {
	validation.LengthRule
	min, max int
}

func (r lengthDef) Constraint() string       { return fmt.Sprintf("length %d..%d", r.min, r.max) }
func (r lengthDef) LengthBounds() (int, int) { return r.min, r.max }

// Match returns a definition that the field must match re. The schema
// pattern is re's source text, verbatim.
func Match(re *regexp.Regexp) Definition {
	return matchDef{MatchRule: validation.Match(re), expr: re.String()}
}

type matchDef struct {
	validation.MatchRule
	expr string
}

func (r matchDef) Constraint() string { return "match " + r.expr }
func (r matchDef) Pattern() string    { return r.expr }

// Min returns a definition that the field must be greater than or equal to
// threshold. Chain [ComparisonDef.Exclusive] for a strict bound.
func Min(threshold any) ComparisonDef {
	return ComparisonDef{
		ThresholdRule: validation.Min(threshold),
		op:            GreaterThanOrEqual,
		comparand:     threshold,
	}
}

// Max returns a definition that the field must be less than or equal to
// threshold. Chain [ComparisonDef.Exclusive] for a strict bound.
func Max(threshold any) ComparisonDef {
	return ComparisonDef{
		ThresholdRule: validation.Max(threshold),
		op:            LessThanOrEqual,
		comparand:     threshold,
	}
}

// ComparisonDef is a single-bound comparison definition.
type ComparisonDef struct {
	validation.ThresholdRule
	op        Operator
	comparand any
}

// Exclusive makes the bound strict: Min becomes greater-than, Max becomes
// less-than.
func (r ComparisonDef) Exclusive() ComparisonDef {
	r.ThresholdRule = r.ThresholdRule.Exclusive()
	switch r.op {
	case GreaterThanOrEqual:
		r.op = GreaterThan
	case LessThanOrEqual:
		r.op = LessThan
	}
	return r
}

func (r ComparisonDef) Constraint() string          { return fmt.Sprintf("%s %v", r.op, r.comparand) }
func (r ComparisonDef) Comparison() (Operator, any) { return r.op, r.comparand }

// Between returns a definition constraining the field to the interval
// [from, to]. Chain [RangeDef.ExclusiveFrom] or [RangeDef.ExclusiveTo] to
// open either side. A nil bound leaves that side unconstrained.
func Between(from, to any) RangeDef {
	return RangeDef{bounds: RangeBounds{From: from, To: to}}
}

// RangeDef is an interval definition.
type RangeDef struct {
	bounds RangeBounds
}

// ExclusiveFrom makes the lower bound strict.
func (r RangeDef) ExclusiveFrom() RangeDef {
	r.bounds.ExclusiveFrom = true
	return r
}

// ExclusiveTo makes the upper bound strict.
func (r RangeDef) ExclusiveTo() RangeDef {
	r.bounds.ExclusiveTo = true
	return r
}

func (r RangeDef) Constraint() string {
	return fmt.Sprintf("between %v and %v", r.bounds.From, r.bounds.To)
}

func (r RangeDef) Range() RangeBounds { return r.bounds }

// Validate implements validation.Rule by composing ozzo threshold rules, so
// a Between declaration also backs runtime validation.
func (r RangeDef) Validate(value any) error {
	if r.bounds.From != nil {
		min := validation.Min(r.bounds.From)
		if r.bounds.ExclusiveFrom {
			min = min.Exclusive()
		}
		if err := min.Validate(value); err != nil {
			return err
		}
	}
	if r.bounds.To != nil {
		max := validation.Max(r.bounds.To)
		if r.bounds.ExclusiveTo {
			max = max.Exclusive()
		}
		if err := max.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

// RulerProvider resolves validators for model types implementing [Ruler].
type RulerProvider struct{}

// Validator implements Provider. Pointer types are unwrapped; types that do
// not implement Ruler resolve to no validator. A rule whose field pointer
// cannot be mapped back to a struct field is a declaration mistake and
// surfaces as an error.
func (RulerProvider) Validator(t reflect.Type) (Validator, error) {
	if t == nil {
		return nil, nil
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, nil
	}
	inst := reflect.New(t)
	r, ok := inst.Interface().(Ruler)
	if !ok {
		return nil, nil
	}
	structVal := inst.Elem()
	fields := r.Rules()
	v := make(rulerValidator, 0, len(fields))
	for i, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			return nil, fmt.Errorf("rule target for field index %d must be a pointer, got %s", i, fv.Kind())
		}
		sf := findStructField(structVal, fv)
		if sf == nil {
			return nil, fmt.Errorf("rule target for field index %d not found in struct %s", i, t)
		}
		v = append(v, fieldDefs{name: fieldKey(*sf), defs: fr.defs})
	}
	return v, nil
}

type fieldDefs struct {
	name string
	defs []Definition
}

type rulerValidator []fieldDefs

func (v rulerValidator) FieldDefinitions(name string) []Definition {
	for _, f := range v {
		if strings.EqualFold(f.name, name) {
			return f.defs
		}
	}
	return nil
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}

// findStructField locates the struct field whose address matches fieldPtr,
// descending into embedded structs. The type comparison disambiguates an
// embedded struct from its own first field, which share an address.
func findStructField(structVal reflect.Value, fieldPtr reflect.Value) *reflect.StructField {
	ptr := fieldPtr.Pointer()
	for i := 0; i < structVal.NumField(); i++ {
		sf := structVal.Type().Field(i)
		if ptr == structVal.Field(i).Addr().Pointer() && sf.Type == fieldPtr.Type().Elem() {
			return &sf
		}
		if sf.Anonymous {
			fi := structVal.Field(i)
			if sf.Type.Kind() == reflect.Ptr {
				fi = fi.Elem()
			}
			if fi.Kind() == reflect.Struct {
				if f := findStructField(fi, fieldPtr); f != nil {
					return f
				}
			}
		}
	}
	return nil
}
