// Package schemarules augments OpenAPI 3 schemas with validation constraints
// (required fields, length bounds, numeric ranges, regex patterns) derived
// from declarative validation rules attached to model types.
//
// Declare rules by implementing [Ruler] on your structs:
//
//	func (o *Order) Rules() []*FieldRules {
//	    return []*FieldRules{
//	        Field(&o.ID, Required),
//	        Field(&o.Amount, Min(0.01)),
//	    }
//	}
//
// An [Engine] then copies the declared constraints onto a generated schema:
//
//	engine := schemarules.New(schemarules.WithProvider(schemarules.RulerProvider{}))
//	engine.Apply(schema, &schemarules.GenContext{ModelType: reflect.TypeOf(Order{})})
//
// Constraint translation is driven by named [Rule] values: each pairs a match
// predicate over a [Definition] with an action that mutates the schema.
// Caller-supplied rules override built-ins of the same name via [WithRules].
//
// The engine never fails schema generation: a missing provider, a provider
// error, or a failing rule each degrade to a logged warning and an
// unannotated (or partially annotated) schema.
//
// Sub-packages:
//   - openapi – binds the engine to kin-openapi's openapi3gen generator
package schemarules
