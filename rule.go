package schemarules

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule translates one class of definition into schema constraints.
	// Identity is the name: a caller-supplied rule with the same name as a
	// built-in replaces it (see WithRules). Rules are immutable once
	// constructed.
	Rule interface {
		Name() string
		Matches(Definition) bool
		Apply(*RuleContext) error
	}

	// RuleContext bundles everything a rule's Apply needs for one
	// (property, definition, rule) application. Built fresh per application
	// and discarded when Apply returns.
	RuleContext struct {
		Schema      *openapi3.Schema
		Gen         *GenContext
		PropertyKey string
		Definition  Definition
	}

	// GenContext carries the ambient schema-generation state for one model
	// type.
	GenContext struct {
		ModelType reflect.Type
	}
)

// Property resolves the property schema Apply should mutate. Returns nil if
// the key is absent from the schema, which is a contract violation by the
// schema generator.
func (c *RuleContext) Property() *openapi3.Schema {
	ref := c.Schema.Properties[c.PropertyKey]
	if ref == nil {
		return nil
	}
	return ref.Value
}

// TypeName returns the model type's name for log messages.
func (c *GenContext) TypeName() string {
	if c == nil || c.ModelType == nil {
		return "<unknown>"
	}
	return c.ModelType.String()
}
