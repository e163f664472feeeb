// Package openapi binds the schemarules engine to kin-openapi's
// reflection-based schema generator, so schemas generated for model types
// implementing [schemarules.Ruler] carry their declared constraints.
package openapi

import (
	"reflect"

	"github.com/Gobd/schemarules"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// NewSchemaRefForValue generates an OpenAPI schema for value and annotates
// every generated struct type with the constraints its validation rules
// declare. Rules resolve through [schemarules.RulerProvider] by default;
// pass engine options to swap the provider, override rules, or set a logger.
func NewSchemaRefForValue(value any, opts ...schemarules.Option) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(Customizer(opts...)))
	return g.NewSchemaRefForValue(value, nil)
}

// Customizer returns an openapi3gen schema customizer that runs a
// schemarules engine once per generated struct type. Non-struct schemas
// (leaf fields, slices, maps) pass through untouched.
func Customizer(opts ...schemarules.Option) openapi3gen.SchemaCustomizerFn {
	engine := schemarules.New(append([]schemarules.Option{
		schemarules.WithProvider(schemarules.RulerProvider{}),
	}, opts...)...)
	return func(_ string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil
		}
		engine.Apply(schema, &schemarules.GenContext{ModelType: t})
		return nil
	}
}
