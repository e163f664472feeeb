package schemarules

import (
	"log/slog"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

// Engine applies validation rules to generated schemas. Construct with New;
// the rule registry is a fixed snapshot from then on, so a single Engine may
// annotate different schemas from concurrent goroutines. Apply mutates the
// given schema unsynchronized, so concurrent calls against the same schema
// must be serialized by the caller.
type Engine struct {
	provider Provider
	rules    []Rule
	log      *slog.Logger
}

type config struct {
	provider  Provider
	overrides []Rule
	log       *slog.Logger
}

// Option configures an Engine at construction time.
type Option func(*config)

// WithProvider sets the validator provider. Without one the engine is inert.
func WithProvider(p Provider) Option {
	return func(c *config) { c.provider = p }
}

// WithRules adds rules to the registry. A rule named like a built-in
// replaces it in place; new names are appended after the built-ins.
func WithRules(rules ...Rule) Option {
	return func(c *config) { c.overrides = append(c.overrides, rules...) }
}

// WithLogger sets the logger for warnings. Without one warnings are dropped.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

// New builds an Engine. Every collaborator is optional: no provider makes
// Apply a no-op, no rules means the built-in set, no logger drops warnings.
func New(opts ...Option) *Engine {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &Engine{
		provider: c.provider,
		rules:    mergeRules(DefaultRules(), c.overrides),
		log:      c.log,
	}
}

// Rules returns the active registry in application order.
func (e *Engine) Rules() []Rule {
	return slices.Clone(e.rules)
}

// Apply annotates schema with constraints derived from the validation rules
// declared for the model type in gen. Failures never propagate to the
// caller: a provider error skips annotation for the whole type, a failing
// rule application skips that one (property, definition, rule) triple, and
// both are logged as warnings. The worst case is a schema with fewer
// constraints than expected, never a failed generation pass.
func (e *Engine) Apply(schema *openapi3.Schema, gen *GenContext) {
	if schema == nil {
		return
	}
	if gen == nil {
		gen = &GenContext{}
	}
	if e.provider == nil {
		e.warn("no validator provider configured, schema not annotated",
			slog.String("type", gen.TypeName()))
		return
	}
	v, err := e.provider.Validator(gen.ModelType)
	if err != nil {
		e.warn("resolving validator failed, schema not annotated",
			slog.String("type", gen.TypeName()),
			slog.Any("error", err))
		return
	}
	if v == nil {
		return
	}
	for key := range schema.Properties {
		for _, def := range v.FieldDefinitions(key) {
			if def == nil {
				continue
			}
			for _, rule := range e.rules {
				if !rule.Matches(def) {
					continue
				}
				err := rule.Apply(&RuleContext{
					Schema:      schema,
					Gen:         gen,
					PropertyKey: key,
					Definition:  def,
				})
				if err != nil {
					e.warn("applying rule failed",
						slog.String("rule", rule.Name()),
						slog.String("property", key),
						slog.String("type", gen.TypeName()),
						slog.Any("error", err))
				}
			}
		}
	}
}

func (e *Engine) warn(msg string, args ...any) {
	if e.log == nil {
		return
	}
	e.log.Warn(msg, args...)
}
