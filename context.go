package jsonschema

import (
	"fmt"
	"reflect"
)

// DynamicScope is the evaluator's dynamic frame stack. Every Schema.evaluate
// call pushes itself here before processing its keywords and pops on return,
// so the stack always mirrors the live recursion: $dynamicRef walks it from
// the outside in, $recursiveRef walks it looking for the outermost schema
// with $recursiveAnchor set, and cycle detection consults it to tell a
// legitimate recursive-schema-over-recursive-data descent from a schema that
// refers back to itself without ever consuming instance structure.
type DynamicScope struct {
	schemas []*Schema

	opts    *Options
	dialect *Dialect
	logger  Logger

	active map[string]int // frame key -> active count, for cycle detection
}

// NewDynamicScope creates and returns a new empty DynamicScope using default options.
func NewDynamicScope() *DynamicScope {
	return &DynamicScope{
		schemas: make([]*Schema, 0, 8),
		opts:    NewOptions(),
		dialect: DefaultDialect(),
		active:  make(map[string]int, 8),
	}
}

// newDynamicScopeWithOptions creates a DynamicScope pre-seeded with resolved
// options, dialect and logger. Used by the Evaluate entry point.
func newDynamicScopeWithOptions(opts *Options, dialect *Dialect) *DynamicScope {
	if opts == nil {
		opts = NewOptions()
	}
	if dialect == nil {
		dialect = DefaultDialect()
	}
	return &DynamicScope{
		schemas: make([]*Schema, 0, 8),
		opts:    opts,
		dialect: dialect,
		logger:  opts.Logger,
		active:  make(map[string]int, 8),
	}
}

// Push adds a Schema to the dynamic scope
func (ds *DynamicScope) Push(schema *Schema) {
	ds.schemas = append(ds.schemas, schema)
}

// Pop removes and returns the top Schema from the dynamic scope
func (ds *DynamicScope) Pop() *Schema {
	if len(ds.schemas) == 0 {
		return nil
	}
	lastIndex := len(ds.schemas) - 1
	schema := ds.schemas[lastIndex]
	ds.schemas = ds.schemas[:lastIndex]
	return schema
}

// Peek returns the top Schema without removing it
func (ds *DynamicScope) Peek() *Schema {
	if len(ds.schemas) == 0 {
		return nil
	}
	return ds.schemas[len(ds.schemas)-1]
}

// IsEmpty checks if the dynamic scope is empty
func (ds *DynamicScope) IsEmpty() bool {
	return len(ds.schemas) == 0
}

// Size returns the number of Schemas in the dynamic scope
func (ds *DynamicScope) Size() int {
	return len(ds.schemas)
}

// LookupDynamicAnchor searches for a dynamic anchor in the dynamic scope,
// starting from the outermost frame: that is the defining property of
// $dynamicRef, which reparents to the lexically outermost redefinition
// rather than the innermost (most recently pushed) one.
func (ds *DynamicScope) LookupDynamicAnchor(anchor string) *Schema {
	for i := 0; i < len(ds.schemas); i++ {
		schema := ds.schemas[i]
		if schema.dynamicAnchors != nil && schema.dynamicAnchors[anchor] != nil {
			return schema.dynamicAnchors[anchor]
		}
	}
	return nil
}

// LookupRecursiveAnchor returns the outermost schema on the stack whose
// $recursiveAnchor is true, implementing the older-dialect counterpart of
// $dynamicRef resolution.
func (ds *DynamicScope) LookupRecursiveAnchor() *Schema {
	for i := 0; i < len(ds.schemas); i++ {
		schema := ds.schemas[i]
		if schema.RecursiveAnchor != nil && *schema.RecursiveAnchor {
			return schema
		}
	}
	return nil
}

// dialectOf returns the active dialect, defaulting to the latest if unset.
func (ds *DynamicScope) dialectOf() *Dialect {
	if ds.dialect == nil {
		return DefaultDialect()
	}
	return ds.dialect
}

// setDialect updates the active vocabulary filter on the scope. Keyword
// dispatch re-reads it on every push, so this takes effect for the schema
// that declared it and everything evaluated beneath it, until another
// $schema is encountered (which the open question in the design notes
// restricts to root schemas only; see resolveDialect).
func (ds *DynamicScope) setDialect(d *Dialect) {
	if d != nil {
		ds.dialect = d
	}
}

// applyOptimizations is the query named in 4.4: whether the dispatcher is
// free to stop evaluating a schema's remaining keywords because nothing
// further could change what a caller can observe. True only under flag
// output (no detail, no annotation, is ever projected out) and only when no
// keyword on this schema depends on the annotations (evaluatedProps /
// evaluatedItems) the remaining keywords would still contribute — the
// unevaluated* family is the only such dependency this keyword set has, so
// its presence pins the full keyword set even under flag output.
func (ds *DynamicScope) applyOptimizations(s *Schema) bool {
	if ds.opts == nil || ds.opts.OutputFormat != OutputFormatFlag {
		return false
	}
	return s.UnevaluatedProperties == nil && s.UnevaluatedItems == nil
}

func (ds *DynamicScope) log(event string, fields map[string]any) {
	if ds.logger != nil {
		ds.logger.Log(event, fields)
	}
}

// Fork returns an independent scope for a concurrent branch (5): it shares
// the registry-level state (options, dialect, logger) but owns its own
// frame stack and cycle-detection set, since those mutate on every push and
// must never be shared between goroutines.
func (ds *DynamicScope) Fork() *DynamicScope {
	schemas := make([]*Schema, len(ds.schemas))
	copy(schemas, ds.schemas)

	active := make(map[string]int, len(ds.active))
	for k, v := range ds.active {
		active[k] = v
	}

	return &DynamicScope{
		schemas: schemas,
		opts:    ds.opts,
		dialect: ds.dialect,
		logger:  ds.logger,
		active:  active,
	}
}

// frameKey identifies a (schema, instance) pair for cycle detection. Two
// calls into the same schema object against the exact same instance value,
// with no descent into a child of that value in between, are the same
// frame key; the engine raises ReferenceCycleError instead of recursing
// forever. Reference-typed instances (maps, slices) are keyed by identity;
// scalars are keyed by their textual form, since there is no descent for
// them to be identified by.
func frameKey(schema *Schema, instance interface{}) string {
	return fmt.Sprintf("%p|%s", schema, instanceIdentity(instance))
}

func instanceIdentity(instance interface{}) string {
	switch v := instance.(type) {
	case map[string]interface{}, []interface{}:
		rv := reflect.ValueOf(v)
		return fmt.Sprintf("ref:%d", rv.Pointer())
	case nil:
		return "null"
	default:
		return fmt.Sprintf("scalar:%v", v)
	}
}

// enterFrame registers (schema, instance) as active on this evaluation and
// reports whether doing so closed a cycle. It must be paired with exitFrame.
func (ds *DynamicScope) enterFrame(schema *Schema, instance interface{}) (key string, cyclic bool) {
	key = frameKey(schema, instance)
	if ds.active == nil {
		ds.active = make(map[string]int, 8)
	}
	if ds.active[key] > 0 {
		return key, true
	}
	ds.active[key]++
	return key, false
}

func (ds *DynamicScope) exitFrame(key string) {
	if ds.active[key] <= 1 {
		delete(ds.active, key)
		return
	}
	ds.active[key]--
}

// instanceLocationHint renders a best-effort instance location for a cycle
// error. The engine does not thread a full JSON Pointer through evaluate();
// this falls back to the location carried by the current result node.
func instanceLocationHint(result *EvaluationResult) string {
	if result == nil {
		return ""
	}
	return result.InstanceLocation
}
