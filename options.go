package jsonschema

// OutputFormat selects one of the four result-tree projections the
// formatter can produce (4.6).
type OutputFormat string

const (
	OutputFormatFlag     OutputFormat = "flag"
	OutputFormatBasic    OutputFormat = "basic"
	OutputFormatDetailed OutputFormat = "detailed"
	OutputFormatVerbose  OutputFormat = "verbose"
)

// Logger is the pluggable narration sink keyword evaluators and the
// dispatcher may write to; it never influences validation outcomes.
type Logger interface {
	Log(event string, fields map[string]any)
}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(event string, fields map[string]any)

func (f LoggerFunc) Log(event string, fields map[string]any) {
	if f != nil {
		f(event, fields)
	}
}

// Options controls how Evaluate resolves a dialect, formats its result, and
// treats custom keywords and formats (C10, section 6).
type Options struct {
	// OutputFormat selects the shape of the returned result tree.
	OutputFormat OutputFormat

	// EvaluateAs overrides dialect auto-detection from $schema; empty means
	// auto-detect, falling back to the latest dialect.
	EvaluateAs string

	// DefaultBaseURI is used when a root schema declares no $id.
	DefaultBaseURI string

	// SchemaRegistry is the compiler/registry evaluation resolves references
	// through. Defaults to the schema's own associated compiler.
	SchemaRegistry *Compiler

	// VocabularyRegistry maps a vocabulary URI to the set of keyword names
	// it defines, letting a caller declare a custom vocabulary without
	// registering a whole Dialect.
	VocabularyRegistry map[string]map[string]struct{}

	// ProcessCustomKeywords, when false, drops unrecognized schema members
	// instead of surfacing them as annotations.
	ProcessCustomKeywords bool

	// RequireFormatValidation forces "format" to behave as an assertion
	// rather than a pure annotation, regardless of dialect default.
	RequireFormatValidation bool

	// OnlyKnownFormats makes an unrecognized format name a structural
	// UnknownFormatError instead of a silently-skipped assertion.
	OnlyKnownFormats bool

	// Logger receives narration events from the dispatcher and keywords.
	Logger Logger
}

// NewOptions returns the engine's defaults: basic dialect auto-detection,
// verbose output, custom keywords passed through as annotations, and format
// treated as an annotation unless RequireFormatValidation is set.
func NewOptions() *Options {
	return &Options{
		OutputFormat:          OutputFormatVerbose,
		ProcessCustomKeywords: true,
	}
}

// Evaluate is the engine's top-level entry point (section 6): it resolves
// the active dialect, runs the dispatcher, and returns either a result tree
// or a structural error — never both, never a panic.
func Evaluate(schema *Schema, instance any, opts *Options) (result *EvaluationResult, err error) {
	if schema == nil {
		return nil, &MalformedSchemaError{Location: "#", Reason: "schema is nil"}
	}
	if opts == nil {
		opts = NewOptions()
	}

	compiler := opts.SchemaRegistry
	if compiler == nil {
		compiler = schema.GetCompiler()
	}
	if compiler != nil {
		compiler.SetAssertFormat(opts.RequireFormatValidation)
	}

	dialect := resolveDialect(schema, opts)
	dynamicScope := newDynamicScopeWithOptions(opts, dialect)

	result, _, _, err = schema.evaluateSafely(instance, dynamicScope)
	return result, err
}

// Format projects an already-computed result tree into one of the four
// output shapes without re-evaluating anything (4.6).
func (e *EvaluationResult) Format(format OutputFormat) any {
	switch format {
	case OutputFormatFlag:
		return e.ToFlag()
	case OutputFormatBasic:
		return e.ToList(false)
	case OutputFormatDetailed:
		return e.toDetailedList(nil)
	case OutputFormatVerbose:
		return e.ToList(true)
	default:
		return e.ToList(true)
	}
}
