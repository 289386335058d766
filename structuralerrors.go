package jsonschema

import "fmt"

// The errors below are structural: they abort the whole evaluation rather
// than being recorded as a validation failure in the result tree. Section 7
// of the engine's error taxonomy distinguishes them from ordinary keyword
// failures, which are always tree data and never surface this way.

// ReferenceResolutionError reports a $ref or $dynamicRef that could not be
// resolved to a schema, either because the target document could not be
// fetched or because the fragment did not address anything.
type ReferenceResolutionError struct {
	URI    string
	Reason string
}

func (e *ReferenceResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve reference %q: %s", e.URI, e.Reason)
}

// ReferenceCycleError reports a $ref navigation that forms a purely
// schema-level cycle without ever consuming instance structure — invariant 5
// in the data model treats this as an error rather than letting the
// recursion run forever.
type ReferenceCycleError struct {
	SchemaURI        string
	InstanceLocation string
}

func (e *ReferenceCycleError) Error() string {
	return fmt.Sprintf("reference cycle detected at schema %q, instance location %q", e.SchemaURI, e.InstanceLocation)
}

// MalformedSchemaError reports a schema document that is neither a boolean
// nor a well-formed keyword object, or whose keyword values fail an
// invariant the model requires (e.g. an invalid regex in pattern).
type MalformedSchemaError struct {
	Location string
	Reason   string
}

func (e *MalformedSchemaError) Error() string {
	return fmt.Sprintf("malformed schema at %q: %s", e.Location, e.Reason)
}

// UnknownVocabularyError reports a $vocabulary entry marked required (true)
// that the evaluator has no recognized keyword set for.
type UnknownVocabularyError struct {
	URI string
}

func (e *UnknownVocabularyError) Error() string {
	return fmt.Sprintf("unknown required vocabulary %q", e.URI)
}

// UnknownFormatError reports a format name the evaluator does not recognize,
// raised only when options.OnlyKnownFormats is set.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q", e.Name)
}

// LoaderError wraps a failure from the pluggable schema loader (network
// error, file-not-found, unsupported scheme).
type LoaderError struct {
	URI   string
	Cause error
}

func (e *LoaderError) Error() string {
	return fmt.Sprintf("failed to load schema %q: %v", e.URI, e.Cause)
}

func (e *LoaderError) Unwrap() error {
	return e.Cause
}

// structuralAbort is the panic payload used to unwind an arbitrary number of
// recursive evaluate() frames back to the Evaluate/Validate entry point. The
// keyword dispatcher is not structured as an error-returning call chain (each
// keyword evaluator returns tree data, not an error), so a typed panic is the
// idiomatic way to bubble a true exceptional condition past code that isn't
// expecting one — the same technique encoding/json uses internally to unwind
// out of a deeply recursive decode on a genuine error.
type structuralAbort struct {
	err error
}

func abort(err error) {
	panic(structuralAbort{err: err})
}

// recoverAbort converts a structuralAbort panic into a returned error. Any
// other panic value is re-raised: only the typed structural errors above are
// expected to cross the evaluate() boundary this way.
func recoverAbort(err *error) {
	if r := recover(); r != nil {
		if sa, ok := r.(structuralAbort); ok {
			*err = sa.err
			return
		}
		panic(r)
	}
}
