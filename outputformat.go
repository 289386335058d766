package jsonschema

import "github.com/kaptinlin/go-i18n"

// toDetailedList projects the result tree into the "detailed" shape (4.6):
// a node whose children are all valid and which itself carries no message
// or annotation is collapsed away and replaced by its own children, so the
// caller sees only the nodes that actually say something. A passing leaf
// with nothing to say is removed the same way, having no children to put in
// its place. Surviving nodes keep their own locations: collapsing splices a
// node's children into its parent unchanged.
func (e *EvaluationResult) toDetailedList(localizer *i18n.Localizer) *List {
	return e.buildDetailed(localizer)
}

// FormatLocalized is the localized counterpart to Format, used when the
// caller wants translated messages in basic/detailed/verbose output.
func (e *EvaluationResult) FormatLocalized(format OutputFormat, localizer *i18n.Localizer) any {
	switch format {
	case OutputFormatFlag:
		return e.ToFlag()
	case OutputFormatBasic:
		return e.ToLocalizeList(localizer, false)
	case OutputFormatDetailed:
		return e.toDetailedList(localizer)
	case OutputFormatVerbose:
		return e.ToLocalizeList(localizer, true)
	default:
		return e.ToLocalizeList(localizer, true)
	}
}

func (e *EvaluationResult) buildDetailed(localizer *i18n.Localizer) *List {
	children := make([]List, 0, len(e.Details))
	for _, detail := range e.Details {
		child := detail.buildDetailed(localizer)
		if detail.isCollapsible() {
			children = append(children, child.Details...)
		} else {
			children = append(children, *child)
		}
	}

	return &List{
		Valid:            e.Valid,
		EvaluationPath:   e.EvaluationPath,
		SchemaLocation:   e.SchemaLocation,
		InstanceLocation: e.InstanceLocation,
		Errors:           e.convertErrors(localizer),
		Annotations:      e.Annotations,
		Details:          children,
	}
}

// isCollapsible reports whether this node should vanish from detailed
// output in favor of its own children (4.6): its children must all be
// valid — not merely this node's own aggregated validity, which an
// applicator like oneOf/anyOf can set to true with a failing branch among
// its children — and it must carry nothing a reader would otherwise lose:
// no message, no annotation of its own.
func (e *EvaluationResult) isCollapsible() bool {
	if len(e.Errors) != 0 || len(e.Annotations) != 0 {
		return false
	}
	for _, detail := range e.Details {
		if !detail.Valid {
			return false
		}
	}
	return true
}
