package jsonschema

// Validate checks if the given instance conforms to the schema using the
// engine's default options (2020-12 dialect or whatever the schema's
// $schema declares, basic short-circuiting disabled). It never returns a
// structural error value; callers that need one should use Evaluate.
func (s *Schema) Validate(instance interface{}) *EvaluationResult {
	dynamicScope := NewDynamicScope()
	dynamicScope.setDialect(resolveDialect(s, dynamicScope.opts))
	result, _, _, err := s.evaluateSafely(instance, dynamicScope)
	if err != nil {
		// Preserve prior behavior for this entry point: a structural error
		// becomes a single invalid root result rather than a panic, since
		// Validate's signature predates structural-error propagation.
		failure := NewEvaluationResult(s)
		failure.SetInvalid()
		failure.AddError(NewEvaluationError("$schema", "structural_error", err.Error()))
		return failure
	}
	return result
}

// ValidateJSON validates a raw JSON byte slice. It is a thin convenience
// wrapper around Validate that normalizes the bytes via the same
// convertSource path unmarshaling uses, so callers do not need to decode
// JSON themselves before validating it.
func (s *Schema) ValidateJSON(data []byte) *EvaluationResult {
	instance, _, err := s.convertSource(data)
	if err != nil {
		failure := NewEvaluationResult(s)
		failure.SetInvalid()
		failure.AddError(NewEvaluationError("$schema", "decode_error", err.Error()))
		return failure
	}
	return s.Validate(instance)
}

// ValidateMap validates a map[string]any instance directly, bypassing the
// byte-decode step ValidateJSON performs.
func (s *Schema) ValidateMap(data map[string]interface{}) *EvaluationResult {
	return s.Validate(data)
}

// ValidateStruct validates an arbitrary Go value (typically a struct) by
// round-tripping it through the compiler's JSON codec into the map/slice
// shape the evaluator operates on.
func (s *Schema) ValidateStruct(data interface{}) *EvaluationResult {
	instance, _, err := s.convertSource(data)
	if err != nil {
		failure := NewEvaluationResult(s)
		failure.SetInvalid()
		failure.AddError(NewEvaluationError("$schema", "decode_error", err.Error()))
		return failure
	}
	return s.Validate(instance)
}

// evaluateSafely wraps evaluate with the panic/recover boundary that turns a
// structuralAbort into a normal Go error. It is the only place allowed to
// call recover for this purpose; every recursive call goes through the bare
// evaluate below so the abort can unwind arbitrarily many frames.
func (s *Schema) evaluateSafely(instance interface{}, dynamicScope *DynamicScope) (result *EvaluationResult, evaluatedProps map[string]bool, evaluatedItems map[int]bool, err error) {
	defer recoverAbort(&err)
	result, evaluatedProps, evaluatedItems = s.evaluate(instance, dynamicScope)
	return
}

func (s *Schema) evaluate(instance interface{}, dynamicScope *DynamicScope) (*EvaluationResult, map[string]bool, map[int]bool) {
	frameKey, cyclic := dynamicScope.enterFrame(s, instance)
	if cyclic {
		abort(&ReferenceCycleError{
			SchemaURI:        s.GetSchemaURI(),
			InstanceLocation: instanceLocationHint(NewEvaluationResult(s)),
		})
	}
	defer dynamicScope.exitFrame(frameKey)

	dynamicScope.Push(s)
	defer dynamicScope.Pop()

	result := NewEvaluationResult(s)
	dialect := dynamicScope.dialectOf()

	evaluatedProps := make(map[string]bool)
	evaluatedItems := make(map[int]bool)

	// shortCircuit implements 4.5 step 6: once a keyword has made this
	// result invalid and nothing left to run depends on the annotations a
	// remaining keyword would still contribute, stop dispatching further
	// keywords for this schema. applyOptimizations gates this to flag
	// output only, so basic/detailed/verbose callers always see the full
	// result tree.
	shortCircuit := func() bool {
		return !result.IsValid() && dynamicScope.applyOptimizations(s)
	}

	if s.Boolean != nil {
		// Check if the schema is a boolean
		if err := s.evaluateBoolean(instance, evaluatedProps, evaluatedItems); err != nil {
			//nolint:errcheck
			result.AddError(err)
		}
	} else {
		// A $schema on a non-root subschema is advisory only (see the open
		// question in the design notes): it never changes the active
		// vocabulary filter mid-document, only the root's does.
		if s.Schema != "" && s.parent == nil {
			if d, ok := LookupDialect(s.Schema); ok {
				dialect = d
				dynamicScope.setDialect(d)
			}
		}

		if len(s.Vocabulary) > 0 {
			s.checkRequiredVocabularies(dynamicScope)
		}

		// Compile patterns for PatternProperties if not already compiled
		if s.PatternProperties != nil {
			s.compilePatterns()
		}

		// Check if there is a resolved reference and validate against it if present
		if s.Ref != "" && dialect.Supports("$ref") {
			if s.ResolvedRef == nil {
				abort(&ReferenceResolutionError{URI: s.Ref, Reason: "reference did not resolve to a schema"})
			}

			refResult, props, items := s.ResolvedRef.evaluate(instance, dynamicScope)

			if refResult != nil {
				//nolint:errcheck
				result.AddDetail(refResult)

				if !refResult.IsValid() {
					//nolint:errcheck
					result.AddError(
						NewEvaluationError("$ref", "ref_mismatch", "Value does not match the reference schema"),
					)
				}
			}

			mergeStringMaps(evaluatedProps, props)
			mergeIntMaps(evaluatedItems, items)
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		if s.DynamicRef != "" && dialect.Supports("$dynamicRef") {
			if s.ResolvedDynamicRef == nil {
				abort(&ReferenceResolutionError{URI: s.DynamicRef, Reason: "dynamic reference did not resolve to a schema"})
			}

			anchorSchema := s.ResolvedDynamicRef
			_, anchor := splitRef(s.DynamicRef)
			if !isJSONPointer(anchor) {
				dynamicAnchor := s.ResolvedDynamicRef.DynamicAnchor
				if dynamicAnchor != "" {
					if schema := dynamicScope.LookupDynamicAnchor(dynamicAnchor); schema != nil {
						anchorSchema = schema
					}
				}
			}

			dynamicRefResult, props, items := anchorSchema.evaluate(instance, dynamicScope)
			if dynamicRefResult != nil {
				//nolint:errcheck
				result.AddDetail(dynamicRefResult)

				if !dynamicRefResult.IsValid() {
					//nolint:errcheck
					result.AddError(
						NewEvaluationError("$dynamicRef", "dynamic_ref_mismatch", "Value does not match the dynamic reference schema"),
					)
				}
			}

			mergeStringMaps(evaluatedProps, props)
			mergeIntMaps(evaluatedItems, items)
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		if s.RecursiveRef != "" && dialect.Supports("$recursiveRef") {
			target := s.ResolvedRecursiveRef
			if anchored := dynamicScope.LookupRecursiveAnchor(); anchored != nil {
				target = anchored
			}
			if target == nil {
				abort(&ReferenceResolutionError{URI: s.RecursiveRef, Reason: "recursive reference did not resolve to a schema"})
			}

			recursiveRefResult, props, items := target.evaluate(instance, dynamicScope)
			if recursiveRefResult != nil {
				//nolint:errcheck
				result.AddDetail(recursiveRefResult)

				if !recursiveRefResult.IsValid() {
					//nolint:errcheck
					result.AddError(
						NewEvaluationError("$recursiveRef", "recursive_ref_mismatch", "Value does not match the recursive reference schema"),
					)
				}
			}

			mergeStringMaps(evaluatedProps, props)
			mergeIntMaps(evaluatedItems, items)
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		// Validation keywords for any instance type
		if s.Type != nil && dialect.Supports("type") {
			if err := evaluateType(s, instance); err != nil {
				//nolint:errcheck
				result.AddError(err)
			}
		}

		if s.Enum != nil && dialect.Supports("enum") {
			if err := evaluateEnum(s, instance); err != nil {
				//nolint:errcheck
				result.AddError(err)
			}
		}

		if s.Const != nil && dialect.Supports("const") {
			if err := evaluateConst(s, instance); err != nil {
				//nolint:errcheck
				result.AddError(err)
			}
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		// Validation keywords for applying subschemas with logical operations
		if s.AllOf != nil && dialect.Supports("allOf") {
			allOfResults, allOfError := evaluateAllOf(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
			for _, allOfResult := range allOfResults {
				//nolint:errcheck
				result.AddDetail(allOfResult)
			}
			if allOfError != nil {
				//nolint:errcheck
				result.AddError(allOfError)
			}
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		if s.AnyOf != nil && dialect.Supports("anyOf") {
			anyOfResults, anyOfError := evaluateAnyOf(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
			for _, anyOfResult := range anyOfResults {
				//nolint:errcheck
				result.AddDetail(anyOfResult)
			}
			if anyOfError != nil {
				//nolint:errcheck
				result.AddError(anyOfError)
			}
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		if s.OneOf != nil && dialect.Supports("oneOf") {
			oneOfResults, oneOfError := evaluateOneOf(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
			for _, oneOfResult := range oneOfResults {
				//nolint:errcheck
				result.AddDetail(oneOfResult)
			}
			if oneOfError != nil {
				//nolint:errcheck
				result.AddError(oneOfError)
			}
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		if s.Not != nil && dialect.Supports("not") {
			notResult, notError := evaluateNot(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
			if notResult != nil {
				//nolint:errcheck
				result.AddDetail(notResult)
			}
			if notError != nil {
				//nolint:errcheck
				result.AddError(notError)
			}
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		// Validation keywords for applying subschemas with conditional logic
		if (s.If != nil || s.Then != nil || s.Else != nil) && dialect.Supports("if") {
			conditionalResults, conditionalError := evaluateConditional(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
			for _, conditionalResult := range conditionalResults {
				//nolint:errcheck
				result.AddDetail(conditionalResult)
			}
			if conditionalError != nil {
				//nolint:errcheck
				result.AddError(conditionalError)
			}
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		// Validation keywords for applying subschemas to arrays
		if len(s.PrefixItems) > 0 ||
			s.Items != nil ||
			s.Contains != nil ||
			s.MaxContains != nil ||
			s.MinContains != nil ||
			s.MaxItems != nil ||
			s.MinItems != nil ||
			s.UniqueItems != nil {
			arrayResults, arrayErrors := evaluateArray(s, instance, evaluatedProps, evaluatedItems, dynamicScope, dialect)
			for _, arrayResult := range arrayResults {
				//nolint:errcheck
				result.AddDetail(arrayResult)
			}
			for _, arrayError := range arrayErrors {
				//nolint:errcheck
				result.AddError(arrayError)
			}
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		// Validation Keywords for Numeric Instances (number and integer)
		if s.MultipleOf != nil || s.Maximum != nil || s.ExclusiveMaximum != nil || s.Minimum != nil || s.ExclusiveMinimum != nil {
			numericErrors := evaluateNumeric(s, instance)
			for _, numericError := range numericErrors {
				//nolint:errcheck
				result.AddError(numericError)
			}
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		// Validation Keywords for Strings
		if s.MaxLength != nil || s.MinLength != nil || s.Pattern != nil {
			stringErrors := evaluateString(s, instance)
			for _, stringError := range stringErrors {
				//nolint:errcheck
				result.AddError(stringError)
			}
		}

		if s.Format != nil {
			formatError := evaluateFormat(s, instance, dynamicScope)
			if formatError != nil {
				//nolint:errcheck
				result.AddError(formatError)
			}
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		// Validation Keywords for Objects
		if s.Properties != nil ||
			s.PatternProperties != nil ||
			s.AdditionalProperties != nil ||
			s.PropertyNames != nil ||
			s.MaxProperties != nil ||
			s.MinProperties != nil ||
			len(s.Required) > 0 ||
			len(s.DependentRequired) > 0 {
			objectResults, objectErrors := evaluateObject(s, instance, evaluatedProps, evaluatedItems, dynamicScope, dialect)
			for _, objectResult := range objectResults {
				//nolint:errcheck
				result.AddDetail(objectResult)
			}
			for _, objectError := range objectErrors {
				//nolint:errcheck
				result.AddError(objectError)
			}
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		// Validation dependentSchemas
		if s.DependentSchemas != nil && dialect.Supports("dependentSchemas") {
			dependentSchemasResults, dependentSchemasError := evaluateDependentSchemas(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
			for _, dependentSchemasResult := range dependentSchemasResults {
				//nolint:errcheck
				result.AddDetail(dependentSchemasResult)
			}
			if dependentSchemasError != nil {
				//nolint:errcheck
				result.AddError(dependentSchemasError)
			}
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		// Validation unevaluatedProperties
		if s.UnevaluatedProperties != nil && dialect.Supports("unevaluatedProperties") {
			unevaluatedPropertiesResults, unevaluatedPropertiesError := evaluateUnevaluatedProperties(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
			for _, unevaluatedPropertiesResult := range unevaluatedPropertiesResults {
				//nolint:errcheck
				result.AddDetail(unevaluatedPropertiesResult)
			}
			if unevaluatedPropertiesError != nil {
				//nolint:errcheck
				result.AddError(unevaluatedPropertiesError)
			}
		}

		// Validation UnevaluatedItems
		if s.UnevaluatedItems != nil && dialect.Supports("unevaluatedItems") {
			unevaluatedItemsResults, unevaluatedItemsError := evaluateUnevaluatedItems(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
			for _, unevaluatedItemsResult := range unevaluatedItemsResults {
				//nolint:errcheck
				result.AddDetail(unevaluatedItemsResult)
			}
			if unevaluatedItemsError != nil {
				//nolint:errcheck
				result.AddError(unevaluatedItemsError)
			}
		}

		if shortCircuit() {
			return result, evaluatedProps, evaluatedItems
		}

		// Validation Keywords for String-Encoded Data
		if (s.ContentEncoding != nil || s.ContentMediaType != nil || s.ContentSchema != nil) && dialect.Supports("contentEncoding") {
			contentResult, contentError := evaluateContent(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
			if contentError != nil {
				//nolint:errcheck
				result.AddDetail(contentResult)
			}
			if contentError != nil {
				//nolint:errcheck
				result.AddError(contentError)
			}
		}
	}

	return result, evaluatedProps, evaluatedItems
}

func (s *Schema) evaluateBoolean(instance interface{}, evaluatedProps map[string]bool, evaluatedItems map[int]bool) *EvaluationError {
	if s.Boolean == nil {
		return nil
	}

	if *s.Boolean {
		switch v := instance.(type) {
		case map[string]interface{}:
			for key := range v {
				evaluatedProps[key] = true
			}
		case []interface{}:
			for index := range v {
				evaluatedItems[index] = true
			}
		}
		return nil // No error, validation passes as the schema is true
	} else {
		return NewEvaluationError("schema", "false_schema_mismatch", "No values are allowed because the schema is set to 'false'")
	}
}

// evaluateObject groups the validation of all object-specific keywords.
func evaluateObject(schema *Schema, data interface{}, evaluatedProps map[string]bool, evaluatedItems map[int]bool, dynamicScope *DynamicScope, dialect *Dialect) ([]*EvaluationResult, []*EvaluationError) {
	object, ok := data.(map[string]interface{})
	if !ok {
		// If data is not an object, then skip the object-specific validations.
		return nil, nil
	}

	results := []*EvaluationResult{}
	errors := []*EvaluationError{}

	// Validation Keywords for applying subschemas to Objects
	if schema.Properties != nil && dialect.Supports("properties") {
		propertiesResults, propertiesError := evaluateProperties(schema, object, evaluatedProps, evaluatedItems, dynamicScope)

		if propertiesResults != nil {
			results = append(results, propertiesResults...)
		}
		if propertiesError != nil {
			errors = append(errors, propertiesError)
		}
	}

	if schema.PatternProperties != nil && dialect.Supports("patternProperties") {
		patternPropertiesResults, patternPropertiesError := evaluatePatternProperties(schema, object, evaluatedProps, evaluatedItems, dynamicScope)

		if patternPropertiesResults != nil {
			results = append(results, patternPropertiesResults...)
		}
		if patternPropertiesError != nil {
			errors = append(errors, patternPropertiesError)
		}
	}

	if schema.AdditionalProperties != nil && dialect.Supports("additionalProperties") {
		additionalPropertiesResults, additionalPropertiesError := evaluateAdditionalProperties(schema, object, evaluatedProps, evaluatedItems, dynamicScope)

		if additionalPropertiesResults != nil {
			results = append(results, additionalPropertiesResults...)
		}
		if additionalPropertiesError != nil {
			errors = append(errors, additionalPropertiesError)
		}
	}

	if schema.PropertyNames != nil && dialect.Supports("propertyNames") {
		propertyNamesResults, propertyNamesError := evaluatePropertyNames(schema, object, evaluatedProps, evaluatedItems, dynamicScope)

		if propertyNamesResults != nil {
			results = append(results, propertyNamesResults...)
		}
		if propertyNamesError != nil {
			errors = append(errors, propertyNamesError)
		}
	}

	// Validation Keywords for Objects
	if schema.MaxProperties != nil {
		if err := evaluateMaxProperties(schema, object); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.MinProperties != nil {
		if err := evaluateMinProperties(schema, object); err != nil {
			errors = append(errors, err)
		}
	}

	if len(schema.Required) > 0 {
		requiredError := evaluateRequired(schema, object)
		if requiredError != nil {
			errors = append(errors, requiredError)
		}
	}

	if len(schema.DependentRequired) > 0 {
		if err := evaluateDependentRequired(schema, object); err != nil {
			errors = append(errors, err)
		}
	}

	return results, errors
}

// evaluateNumeric groups the validation of all numeric-specific keywords.
func evaluateNumeric(schema *Schema, data interface{}) []*EvaluationError {
	dataType := getDataType(data)

	if dataType != "number" && dataType != "integer" {
		// If data is not a number, then skip the numeric-specific validations.
		return nil
	}

	errors := []*EvaluationError{}

	value := NewRat(data)
	if value == nil {
		// If the type conversion fails, the data might not be a number.
		errors = append(errors, NewEvaluationError("type", "invalid_numberic", "Value is {received} but should be numeric", map[string]interface{}{
			"received": dataType,
		}))

		return errors
	}

	// Validation Keywords for Numeric Instances (number and integer)
	if schema.MultipleOf != nil {
		if err := evaluateMultipleOf(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.Maximum != nil {
		if err := evaluateMaximum(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.ExclusiveMaximum != nil {
		if err := evaluateExclusiveMaximum(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.Minimum != nil {
		if err := evaluateMinimum(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.ExclusiveMinimum != nil {
		if err := evaluateExclusiveMinimum(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// evaluateString groups the validation of all string-specific keywords.
func evaluateString(schema *Schema, data interface{}) []*EvaluationError {
	value, ok := data.(string)
	if !ok {
		// If data is not a string, then skip the string-specific validations.
		return nil
	}

	errors := []*EvaluationError{}

	// Validation Keywords for Strings
	if schema.MaxLength != nil {
		if err := evaluateMaxLength(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.MinLength != nil {
		if err := evaluateMinLength(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.Pattern != nil {
		if err := evaluatePattern(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// evaluateArray groups the validation of all array-specific keywords.
func evaluateArray(schema *Schema, data interface{}, evaluatedProps map[string]bool, evaluatedItems map[int]bool, dynamicScope *DynamicScope, dialect *Dialect) ([]*EvaluationResult, []*EvaluationError) {
	items, ok := data.([]interface{})
	if !ok {
		// If data is not an array, then skip the array-specific validations.
		return nil, nil
	}

	results := []*EvaluationResult{}
	errors := []*EvaluationError{}

	// Validation keywords for applying subschemas to arrays
	if len(schema.PrefixItems) > 0 && dialect.Supports("prefixItems") {
		prefixItemsResults, prefixItemsError := evaluatePrefixItems(schema, items, evaluatedProps, evaluatedItems, dynamicScope)

		if prefixItemsResults != nil {
			results = append(results, prefixItemsResults...)
		}
		if prefixItemsError != nil {
			errors = append(errors, prefixItemsError)
		}
	}

	if schema.Items != nil && dialect.Supports("items") {
		itemsResults, itemsError := evaluateItems(schema, items, evaluatedProps, evaluatedItems, dynamicScope)

		if itemsResults != nil {
			results = append(results, itemsResults...)
		}
		if itemsError != nil {
			errors = append(errors, itemsError)
		}
	}

	if (schema.Contains != nil || schema.MaxContains != nil && schema.MinContains != nil) && dialect.Supports("contains") {
		containsResults, containsError := evaluateContains(schema, items, evaluatedProps, evaluatedItems, dynamicScope)
		if containsResults != nil {
			results = append(results, containsResults...)
		}
		if containsError != nil {
			errors = append(errors, containsError)
		}
	}

	// Validation Keywords for Arrays
	if schema.MaxItems != nil {
		maxItemsError := evaluateMaxItems(schema, items)
		if maxItemsError != nil {
			errors = append(errors, maxItemsError)
		}
	}

	if schema.MinItems != nil {
		minItemsError := evaluateMinItems(schema, items)
		if minItemsError != nil {
			errors = append(errors, minItemsError)
		}
	}

	if schema.UniqueItems != nil && *schema.UniqueItems { // Check if UniqueItems is not nil before dereferencing
		uniqueItemsError := evaluateUniqueItems(schema, items)
		if uniqueItemsError != nil {
			errors = append(errors, uniqueItemsError)
		}
	}

	return results, errors
}
