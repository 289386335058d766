package jsonschema

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// concurrentItemsThreshold is the array length above which evaluateItems
// fans out across goroutines instead of walking the slice in order (5).
// Below it the overhead of forking a scope per branch outweighs any gain.
const concurrentItemsThreshold = 32

// EvaluateItems checks if the data's array items conform to the subschema or boolean condition specified in the 'items' attribute of the schema.
// According to the JSON Schema Draft 2020-12:
//   - The value of "items" MUST be either a valid JSON Schema or a boolean.
//   - If "items" is a Schema, each element of the instance array must conform to this subschema.
//   - If "items" is boolean and is true, any array elements are valid.
//   - If "items" is boolean and is false, no array elements are valid unless the array is empty.
//
// This method ensures that array elements conform to the constraints defined in the items attribute.
// If any array element does not conform, it returns a EvaluationError detailing the issue.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-items
func evaluateItems(schema *Schema, array []interface{}, _ map[string]bool, evaluatedItems map[int]bool, dynamicScope *DynamicScope) ([]*EvaluationResult, *EvaluationError) {
	if schema.Items == nil {
		return nil, nil // // No 'items' constraints to validate against
	}

	invalid_indexs := []string{}
	results := []*EvaluationResult{}

	// Number of prefix items to skip before regular item validation
	startIndex := len(schema.PrefixItems)

	// Check if the general 'items' schema is available and proceed with validation if it's not explicitly false
	if schema.Items != nil {
		var itemResults []*EvaluationResult
		if shouldEvaluateItemsConcurrently(len(array) - startIndex) {
			itemResults = evaluateItemsConcurrently(schema, schema.Items, array, startIndex, evaluatedItems, dynamicScope)
		} else {
			itemResults = evaluateItemsSequentially(schema, schema.Items, array, startIndex, evaluatedItems, dynamicScope)
		}

		for i, result := range itemResults {
			if result == nil {
				continue // cancelled or short-circuited branch: no result node, as if short-circuited sequentially
			}
			index := startIndex + i
			//nolint:errcheck
			result.SetEvaluationPath(fmt.Sprintf("/items/%d", index)).
				SetSchemaLocation(schema.GetSchemaLocation(fmt.Sprintf("/items/%d", index))).
				SetInstanceLocation(fmt.Sprintf("/%d", index))

			if result.IsValid() {
				evaluatedItems[index] = true // Mark the item as evaluated if it passes schema validation.
			} else {
				results = append(results, result)
				invalid_indexs = append(invalid_indexs, strconv.Itoa(index))
			}
		}
	}

	if len(invalid_indexs) == 1 {
		return results, NewEvaluationError("items", "item_mismatch", "Item at index {index} does not match the schema", map[string]interface{}{
			"index": invalid_indexs[0],
		})
	} else if len(invalid_indexs) > 1 {
		return results, NewEvaluationError("items", "items_mismatch", "Items at index {indexs} do not match the schema", map[string]interface{}{
			"indexs": strings.Join(invalid_indexs, ", "),
		})
	}
	return results, nil
}

// shouldEvaluateItemsConcurrently decides whether the array fan-out path (5)
// is worth taking: large enough to amortize per-goroutine scope forking.
// Both flag and non-flag output take this path once the array is large
// enough; evaluateItemsConcurrently carries its own short-circuit and
// cancellation for the flag case (5), so there is no need to fall back to
// the sequential walk just because output is flag-sensitive.
func shouldEvaluateItemsConcurrently(count int) bool {
	return count >= concurrentItemsThreshold
}

// evaluateItemsSequentially is the straight-line walk used for small arrays.
// When the owning schema's output is flag and nothing on it depends on the
// evaluatedItems annotation a remaining item would still contribute (4.4's
// applyOptimizations), it stops at the first failing item instead of
// walking the rest (4.5 step 6): the unvisited slots stay nil in the result
// slice, exactly like a cancelled concurrent branch.
func evaluateItemsSequentially(schema *Schema, itemSchema *Schema, array []interface{}, startIndex int, evaluatedItems map[int]bool, dynamicScope *DynamicScope) []*EvaluationResult {
	results := make([]*EvaluationResult, len(array)-startIndex)
	shortCircuit := dynamicScope.applyOptimizations(schema)
	for i := startIndex; i < len(array); i++ {
		result, _, _ := itemSchema.evaluate(array[i], dynamicScope)
		results[i-startIndex] = result
		if shortCircuit && result != nil && !result.IsValid() {
			break
		}
	}
	return results
}

// evaluateItemsConcurrently fans each array item out to its own goroutine,
// each with a forked scope (own frame stack, shared registry/options), and
// merges results back in deterministic index order regardless of completion
// order (5). Every branch checks the shared cancellation context before it
// begins evaluating its item (cooperative at the subschema boundary, per
// section 5); when the owning schema allows short-circuiting under flag
// output (4.4's applyOptimizations), the first branch to fail cancels the
// context so branches that haven't started yet skip their work entirely,
// leaving their slot nil — no cancelled branch ever produces a result node.
func evaluateItemsConcurrently(schema *Schema, itemSchema *Schema, array []interface{}, startIndex int, evaluatedItems map[int]bool, dynamicScope *DynamicScope) []*EvaluationResult {
	n := len(array) - startIndex
	results := make([]*EvaluationResult, n)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	shortCircuit := dynamicScope.applyOptimizations(schema)

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(itemsConcurrencyLimit)

	for i := startIndex; i < len(array); i++ {
		i := i
		item := array[i]
		branchScope := dynamicScope.Fork()
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil // cancelled before starting: no result node, as if short-circuited sequentially
			}
			result, _, _ := itemSchema.evaluate(item, branchScope)
			results[i-startIndex] = result
			if shortCircuit && result != nil && !result.IsValid() {
				cancel()
			}
			return nil
		})
	}

	//nolint:errcheck
	group.Wait()
	return results
}

// itemsConcurrencyLimit bounds the number of goroutines evaluateItemsConcurrently
// keeps in flight at once, so a single huge array cannot spawn unbounded work.
const itemsConcurrencyLimit = 16
