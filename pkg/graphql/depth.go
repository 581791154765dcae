package graphql

import (
	"fmt"
	"strings"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
)

// DefaultMaxDepth bounds collaborator expansion such as
// actor { collaborators { actor { collaborators { ... } } } }.
const DefaultMaxDepth = 6

// calculateQueryDepth calculates the maximum depth of a GraphQL query
func calculateQueryDepth(document *ast.Document) int {
	fragments := make(map[string]*ast.FragmentDefinition)
	for _, definition := range document.Definitions {
		if frag, ok := definition.(*ast.FragmentDefinition); ok {
			fragments[frag.Name.Value] = frag
		}
	}

	maxDepth := 0
	for _, definition := range document.Definitions {
		if def, ok := definition.(*ast.OperationDefinition); ok {
			depth := calculateSelectionSetDepth(def.SelectionSet, 0, fragments, map[string]bool{})
			maxDepth = max(maxDepth, depth)
		}
	}

	return maxDepth
}

// calculateSelectionSetDepth recursively calculates the depth of a selection
// set, counting only fields that carry their own selection set.
func calculateSelectionSetDepth(selectionSet *ast.SelectionSet, currentDepth int, fragments map[string]*ast.FragmentDefinition, seen map[string]bool) int {
	if selectionSet == nil {
		return currentDepth
	}

	maxDepth := currentDepth

	for _, selection := range selectionSet.Selections {
		switch sel := selection.(type) {
		case *ast.Field:
			// Skip introspection fields
			if strings.HasPrefix(sel.Name.Value, "__") {
				continue
			}
			if sel.SelectionSet != nil {
				maxDepth = max(maxDepth, calculateSelectionSetDepth(sel.SelectionSet, currentDepth+1, fragments, seen))
			}

		case *ast.InlineFragment:
			maxDepth = max(maxDepth, calculateSelectionSetDepth(sel.SelectionSet, currentDepth, fragments, seen))

		case *ast.FragmentSpread:
			name := sel.Name.Value
			frag, ok := fragments[name]
			if !ok || seen[name] {
				continue
			}
			seen[name] = true
			maxDepth = max(maxDepth, calculateSelectionSetDepth(frag.SelectionSet, currentDepth, fragments, seen))
			delete(seen, name)
		}
	}

	return maxDepth
}

// ValidateQueryDepth validates a query against the depth limit
func ValidateQueryDepth(query string, maxDepth int) error {
	document, err := parser.Parse(parser.ParseParams{
		Source: query,
	})
	if err != nil {
		return fmt.Errorf("failed to parse query: %w", err)
	}

	queryDepth := calculateQueryDepth(document)
	if queryDepth > maxDepth {
		return fmt.Errorf("query depth %d exceeds maximum allowed depth %d", queryDepth, maxDepth)
	}

	return nil
}
