// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "sort"

// ModelDescriptor describes one supported completion model. The catalog is
// consulted only for console messaging and flag validation; it has no
// behavioral effect on requests beyond the model identifier itself.
type ModelDescriptor struct {
	// Name is the model identifier sent to the API.
	Name string

	// Context is a human-readable context window label (e.g. "128k tokens").
	Context string

	// Description is a one-line summary shown by `exam-engine models`.
	Description string
}

// DefaultModel is the model used when no --model flag is given.
const DefaultModel = "gpt-5"

// ModelCatalog maps supported model identifiers to their descriptors.
// Treated as immutable.
var ModelCatalog = map[string]ModelDescriptor{
	"gpt-5": {
		Name:        "gpt-5",
		Context:     "200k+ tokens",
		Description: "Latest model with enhanced reasoning and multimodal processing",
	},
	"gpt-4o": {
		Name:        "gpt-4o",
		Context:     "128k tokens",
		Description: "Currently recommended, balanced performance and cost",
	},
	"gpt-4-turbo": {
		Name:        "gpt-4-turbo",
		Context:     "128k tokens",
		Description: "High-performance model",
	},
	"gpt-4o-mini": {
		Name:        "gpt-4o-mini",
		Context:     "128k tokens",
		Description: "More economical option",
	},
}

// SupportedModels returns the catalog keys in sorted order.
func SupportedModels() []string {
	names := make([]string, 0, len(ModelCatalog))
	for name := range ModelCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
