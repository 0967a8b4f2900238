// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// previewLen bounds the response excerpt included in parse diagnostics.
const previewLen = 500

// RawQuestionSet is the normalized response shape with each entry kept
// verbatim. The per-lecture file records exactly what the model returned;
// field-level validation happens at aggregation, not here. The validated
// counterpart of this document is types.QuestionSet.
type RawQuestionSet struct {
	Questions []json.RawMessage `json:"questions"`
}

// ParseQuestionSet parses the raw response text and normalizes it to the
// canonical shape. The model returns either a JSON object or a bare array;
// the leading token is the discriminator:
//
//   - an object with a "questions" key is accepted as-is
//   - a bare array is wrapped as {"questions": [...]}
//   - anything else is malformed
func ParseQuestionSet(raw string) (*RawQuestionSet, error) {
	trimmed := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(trimmed, "{"):
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
			return nil, fmt.Errorf("parsing response JSON (%s): %w", preview(raw), err)
		}
		qRaw, ok := obj["questions"]
		if !ok {
			return nil, fmt.Errorf("response JSON has no questions field (%s)", preview(raw))
		}
		var questions []json.RawMessage
		if err := json.Unmarshal(qRaw, &questions); err != nil {
			return nil, fmt.Errorf("parsing questions array (%s): %w", preview(raw), err)
		}
		return &RawQuestionSet{Questions: questions}, nil

	case strings.HasPrefix(trimmed, "["):
		var questions []json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &questions); err != nil {
			return nil, fmt.Errorf("parsing response JSON (%s): %w", preview(raw), err)
		}
		return &RawQuestionSet{Questions: questions}, nil

	default:
		return nil, fmt.Errorf("response is not JSON (%s)", preview(raw))
	}
}

// preview truncates the response text for diagnostics.
func preview(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= previewLen {
		return s
	}
	return string(runes[:previewLen]) + "..."
}
