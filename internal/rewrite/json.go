package rewrite

import (
	"encoding/json"
	"strings"
)

// ParseJSONResponse extracts and parses JSON from an LLM response.
// Handles responses wrapped in markdown code fences.
func ParseJSONResponse(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)

	// Strip markdown code fences if present.
	if strings.HasPrefix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) > 2 {
			// Remove first line (```json or ```) and find closing fence.
			end := len(lines)
			for i := len(lines) - 1; i > 0; i-- {
				if strings.TrimSpace(lines[i]) == "```" {
					end = i
					break
				}
			}
			text = strings.Join(lines[1:end], "\n")
		}
	}

	// Find JSON object boundaries.
	start := strings.Index(text, "{")
	endIdx := strings.LastIndex(text, "}")
	if start >= 0 && endIdx > start {
		text = text[start : endIdx+1]
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, err
	}
	return result, nil
}
