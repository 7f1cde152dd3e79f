package ai

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON means the model's reply contained no parseable JSON object.
var ErrNoJSON = errors.New("no JSON object found in model response")

// fencePattern strips markdown code-fence markers the model sometimes wraps
// JSON replies in, despite being told not to.
var fencePattern = regexp.MustCompile("```json\\s*|```\\s*")

// ExtractJSON pulls the first JSON object out of a model reply.
//
// Strategy, in order:
//  1. strip code fences and try the whole remaining text
//  2. try the outermost brace-delimited substring
//
// Returns the raw JSON document so callers can pick fields out of it.
func ExtractJSON(text string) (string, error) {
	clean := strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))

	if json.Valid([]byte(clean)) {
		return clean, nil
	}

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		candidate := clean[start : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}

	return "", ErrNoJSON
}
