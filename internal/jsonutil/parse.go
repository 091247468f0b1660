// Package jsonutil extracts and parses JSON from LLM responses that may be
// wrapped in markdown code fences or embedded in surrounding prose. Providers
// are asked for "only valid JSON, no markdown fences", but formatting drift is
// common enough that every parse goes through this package.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripMarkdownFences removes a ```json ... ``` or ``` ... ``` wrapper from
// text. It returns the content between the fences, or the original text when
// no fence wrapper is found.
func StripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	inner := strings.TrimPrefix(text, "```")
	// Language tag on the opening fence ("json", "JSON") sits before the
	// first newline or directly before the payload.
	if nl := strings.IndexByte(inner, '\n'); nl >= 0 {
		first := strings.TrimSpace(inner[:nl])
		if first == "" || strings.EqualFold(first, "json") {
			inner = inner[nl+1:]
		}
	} else if strings.HasPrefix(strings.ToLower(inner), "json") {
		inner = inner[4:]
	}

	if i := strings.LastIndex(inner, "```"); i >= 0 {
		inner = inner[:i]
	}
	return strings.TrimSpace(inner)
}

// ExtractJSON returns the JSON content (object or array) from text that may
// contain surrounding non-JSON prose. It finds the first { or [ and matches
// it with the last corresponding } or ].
func ExtractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)

	objIdx := strings.Index(text, "{")
	arrIdx := strings.Index(text, "[")

	if objIdx == -1 && arrIdx == -1 {
		return "", fmt.Errorf("no JSON content found")
	}

	var startIdx int
	var endChar string
	if arrIdx == -1 || (objIdx != -1 && objIdx <= arrIdx) {
		startIdx = objIdx
		endChar = "}"
	} else {
		startIdx = arrIdx
		endChar = "]"
	}

	text = text[startIdx:]
	endIdx := strings.LastIndex(text, endChar)
	if endIdx == -1 {
		return "", fmt.Errorf("no closing %s found", endChar)
	}

	return text[:endIdx+1], nil
}

// ParseJSON strips markdown fences from raw LLM response text, extracts the
// JSON content (object or array), and unmarshals it into the provided type T.
//
// The parse order is deliberate: try the fenced payload first, then fall back
// to extracting the first JSON value embedded in prose. Callers that need a
// guaranteed result wrap this in their own fallback (see internal/normalize).
func ParseJSON[T any](raw string) (T, error) {
	text := StripMarkdownFences(raw)
	jsonStr, err := ExtractJSON(text)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w (raw length: %d)", err, len(raw))
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		var zero T
		preview := jsonStr
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return zero, fmt.Errorf("invalid JSON: %w (text: %s)", err, preview)
	}
	return result, nil
}
