// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	body = strings.TrimPrefix(body, "json")

	// A short bare word on the opening line is a language identifier, not content
	if nl := strings.Index(body, "\n"); nl >= 0 {
		opener := body[:nl]
		if opener != "" && len(opener) < 20 && !strings.ContainsAny(opener, " {") {
			body = body[nl+1:]
		}
	}

	if closing := strings.LastIndex(body, "```"); closing >= 0 {
		body = body[:closing]
	}
	return strings.TrimSpace(body)
}
