// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package artifact extracts fenced code blocks from reply text.
package artifact

import (
	"regexp"
	"strings"
)

// =============================================================================
// EXTRACTION
// =============================================================================

// fencedBlock matches the first complete triple-backtick block: an opening
// fence with an optional language tag, a newline, the enclosed text
// (non-greedy), and a closing fence.
var fencedBlock = regexp.MustCompile("(?s)```\\w*\\n(.*?)```")

// Extract returns the first complete fenced code block in text, with
// surrounding whitespace trimmed. ok is false when no complete block exists;
// an unterminated fence does not match.
func Extract(text string) (code string, ok bool) {
	m := fencedBlock.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// HasFenced reports whether text contains a complete fenced code block.
func HasFenced(text string) bool {
	return fencedBlock.MatchString(text)
}

// =============================================================================
// LANGUAGE CLASSIFICATION
// =============================================================================

// Language names used for presentation (syntax highlighting).
const (
	LangHTML       = "html"
	LangPython     = "python"
	LangJavaScript = "javascript"
	LangCPP        = "cpp"
)

// classifierRule is one entry in the ordered classification list.
type classifierRule struct {
	language string
	pattern  *regexp.Regexp
}

// classifierRules is evaluated in order; the first match wins. The order is
// significant: python's `import` check must run before the javascript token
// check, and the markup check must run first of all.
var classifierRules = []classifierRule{
	{LangHTML, regexp.MustCompile(`(?i)^\s*</?[a-z]`)},
	{LangPython, regexp.MustCompile(`\bdef |import |print\(`)},
	{LangJavaScript, regexp.MustCompile(`function |const |let |var `)},
	{LangCPP, regexp.MustCompile(`^\s*#include |int main\(`)},
}

// Classify returns the presentation language for a code artifact using the
// ordered heuristic rules. Unrecognized code falls back to javascript.
func Classify(code string) string {
	for _, rule := range classifierRules {
		if rule.pattern.MatchString(code) {
			return rule.language
		}
	}
	return LangJavaScript
}
