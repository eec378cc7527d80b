// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package artifact

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			name: "bare fence",
			in:   "```\nprint(1)\n```",
			want: "print(1)",
			ok:   true,
		},
		{
			name: "language tag",
			in:   "```python\nprint(1)\n```",
			want: "print(1)",
			ok:   true,
		},
		{
			name: "surrounding prose",
			in:   "Here you go:\n```js\nconst x = 1;\n```\nHope that helps.",
			want: "const x = 1;",
			ok:   true,
		},
		{
			name: "first of several blocks wins",
			in:   "```py\nfirst()\n```\nand\n```py\nsecond()\n```",
			want: "first()",
			ok:   true,
		},
		{
			name: "multiline body",
			in:   "```go\nfunc main() {\n\tfmt.Println(1)\n}\n```",
			want: "func main() {\n\tfmt.Println(1)\n}",
			ok:   true,
		},
		{
			name: "no fence",
			in:   "just prose with `inline code` only",
			ok:   false,
		},
		{
			name: "unterminated fence",
			in:   "```python\nprint(1)",
			ok:   false,
		},
		{
			name: "empty input",
			in:   "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("code = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	in := "```python\nprint(1)\n```"
	first, _ := Extract(in)
	second, _ := Extract(in)
	if first != second {
		t.Errorf("repeated extraction differed: %q vs %q", first, second)
	}
}

func TestHasFenced(t *testing.T) {
	if !HasFenced("```\nx\n```") {
		t.Error("fenced block not detected")
	}
	if HasFenced("plain text") {
		t.Error("plain text detected as fenced")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"html tag", "<div>hello</div>", LangHTML},
		{"html with leading space", "  <html>", LangHTML},
		{"closing tag first", "</p>", LangHTML},
		{"python def", "def main():\n    pass", LangPython},
		{"python import", "import os", LangPython},
		{"python print", "print(1)", LangPython},
		{"js function", "function add(a, b) { return a + b; }", LangJavaScript},
		{"js const", "const x = 1;", LangJavaScript},
		{"js let", "let y = 2;", LangJavaScript},
		{"cpp include", "#include <stdio.h>\nint main() {}", LangCPP},
		{"cpp main", "int main() { return 0; }", LangCPP},
		{"fallback", "SELECT * FROM users;", LangJavaScript},
		{"empty", "", LangJavaScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.code); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestClassifyOrderHTMLBeforePython(t *testing.T) {
	// A snippet matching both html and python rules classifies as html
	// because rules run in order.
	code := "<script>\nimport thing\n</script>"
	if got := Classify(code); got != LangHTML {
		t.Errorf("Classify = %q, want html to win by rule order", got)
	}
}
