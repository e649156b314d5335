// Package scanner provides the low-level text primitives shared by the
// lint rules: line-number resolution, same-line comment detection and
// balanced-delimiter span extraction. The primitives treat the source as
// plain text; no Swift parsing happens here.
package scanner

import "strings"

// LineNumber returns the 1-based line number of the given character
// offset: the count of newline characters strictly before the offset,
// plus one. Offsets past the end of the text resolve against the full text.
func LineNumber(code string, offset int) int {
	if offset > len(code) {
		offset = len(code)
	}
	if offset < 0 {
		offset = 0
	}
	return strings.Count(code[:offset], "\n") + 1
}

// InLineComment reports whether a line-comment marker ("//") appears on
// the same physical line as offset, earlier than offset. A match at such
// an offset sits inside a comment and must be suppressed.
//
// This is a substring-index comparison, not a tokenizer: a "//" inside a
// string literal earlier on the line still counts as a comment start.
// That imprecision is intentional and must be kept.
func InLineComment(code string, offset int) bool {
	if offset < 0 || offset > len(code) {
		return false
	}
	lineStart := strings.LastIndex(code[:offset], "\n") + 1
	lineEnd := strings.Index(code[offset:], "\n")
	var line string
	if lineEnd == -1 {
		line = code[lineStart:]
	} else {
		line = code[lineStart : offset+lineEnd]
	}
	idx := strings.Index(line, "//")
	return idx >= 0 && idx < offset-lineStart
}

// BlockSpan locates the extent of the first brace-delimited block at or
// after start. It scans forward keeping a depth counter: '{' increments,
// '}' decrements. The returned offset is that of the delimiter which
// brings the depth back to zero after it has gone positive.
//
// If the text ends before the block closes, the span degrades to
// end-of-text and len(code) is returned; the scan never fails, even on
// malformed input.
func BlockSpan(code string, start int) int {
	if start < 0 {
		start = 0
	}
	depth := 0
	opened := false
	for i := start; i < len(code); i++ {
		switch code[i] {
		case '{':
			depth++
			opened = true
		case '}':
			depth--
			if opened && depth == 0 {
				return i
			}
		}
	}
	return len(code)
}
