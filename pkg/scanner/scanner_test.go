package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineNumber(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		offset   int
		expected int
	}{
		{"start_of_text", "a\nb\nc", 0, 1},
		{"second_line", "a\nb\nc", 2, 2},
		{"third_line", "a\nb\nc", 4, 3},
		{"offset_on_newline", "a\nb", 1, 1},
		{"empty_text", "", 0, 1},
		{"offset_past_end", "a\nb", 100, 2},
		{"negative_offset", "a\nb", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LineNumber(tt.code, tt.offset))
		})
	}
}

func TestInLineComment(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		offset   int
		expected bool
	}{
		{"marker_before_offset", "// foo!", 6, true},
		{"marker_after_offset", "foo! // x", 3, false},
		{"no_marker", "foo!", 3, false},
		{"marker_on_previous_line", "// x\nfoo!", 8, false},
		{"marker_at_offset", "x //", 2, false},
		{"marker_in_string_still_counts", `let s = "//" + x!`, 16, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InLineComment(tt.code, tt.offset))
		})
	}
}

func TestBlockSpan(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		start    int
		expected int
	}{
		{"simple_block", "Button(a) { x }", 0, 14},
		{"nested_block", "{ a { b } c }", 0, 12},
		{"unbalanced_extends_to_end", "{ a { b }", 0, 9},
		{"no_braces_extends_to_end", "abc", 0, 3},
		{"starts_mid_text", "x { a } y { b }", 8, 14},
		{"empty_text", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BlockSpan(tt.code, tt.start))
		})
	}
}
