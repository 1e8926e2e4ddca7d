// SPDX-License-Identifier: MIT

package codec

import (
	"regexp"
	"strings"
)

// Delimiter separates fields within a line.
type Delimiter string

const (
	// Tab is used for every serialized output (spreadsheet copy/paste format).
	Tab Delimiter = "\t"
	// Comma is the fallback when no tab is present.
	Comma Delimiter = ","
)

// DetectDelimiter picks Tab when s contains a tab character, Comma otherwise.
// The decision is made once and applies to the whole input.
func DetectDelimiter(s string) Delimiter {
	if strings.Contains(s, string(Tab)) {
		return Tab
	}

	return Comma
}

// Split breaks line into raw (untrimmed) fields.
func (d Delimiter) Split(line string) []string {
	return strings.Split(line, string(d))
}

var lineBreak = regexp.MustCompile(`\r?\n`)

// splitLines splits on "\n" or "\r\n".
func splitLines(text string) []string {
	return lineBreak.Split(text, -1)
}

// nonBlankLines returns lines whose trimmed content is not empty, preserving
// their original (untrimmed) text so leading empty fields are not lost.
func nonBlankLines(text string) []string {
	all := splitLines(text)
	out := all[:0]
	for _, l := range all {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}

	return out
}
