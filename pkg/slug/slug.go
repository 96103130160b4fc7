// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// Slugs are the external key for every catalog entity: books, authors,
// translators, categories and publishers ("nguyen-nhat-anh", "kim-dong").
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	hyphenRun = regexp.MustCompile(`-{2,}`)
	valid     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// From converts s into a lowercase ASCII slug.
//
// Accents are stripped after NFD decomposition. Vietnamese đ/Đ has no
// decomposition and is mapped to d explicitly. Every other rune outside
// [a-z0-9] becomes a hyphen, runs of hyphens collapse, and the ends are
// trimmed.
func From(s string) string {
	chain := transform.Chain(norm.NFD, transform.RemoveFunc(isMark), norm.NFC)
	folded, _, err := transform.String(chain, s)
	if err != nil {
		folded = s
	}

	var builder strings.Builder
	builder.Grow(len(folded))

	for _, r := range strings.ToLower(folded) {
		switch {
		case r == 'đ':
			builder.WriteRune('d')
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			builder.WriteRune(r)
		default:
			builder.WriteRune('-')
		}
	}

	result := hyphenRun.ReplaceAllString(builder.String(), "-")
	return strings.Trim(result, "-")
}

// Valid reports whether s is already in canonical slug form.
func Valid(s string) bool {
	return valid.MatchString(s)
}

func isMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
