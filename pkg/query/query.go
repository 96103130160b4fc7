// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses raw query-string values.
package query

import (
	"strconv"
	"strings"
)

// StringSlice splits a comma-separated value into trimmed, lowercased,
// non-empty parts. An empty input yields nil.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.ToLower(strings.TrimSpace(v))
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// IntD parses val as an int, returning def when val is empty or malformed.
func IntD(val string, def int) int {
	if val == "" {
		return def
	}
	if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
		return n
	}
	return def
}
