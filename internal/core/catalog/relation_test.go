// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeIDs(t *testing.T) {
	tests := []struct {
		name      string
		raw       any
		want      []string
		malformed bool
	}{
		{name: "nil", raw: nil, want: []string{}},
		{name: "nil string slice", raw: []string(nil), want: []string{}},
		{name: "string slice", raw: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "any slice", raw: []any{"x", 2.0, json.Number("7")}, want: []string{"x", "2", "7"}},
		{name: "any slice with nil and nested", raw: []any{"a1", nil, []any{"a2"}, map[string]any{"id": "a3"}, "a4"}, want: []string{"a1", "a4"}, malformed: true},
		{name: "empty json array", raw: "[]", want: []string{}},
		{name: "json array text", raw: `["a1","a2"]`, want: []string{"a1", "a2"}},
		{name: "json array bytes", raw: []byte(` ["a1"] `), want: []string{"a1"}},
		{name: "raw message", raw: json.RawMessage(`["t1"]`), want: []string{"t1"}},
		{name: "numeric ids", raw: `[12, 34]`, want: []string{"12", "34"}},
		{name: "double encoded", raw: `"[\"a1\",\"a2\"]"`, want: []string{"a1", "a2"}},
		{name: "json null", raw: "null", want: []string{}},
		{name: "empty string", raw: "", want: []string{}},
		{name: "blank bytes", raw: []byte("  "), want: []string{}},
		{name: "nil bytes", raw: []byte(nil), want: []string{}},
		{name: "not json", raw: "not json", want: []string{}, malformed: true},
		{name: "json object", raw: `{"a":1}`, want: []string{}, malformed: true},
		{name: "json number", raw: `42`, want: []string{}, malformed: true},
		{name: "trailing data", raw: `["a"] ["b"]`, want: []string{}, malformed: true},
		{name: "triple encoded", raw: `"\"[\\\"a1\\\"]\""`, want: []string{}, malformed: true},
		{name: "mixed elements", raw: `["a1", null, {"id":"a2"}, "a3"]`, want: []string{"a1", "a3"}, malformed: true},
		{name: "unsupported type", raw: 42, want: []string{}, malformed: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var result Decoded
			assert.NotPanics(t, func() { result = DecodeIDs(tc.raw) })

			assert.NotNil(t, result.IDs)
			assert.Equal(t, tc.want, result.IDs)
			assert.Equal(t, !tc.malformed, result.OK())
			if tc.malformed {
				assert.ErrorIs(t, result.Err, ErrMalformedRelation)
			}
		})
	}
}
