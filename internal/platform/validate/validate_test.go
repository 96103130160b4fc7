// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field rule.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "Jane Austen", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("full_name", tt.value)

			if !tt.hasError {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
				return
			}

			ae := apperr.As(v.Err())
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, "full_name", ae.Details[0].Field)
		})
	}
}

/*
TestValidator_Slug checks the slug format rule.
*/
func TestValidator_Slug(t *testing.T) {
	tests := []struct {
		slug    string
		isValid bool
	}{
		{"pride-and-prejudice", true},
		{"1984", true},
		{"Pride", false},
		{"-leading", false},
		{"double--hyphen", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			v := &validate.Validator{}
			v.Slug("slug", tt.slug)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation across rules.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	err := (&validate.Validator{}).
		Required("name", "").
		MaxLen("name", "abcdef", 3).
		Range("rating", 9, 1, 5).
		OneOf("status", "spam", "pending", "approved", "rejected").
		Err()

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 4)
}
