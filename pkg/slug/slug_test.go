// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bookstore/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Dế Mèn Phiêu Lưu Ký", "de-men-phieu-luu-ky"},
		{"Nguyễn Nhật Ánh", "nguyen-nhat-anh"},
		{"Đoàn Giỏi", "doan-gioi"},
		{"  The Pragmatic   Programmer! ", "the-pragmatic-programmer"},
		{"C++ & Go: 2nd ed.", "c-go-2nd-ed"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.From(tc.input))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, slug.Valid("kim-dong"))
	assert.True(t, slug.Valid("nxb-tre-2024"))
	assert.False(t, slug.Valid("Kim-Dong"))
	assert.False(t, slug.Valid("kim--dong"))
	assert.False(t, slug.Valid("-kim"))
	assert.False(t, slug.Valid(""))
}
