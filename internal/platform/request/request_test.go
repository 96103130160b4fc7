// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	requestutil "github.com/taibuivan/bookstore/internal/platform/request"
	"github.com/taibuivan/bookstore/internal/platform/validate"
)

func TestList(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/books?author=jane,tom&author=jane&author=%20&translator=", nil)

	assert.Equal(t, []string{"jane", "tom"}, requestutil.List(request, "author"))
	assert.Nil(t, requestutil.List(request, "translator"))
	assert.Nil(t, requestutil.List(request, "category"))
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid", func(t *testing.T) {
		var target payload
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Penguin"}`))
		assert.NoError(t, requestutil.DecodeJSON(httptest.NewRecorder(), request, &target))
		assert.Equal(t, "Penguin", target.Name)
	})

	t.Run("unknown_field", func(t *testing.T) {
		var target payload
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x"}`))
		assert.ErrorIs(t, requestutil.DecodeJSON(httptest.NewRecorder(), request, &target), validate.ErrInvalidJSON)
	})

	t.Run("malformed", func(t *testing.T) {
		var target payload
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		assert.ErrorIs(t, requestutil.DecodeJSON(httptest.NewRecorder(), request, &target), validate.ErrInvalidJSON)
	})
}
