// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil extracts path parameters, list filters and JSON bodies
from incoming requests.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookstore/internal/platform/validate"
	"github.com/taibuivan/bookstore/pkg/query"
)

// maxBodyBytes bounds admin JSON payloads.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into target.
// Unknown fields and malformed JSON both yield [validate.ErrInvalidJSON].
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(writer, request.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param returns a chi URL parameter.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Slug returns a chi URL parameter normalized for slug lookups.
func Slug(request *http.Request, name string) string {
	return strings.ToLower(strings.TrimSpace(chi.URLParam(request, name)))
}

// List reads a multi-valued query filter.
//
// Both repeated keys (?author=a&author=b) and comma lists (?author=a,b) are
// accepted; blanks and duplicates are dropped.
func List(request *http.Request, key string) []string {
	var values []string
	seen := make(map[string]struct{})

	for _, raw := range request.URL.Query()[key] {
		for _, value := range query.StringSlice(raw) {
			if _, dup := seen[value]; dup {
				continue
			}
			seen[value] = struct{}{}
			values = append(values, value)
		}
	}
	return values
}
