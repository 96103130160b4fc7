// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadiness(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	healthy := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	t.Run("ready", func(t *testing.T) {
		_, readiness := NewHealthHandlers(HealthDependencies{CheckDatabase: healthy, CheckCache: healthy}, logger)
		recorder := httptest.NewRecorder()
		readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"ready"`)
	})

	t.Run("degraded", func(t *testing.T) {
		_, readiness := NewHealthHandlers(HealthDependencies{CheckDatabase: healthy, CheckCache: broken}, logger)
		recorder := httptest.NewRecorder()
		readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"degraded"`)
		assert.Contains(t, recorder.Body.String(), "connection refused")
	})
}

func TestLiveness(t *testing.T) {
	liveness, _ := NewHealthHandlers(HealthDependencies{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	recorder := httptest.NewRecorder()
	liveness(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"}}`, recorder.Body.String())
}
