// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil stores and retrieves per-request values in a [context.Context].
//
// Middleware writes the values (request id, request logger, staff claims) and
// domain services read them back. The keys are unexported so no other package
// can read or overwrite them.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bookstore/internal/platform/sec"
)

type contextKey uint8

const (
	requestIDKey contextKey = iota
	loggerKey
	authUserKey
)

// # Request Tracing

// WithRequestID attaches the correlation id of the current request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns the correlation id, or "" outside of a request.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// # Structured Logging

// WithLogger attaches the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger.
// Background work without one falls back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// LoggerOr returns the request-scoped logger when one is attached, otherwise fallback.
//
// Services hold a component logger built at startup; inside a request the
// richer request logger (request_id, method, path) is preferred.
func LoggerOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}

// # Staff Identity

// WithAuthUser attaches verified staff claims.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, authUserKey, user)
}

// GetAuthUser returns the verified claims, or nil for anonymous shoppers.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, _ := ctx.Value(authUserKey).(*sec.AuthClaims)
	return claims
}
