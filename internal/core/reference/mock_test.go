// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ListPeople(ctx context.Context, kind PersonKind, filter PersonFilter, limit, offset int) ([]*Person, int, error) {
	args := m.Called(ctx, kind, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*Person), args.Int(1), args.Error(2)
}

func (m *mockRepository) FindPersonBySlug(ctx context.Context, kind PersonKind, slug string) (*Person, error) {
	args := m.Called(ctx, kind, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Person), args.Error(1)
}

func (m *mockRepository) CreatePerson(ctx context.Context, kind PersonKind, person *Person) error {
	return m.Called(ctx, kind, person).Error(0)
}

func (m *mockRepository) DeletePerson(ctx context.Context, kind PersonKind, slug string) error {
	return m.Called(ctx, kind, slug).Error(0)
}

func (m *mockRepository) ListTerms(ctx context.Context, kind TermKind) ([]*Term, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Term), args.Error(1)
}

func (m *mockRepository) FindTermBySlug(ctx context.Context, kind TermKind, slug string) (*Term, error) {
	args := m.Called(ctx, kind, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Term), args.Error(1)
}

func (m *mockRepository) CreateTerm(ctx context.Context, kind TermKind, term *Term) error {
	return m.Called(ctx, kind, term).Error(0)
}

func (m *mockRepository) DeleteTerm(ctx context.Context, kind TermKind, slug string) error {
	return m.Called(ctx, kind, slug).Error(0)
}

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) Replace(ctx context.Context, publishers []*Term) error {
	return m.Called(ctx, publishers).Error(0)
}

func (m *mockDirectory) List(ctx context.Context) ([]*Term, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Term), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
