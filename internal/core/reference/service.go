// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/bookstore/internal/platform/apperr"
	"github.com/taibuivan/bookstore/internal/platform/validate"
	"github.com/taibuivan/bookstore/pkg/slug"
	"github.com/taibuivan/bookstore/pkg/uuid"
)

// # Service Layer

// Service orchestrates business rules for reference data.
type Service struct {
	repo      Repository
	directory DirectoryStore
	logger    *slog.Logger
}

// NewService constructs a new reference [Service].
func NewService(repo Repository, directory DirectoryStore, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		logger:    logger,
	}
}

// # People

// ListPeople provides a paginated name search over authors or translators.
func (service *Service) ListPeople(context context.Context, kind PersonKind, filter PersonFilter, limit, offset int) ([]*Person, int, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	return service.repo.ListPeople(context, kind, filter, limit, offset)
}

// GetPerson resolves an author or translator by slug.
func (service *Service) GetPerson(context context.Context, kind PersonKind, personSlug string) (*Person, error) {
	return service.repo.FindPersonBySlug(context, kind, personSlug)
}

/*
CreatePerson validates and persists a new author or translator.

Description: The slug is derived from the full name when absent. The id is
always generated here; any client-supplied id is overwritten.

Parameters:
  - context: context.Context
  - kind: PersonKind
  - person: *Person

Returns:
  - error: Validation failures, apperr.Conflict on duplicate slug, or storage errors
*/
func (service *Service) CreatePerson(context context.Context, kind PersonKind, person *Person) error {
	person.FullName = strings.TrimSpace(person.FullName)
	if person.Slug == "" {
		person.Slug = slug.From(person.FullName)
	}

	validator := &validate.Validator{}
	validator.Required(FieldFullName, person.FullName).MaxLen(FieldFullName, person.FullName, maxNameLength)
	validator.Slug(FieldSlug, person.Slug).MaxLen(FieldSlug, person.Slug, maxNameLength)

	if err := validator.Err(); err != nil {
		return err
	}

	person.ID = uuid.New()
	if err := service.repo.CreatePerson(context, kind, person); err != nil {
		return err
	}

	service.logger.Info(string(kind)+"_created",
		slog.String("id", person.ID),
		slog.String("slug", person.Slug),
	)
	return nil
}

// DeletePerson removes an author or translator by slug.
func (service *Service) DeletePerson(context context.Context, kind PersonKind, personSlug string) error {
	if err := service.repo.DeletePerson(context, kind, personSlug); err != nil {
		return err
	}

	service.logger.Warn(string(kind)+"_deleted", slog.String("slug", personSlug))
	return nil
}

// # Terms

// ListTerms returns every category or publisher.
func (service *Service) ListTerms(context context.Context, kind TermKind) ([]*Term, error) {
	return service.repo.ListTerms(context, kind)
}

// GetTerm resolves a category or publisher by slug.
func (service *Service) GetTerm(context context.Context, kind TermKind, termSlug string) (*Term, error) {
	return service.repo.FindTermBySlug(context, kind, termSlug)
}

// CreateTerm validates and persists a new category or publisher.
func (service *Service) CreateTerm(context context.Context, kind TermKind, term *Term) error {
	term.Name = strings.TrimSpace(term.Name)
	if term.Slug == "" {
		term.Slug = slug.From(term.Name)
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, term.Name).MaxLen(FieldName, term.Name, maxNameLength)
	validator.Slug(FieldSlug, term.Slug).MaxLen(FieldSlug, term.Slug, maxNameLength)

	if err := validator.Err(); err != nil {
		return err
	}

	term.ID = uuid.New()
	if err := service.repo.CreateTerm(context, kind, term); err != nil {
		return err
	}

	service.logger.Info(string(kind)+"_created",
		slog.String("id", term.ID),
		slog.String("slug", term.Slug),
	)
	return nil
}

// DeleteTerm removes a category or publisher by slug.
func (service *Service) DeleteTerm(context context.Context, kind TermKind, termSlug string) error {
	if err := service.repo.DeleteTerm(context, kind, termSlug); err != nil {
		return err
	}

	service.logger.Warn(string(kind)+"_deleted", slog.String("slug", termSlug))
	return nil
}

// # Publisher Directory

/*
SyncPublisherDirectory rebuilds the Redis publisher directory from Postgres.

Description: The directory is a point-in-time copy. Publishers created or
deleted afterwards are not reflected until the next sync.

Returns:
  - int: Number of publishers written
  - error: Retrieval or Redis failures (apperr.Internal)
*/
func (service *Service) SyncPublisherDirectory(context context.Context) (int, error) {
	publishers, err := service.repo.ListTerms(context, KindPublisher)
	if err != nil {
		return 0, err
	}

	if err := service.directory.Replace(context, publishers); err != nil {
		return 0, apperr.Internal(err)
	}

	service.logger.Info("publisher_directory_synced", slog.Int("count", len(publishers)))
	return len(publishers), nil
}

// ListPublisherDirectory serves the alternate publisher listing from Redis.
func (service *Service) ListPublisherDirectory(context context.Context) ([]*Term, error) {
	publishers, err := service.directory.List(context)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return publishers, nil
}
