// Package services contains server-side business logic shared by the HTTP
// and gRPC transports. This file implements TagService, the request-facing
// wrapper around the tag store.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/usertags/internal/common"
	"github.com/dmitrijs2005/usertags/internal/logging"
	"github.com/dmitrijs2005/usertags/internal/server/tagstore"
)

// TagStore is the store contract TagService depends on. *tagstore.Store
// satisfies it.
type TagStore interface {
	AddTag(ctx context.Context, user, tag string) error
	CreateUser(ctx context.Context, user string) (bool, error)
	RemoveTag(ctx context.Context, user, tag string) (bool, error)
	UserTags(ctx context.Context, user string) []string
	UsersWithTag(ctx context.Context, tag string) []string
	HasTag(ctx context.Context, user, tag string) bool
	HasUser(ctx context.Context, user string) bool
	AllUsers(ctx context.Context) []string
	AllTags(ctx context.Context) []string
	Clear(ctx context.Context) error
	Stats(ctx context.Context) tagstore.Stats
}

var _ TagStore = (*tagstore.Store)(nil)

// TagService maps transport-level requests onto store calls and turns the
// store's boolean outcomes into common sentinel errors.
type TagService struct {
	store  TagStore
	logger logging.Logger
}

// NewTagService constructs a TagService over store.
func NewTagService(store TagStore, l logging.Logger) *TagService {
	if l == nil {
		l = logging.Nop()
	}
	return &TagService{store: store, logger: l.With("module", "tag_service")}
}

// AddTags gives every tag in tags to user and returns the user's tags
// afterwards. An empty list only makes sure the user exists. Blank tags fail
// the whole call with ErrorValidation before anything is written.
func (s *TagService) AddTags(ctx context.Context, user string, tags []string) ([]string, error) {
	if strings.TrimSpace(user) == "" {
		return nil, fmt.Errorf("user id is required: %w", common.ErrorValidation)
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return nil, fmt.Errorf("tags must not be blank: %w", common.ErrorValidation)
		}
	}

	if len(tags) == 0 {
		if _, err := s.store.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("create user %q: %w", user, err)
		}
		s.logger.Info(ctx, "user ensured", "user", user)
		return s.store.UserTags(ctx, user), nil
	}

	for _, tag := range tags {
		if err := s.store.AddTag(ctx, user, tag); err != nil {
			return nil, fmt.Errorf("add tag %q to %q: %w", tag, user, err)
		}
	}
	s.logger.Info(ctx, "tags added", "user", user, "count", len(tags))
	return s.store.UserTags(ctx, user), nil
}

// CreateUser registers an untagged user and reports whether it was new.
func (s *TagService) CreateUser(ctx context.Context, user string) (bool, error) {
	if strings.TrimSpace(user) == "" {
		return false, fmt.Errorf("user id is required: %w", common.ErrorValidation)
	}
	created, err := s.store.CreateUser(ctx, user)
	if err != nil {
		return false, fmt.Errorf("create user %q: %w", user, err)
	}
	s.logger.Info(ctx, "create user", "user", user, "created", created)
	return created, nil
}

// RemoveTag takes tag away from user. It returns ErrorNotFound when the user
// does not hold the tag.
func (s *TagService) RemoveTag(ctx context.Context, user, tag string) error {
	removed, err := s.store.RemoveTag(ctx, user, tag)
	if err != nil {
		return fmt.Errorf("remove tag %q from %q: %w", tag, user, err)
	}
	if !removed {
		return fmt.Errorf("user %q has no tag %q: %w", user, tag, common.ErrorNotFound)
	}
	s.logger.Info(ctx, "tag removed", "user", user, "tag", tag)
	return nil
}

// UserTags returns the user's tags and whether the user is known at all.
func (s *TagService) UserTags(ctx context.Context, user string) ([]string, bool) {
	return s.store.UserTags(ctx, user), s.store.HasUser(ctx, user)
}

func (s *TagService) UsersWithTag(ctx context.Context, tag string) []string {
	return s.store.UsersWithTag(ctx, tag)
}

func (s *TagService) HasTag(ctx context.Context, user, tag string) bool {
	return s.store.HasTag(ctx, user, tag)
}

func (s *TagService) AllUsers(ctx context.Context) []string {
	return s.store.AllUsers(ctx)
}

func (s *TagService) AllTags(ctx context.Context) []string {
	return s.store.AllTags(ctx)
}

func (s *TagService) Stats(ctx context.Context) tagstore.Stats {
	return s.store.Stats(ctx)
}

// Clear wipes the whole index.
func (s *TagService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	s.logger.Warn(ctx, "store cleared")
	return nil
}

// IsClientError reports whether err is caused by the caller rather than the
// server.
func IsClientError(err error) bool {
	return errors.Is(err, common.ErrorValidation) || errors.Is(err, common.ErrorNotFound)
}
