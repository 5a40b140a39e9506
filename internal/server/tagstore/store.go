package tagstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/usertags/internal/common"
	"github.com/dmitrijs2005/usertags/internal/filex"
	"github.com/dmitrijs2005/usertags/internal/logging"
)

// ErrStoreClosed is returned by mutating calls made after Close.
var ErrStoreClosed = errors.New("tag store closed")

type set map[string]struct{}

func (s set) sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Stats summarises the index.
type Stats struct {
	Users int    `json:"users"`
	Tags  int    `json:"tags"`
	Pairs int    `json:"pairs"`
	Path  string `json:"path"`
}

// Store is the bidirectional user/tag index backed by a data file.
//
// All methods are safe for concurrent use. Methods ending in Locked expect
// s.mu to be held by the caller.
type Store struct {
	mu       sync.Mutex
	path     string
	logger   logging.Logger
	userTags map[string]set
	tagUsers map[string]set
	closed   bool
}

// New opens the store at path, loading any existing snapshot, and writes the
// loaded state back so the file exists once New returns. An unreadable or
// corrupt file is logged and replaced by an empty index.
func New(ctx context.Context, path string, logger logging.Logger) *Store {
	if path == "" {
		path = common.DefaultDataFile
	}
	if logger == nil {
		logger = logging.Nop()
	}

	s := &Store{
		path:     path,
		logger:   logger.With("module", "tagstore"),
		userTags: make(map[string]set),
		tagUsers: make(map[string]set),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx)
	s.saveLocked(ctx)
	return s
}

// Path returns the data file location.
func (s *Store) Path() string { return s.path }

// AddTag gives tag to user, creating the user entry if needed. Adding a
// pairing that already exists changes nothing but still rewrites the file.
func (s *Store) AddTag(ctx context.Context, user, tag string) error {
	if user == "" || tag == "" {
		return fmt.Errorf("add tag %q to user %q: %w", tag, user, common.ErrorValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	s.linkLocked(user, tag)
	s.logger.Debug(ctx, "tag added", "user", user, "tag", tag)
	s.saveLocked(ctx)
	return nil
}

// CreateUser registers user with no tags. It reports false, without touching
// the file, when the user already exists.
func (s *Store) CreateUser(ctx context.Context, user string) (bool, error) {
	if user == "" {
		return false, fmt.Errorf("create user: %w", common.ErrorValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrStoreClosed
	}

	if _, ok := s.userTags[user]; ok {
		s.logger.Debug(ctx, "user already exists", "user", user)
		return false, nil
	}

	s.userTags[user] = make(set)
	s.logger.Debug(ctx, "user created", "user", user)
	s.saveLocked(ctx)
	return true, nil
}

// RemoveTag takes tag away from user. It reports false when the user is
// unknown or does not hold the tag. The user entry survives even if its tag
// set becomes empty; the tag entry is dropped with its last holder.
func (s *Store) RemoveTag(ctx context.Context, user, tag string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrStoreClosed
	}

	tags, ok := s.userTags[user]
	if !ok {
		s.logger.Debug(ctx, "remove tag: unknown user", "user", user, "tag", tag)
		return false, nil
	}
	if _, ok := tags[tag]; !ok {
		s.logger.Debug(ctx, "remove tag: tag not held", "user", user, "tag", tag)
		return false, nil
	}

	s.unlinkLocked(user, tag)
	s.logger.Debug(ctx, "tag removed", "user", user, "tag", tag)
	s.saveLocked(ctx)
	return true, nil
}

// UserTags returns the sorted tags of user. Unknown and untagged users both
// yield an empty slice; use HasUser to tell them apart.
func (s *Store) UserTags(ctx context.Context, user string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userTags[user].sorted()
}

// UsersWithTag returns the sorted users holding tag.
func (s *Store) UsersWithTag(ctx context.Context, tag string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tagUsers[tag].sorted()
}

// HasTag reports whether user holds tag.
func (s *Store) HasTag(ctx context.Context, user, tag string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.userTags[user][tag]
	return ok
}

// HasUser reports whether user has been created or tagged since the last
// Clear.
func (s *Store) HasUser(ctx context.Context, user string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.userTags[user]
	return ok
}

// AllUsers returns every known user, tagged or not.
func (s *Store) AllUsers(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sortedKeys(s.userTags)
}

// AllTags returns every tag held by at least one user.
func (s *Store) AllTags(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sortedKeys(s.tagUsers)
}

// Stats returns index counters.
func (s *Store) Stats(ctx context.Context) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	pairs := 0
	for _, tags := range s.userTags {
		pairs += len(tags)
	}
	return Stats{Users: len(s.userTags), Tags: len(s.tagUsers), Pairs: pairs, Path: s.path}
}

// Clear drops every user and tag, deletes the data file and writes a fresh
// empty snapshot. A failure to delete the file is logged only.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	s.userTags = make(map[string]set)
	s.tagUsers = make(map[string]set)

	if err := filex.RemoveIfExists(s.path); err != nil {
		s.logger.Error(ctx, "remove data file", "path", s.path, "error", err)
	} else {
		s.logger.Info(ctx, "store cleared", "path", s.path)
	}

	s.saveLocked(ctx)
	return nil
}

// Close writes the current index one last time and rejects further
// mutations. Reads keep working. Close is idempotent.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.saveLocked(ctx)
	s.closed = true
	return nil
}

func (s *Store) linkLocked(user, tag string) {
	tags, ok := s.userTags[user]
	if !ok {
		tags = make(set)
		s.userTags[user] = tags
	}
	tags[tag] = struct{}{}

	users, ok := s.tagUsers[tag]
	if !ok {
		users = make(set)
		s.tagUsers[tag] = users
	}
	users[user] = struct{}{}
}

func (s *Store) unlinkLocked(user, tag string) {
	delete(s.userTags[user], tag)

	users, ok := s.tagUsers[tag]
	if !ok {
		return
	}
	delete(users, user)
	if len(users) == 0 {
		delete(s.tagUsers, tag)
	}
}

func sortedKeys(m map[string]set) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
