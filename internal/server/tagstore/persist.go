package tagstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/usertags/internal/filex"
)

const fileMode = 0o644

// snapshot is the on-disk layout of the index. Arrays are sets: order is
// not significant and duplicates are dropped on load.
type snapshot struct {
	UserTags map[string][]string `json:"user_tags"`
	TagUsers map[string][]string `json:"tag_users"`
}

func encodeSnapshot(userTags, tagUsers map[string]set) ([]byte, error) {
	snap := snapshot{
		UserTags: make(map[string][]string, len(userTags)),
		TagUsers: make(map[string][]string, len(tagUsers)),
	}
	for user, tags := range userTags {
		snap.UserTags[user] = tags.sorted()
	}
	for tag, users := range tagUsers {
		snap.TagUsers[tag] = users.sorted()
	}
	return json.MarshalIndent(snap, "", "  ")
}

func decodeSnapshot(b []byte) (snapshot, error) {
	var snap snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// loadLocked replaces the in-memory index with the data file contents.
//
// Pairs are rebuilt through linkLocked from both halves of the snapshot, so
// a file whose two maps disagree still yields a symmetric index. Blank ids
// are skipped.
func (s *Store) loadLocked(ctx context.Context) {
	b, ok, err := filex.ReadFileIfExists(s.path)
	if err != nil {
		s.logger.Error(ctx, "read data file", "path", s.path, "error", err)
		return
	}
	if !ok {
		s.logger.Info(ctx, "data file does not exist yet", "path", s.path)
		return
	}

	snap, err := decodeSnapshot(b)
	if err != nil {
		s.logger.Error(ctx, "load data file, starting empty", "path", s.path, "error", err)
		return
	}

	for user, tags := range snap.UserTags {
		if user == "" {
			continue
		}
		if _, ok := s.userTags[user]; !ok {
			s.userTags[user] = make(set)
		}
		for _, tag := range tags {
			if tag != "" {
				s.linkLocked(user, tag)
			}
		}
	}
	for tag, users := range snap.TagUsers {
		if tag == "" {
			continue
		}
		for _, user := range users {
			if user != "" {
				s.linkLocked(user, tag)
			}
		}
	}

	s.logger.Info(ctx, "data file loaded", "path", s.path, "users", len(s.userTags), "tags", len(s.tagUsers))
}

// saveLocked writes the index through filex.WriteFileAtomic. Failures are
// logged; the previous file stays in place.
func (s *Store) saveLocked(ctx context.Context) {
	b, err := encodeSnapshot(s.userTags, s.tagUsers)
	if err != nil {
		s.logger.Error(ctx, "encode snapshot", "path", s.path, "error", err)
		return
	}
	if err := filex.WriteFileAtomic(s.path, b, fileMode); err != nil {
		s.logger.Error(ctx, "save data file", "path", s.path, "error", err)
		return
	}
	s.logger.Debug(ctx, "data file saved", "path", s.path, "users", len(s.userTags), "tags", len(s.tagUsers))
}
