package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "user tag service is running", nil)
}

func (s *Server) handleUserTags(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user_id")

	tags, exists := s.tags.UserTags(r.Context(), user)

	msg := "tags retrieved"
	switch {
	case !exists:
		msg = "user not found"
	case len(tags) == 0:
		msg = "user has no tags"
	}

	writeSuccess(w, http.StatusOK, msg, map[string]any{"user_id": user, "tags": tags})
}

func (s *Server) handleAddTags(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user_id")

	var req AddTagsRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			writeFailure(w, http.StatusBadRequest, "request body is required")
			return
		}
		writeFailure(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Tags == nil {
		writeFailure(w, http.StatusBadRequest, "field 'tags' is required")
		return
	}

	tags, err := s.tags.AddTags(r.Context(), user, req.Tags)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "tags added", map[string]any{"user_id": user, "tags": tags})
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user_id")

	created, err := s.tags.CreateUser(r.Context(), user)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	msg := "user created"
	if !created {
		msg = "user already exists"
	}
	writeSuccess(w, http.StatusCreated, msg, map[string]any{"user_id": user, "tags": []string{}, "created": created})
}

func (s *Server) handleRemoveTag(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user_id")
	tag := r.PathValue("tag")

	if err := s.tags.RemoveTag(r.Context(), user, tag); err != nil {
		s.fail(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, fmt.Sprintf("tag '%s' removed", tag),
		map[string]any{"user_id": user, "removed_tag": tag})
}

func (s *Server) handleHasTag(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user_id")
	tag := r.PathValue("tag")

	writeSuccess(w, http.StatusOK, "tag check completed",
		map[string]any{"user_id": user, "tag": tag, "has_tag": s.tags.HasTag(r.Context(), user, tag)})
}

func (s *Server) handleUsersWithTag(w http.ResponseWriter, r *http.Request) {
	tag := r.PathValue("tag")

	writeSuccess(w, http.StatusOK, fmt.Sprintf("users with tag '%s' retrieved", tag),
		map[string]any{"tag": tag, "users": s.tags.UsersWithTag(r.Context(), tag)})
}

func (s *Server) handleAllTags(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "all tags retrieved", map[string]any{"tags": s.tags.AllTags(r.Context())})
}

func (s *Server) handleAllUsers(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "all users retrieved", map[string]any{"users": s.tags.AllUsers(r.Context())})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st := s.tags.Stats(r.Context())
	writeSuccess(w, http.StatusOK, "stats retrieved",
		map[string]any{"users": st.Users, "tags": st.Tags, "pairs": st.Pairs})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.tags.Clear(r.Context()); err != nil {
		s.fail(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "store cleared", nil)
}

// fail writes the error envelope. Server-side failures are logged and their
// details withheld from the client.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeFailure(w, code, "internal error")
		return
	}
	writeFailure(w, code, err.Error())
}
