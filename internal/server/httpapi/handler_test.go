package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/usertags/internal/logging"
	"github.com/dmitrijs2005/usertags/internal/server/services"
	"github.com/dmitrijs2005/usertags/internal/server/tagstore"
)

func newTestServer(t *testing.T) (*httptest.Server, *tagstore.Store) {
	t.Helper()
	st := tagstore.New(context.Background(), filepath.Join(t.TempDir(), "user_tags.json"), logging.Nop())
	svc := services.NewTagService(st, logging.Nop())
	srv := NewServer("127.0.0.1:0", logging.Nop(), svc, time.Second)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, st
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, method, url, body string) (*http.Response, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") && len(bytes.TrimSpace(b)) > 0 {
		require.NoError(t, json.Unmarshal(b, &env), "body: %s", b)
	}
	return resp, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestPing(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, env := do(t, http.MethodGet, ts.URL+"/ping", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", env.Status)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestUserTagsLifecycle(t *testing.T) {
	ts, st := newTestServer(t)
	ctx := context.Background()

	// unknown user
	resp, env := do(t, http.MethodGet, ts.URL+"/users/u1/tags", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user not found", env.Message)

	// create without tags via the tags endpoint
	resp, env = do(t, http.MethodPost, ts.URL+"/users/u1/tags", `{"tags": []}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, st.HasUser(ctx, "u1"))

	resp, env = do(t, http.MethodGet, ts.URL+"/users/u1/tags", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user has no tags", env.Message)

	// add tags
	resp, env = do(t, http.MethodPost, ts.URL+"/users/u1/tags", `{"tags": ["rock", "jazz"]}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var added struct {
		UserID string   `json:"user_id"`
		Tags   []string `json:"tags"`
	}
	decodeData(t, env, &added)
	assert.Equal(t, "u1", added.UserID)
	assert.Equal(t, []string{"jazz", "rock"}, added.Tags)

	resp, env = do(t, http.MethodGet, ts.URL+"/users/u1/tags", "")
	assert.Equal(t, "tags retrieved", env.Message)

	// has tag
	_, env = do(t, http.MethodGet, ts.URL+"/users/u1/tags/rock", "")
	var has struct {
		HasTag bool `json:"has_tag"`
	}
	decodeData(t, env, &has)
	assert.True(t, has.HasTag)

	// remove
	resp, env = do(t, http.MethodDelete, ts.URL+"/users/u1/tags/rock", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", env.Status)

	resp, env = do(t, http.MethodDelete, ts.URL+"/users/u1/tags/rock", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", env.Status)

	assert.Equal(t, []string{"jazz"}, st.UserTags(ctx, "u1"))
}

func TestCreateUser(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, env := do(t, http.MethodPost, ts.URL+"/users/u1", "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "user created", env.Message)

	resp, env = do(t, http.MethodPost, ts.URL+"/users/u1", "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "user already exists", env.Message)
}

func TestListings(t *testing.T) {
	ts, st := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, st.AddTag(ctx, "u1", "rock"))
	require.NoError(t, st.AddTag(ctx, "u2", "rock"))
	require.NoError(t, st.AddTag(ctx, "u2", "pop"))
	_, err := st.CreateUser(ctx, "u3")
	require.NoError(t, err)

	_, env := do(t, http.MethodGet, ts.URL+"/tags/rock/users", "")
	var byTag struct {
		Tag   string   `json:"tag"`
		Users []string `json:"users"`
	}
	decodeData(t, env, &byTag)
	assert.Equal(t, "rock", byTag.Tag)
	assert.Equal(t, []string{"u1", "u2"}, byTag.Users)

	_, env = do(t, http.MethodGet, ts.URL+"/tags/unknown/users", "")
	decodeData(t, env, &byTag)
	assert.NotNil(t, byTag.Users)
	assert.Empty(t, byTag.Users)

	_, env = do(t, http.MethodGet, ts.URL+"/tags", "")
	var tags struct {
		Tags []string `json:"tags"`
	}
	decodeData(t, env, &tags)
	assert.Equal(t, []string{"pop", "rock"}, tags.Tags)

	_, env = do(t, http.MethodGet, ts.URL+"/users", "")
	var users struct {
		Users []string `json:"users"`
	}
	decodeData(t, env, &users)
	assert.Equal(t, []string{"u1", "u2", "u3"}, users.Users)

	_, env = do(t, http.MethodGet, ts.URL+"/stats", "")
	var stats struct {
		Users int `json:"users"`
		Tags  int `json:"tags"`
		Pairs int `json:"pairs"`
	}
	decodeData(t, env, &stats)
	assert.Equal(t, 3, stats.Users)
	assert.Equal(t, 2, stats.Tags)
	assert.Equal(t, 3, stats.Pairs)
}

func TestClear(t *testing.T) {
	ts, st := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, st.AddTag(ctx, "u1", "rock"))

	resp, _ := do(t, http.MethodDelete, ts.URL+"/store", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, st.AllUsers(ctx))
}

func TestBadRequests(t *testing.T) {
	ts, st := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"tags": [`},
		{"wrong type", `{"tags": "rock"}`},
		{"blank tag", `{"tags": ["rock", ""]}`},
		{"missing body", ""},
		{"missing tags field", `{}`},
		{"null tags", `{"tags": null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := do(t, http.MethodPost, ts.URL+"/users/u1/tags", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "error", env.Status)
		})
	}
	assert.Empty(t, st.AllUsers(context.Background()))
}

func TestMethodNotAllowedAndCORS(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := do(t, http.MethodPut, ts.URL+"/tags", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, _ = do(t, http.MethodOptions, ts.URL+"/users/u1/tags", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRequestID_IsPropagated(t *testing.T) {
	ts, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/ping", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}
