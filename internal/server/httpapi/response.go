package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/usertags/internal/common"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Response is the envelope shared by every endpoint.
type Response struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// AddTagsRequest is the JSON body for POST /users/{user_id}/tags. Tags is
// required; an empty list only creates the user.
type AddTagsRequest struct {
	Tags []string `json:"tags"`
}

func writeJSON(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeSuccess(w http.ResponseWriter, code int, msg string, data map[string]any) {
	writeJSON(w, code, Response{Status: statusSuccess, Message: msg, Data: data})
}

func writeFailure(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, Response{Status: statusError, Message: msg})
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
