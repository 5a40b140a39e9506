package tagrpc

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type AddTagsRequest struct {
	UserID string   `json:"user_id"`
	Tags   []string `json:"tags"`
}

type AddTagsResponse struct {
	UserID string   `json:"user_id"`
	Tags   []string `json:"tags"`
}

type CreateUserRequest struct {
	UserID string `json:"user_id"`
}

type CreateUserResponse struct {
	UserID  string `json:"user_id"`
	Created bool   `json:"created"`
}

type RemoveTagRequest struct {
	UserID string `json:"user_id"`
	Tag    string `json:"tag"`
}

type RemoveTagResponse struct {
	UserID     string `json:"user_id"`
	RemovedTag string `json:"removed_tag"`
}

type GetUserTagsRequest struct {
	UserID string `json:"user_id"`
}

// GetUserTagsResponse carries Exists so callers can tell an unknown user
// from a known user without tags.
type GetUserTagsResponse struct {
	UserID string   `json:"user_id"`
	Tags   []string `json:"tags"`
	Exists bool     `json:"exists"`
}

type GetUsersWithTagRequest struct {
	Tag string `json:"tag"`
}

type GetUsersWithTagResponse struct {
	Tag   string   `json:"tag"`
	Users []string `json:"users"`
}

type HasTagRequest struct {
	UserID string `json:"user_id"`
	Tag    string `json:"tag"`
}

type HasTagResponse struct {
	HasTag bool `json:"has_tag"`
}

type ListUsersRequest struct{}

type ListUsersResponse struct {
	Users []string `json:"users"`
}

type ListTagsRequest struct{}

type ListTagsResponse struct {
	Tags []string `json:"tags"`
}

type ClearRequest struct{}

type ClearResponse struct{}

type StatsRequest struct{}

type StatsResponse struct {
	Users int `json:"users"`
	Tags  int `json:"tags"`
	Pairs int `json:"pairs"`
}
