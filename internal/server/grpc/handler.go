package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/usertags/internal/common"
	"github.com/dmitrijs2005/usertags/internal/tagrpc"
)

// toStatus maps service errors to gRPC status errors. Unexpected errors are
// logged and reported as Internal without details.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	}
	s.logger.Error(ctx, err.Error(), "request_id", requestIDFromContext(ctx))
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func (s *GRPCServer) Ping(ctx context.Context, req *tagrpc.PingRequest) (*tagrpc.PingResponse, error) {

	return &tagrpc.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) AddTags(ctx context.Context, req *tagrpc.AddTagsRequest) (*tagrpc.AddTagsResponse, error) {

	tags, err := s.tags.AddTags(ctx, req.UserID, req.Tags)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &tagrpc.AddTagsResponse{UserID: req.UserID, Tags: tags}, nil

}

func (s *GRPCServer) CreateUser(ctx context.Context, req *tagrpc.CreateUserRequest) (*tagrpc.CreateUserResponse, error) {

	created, err := s.tags.CreateUser(ctx, req.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &tagrpc.CreateUserResponse{UserID: req.UserID, Created: created}, nil

}

func (s *GRPCServer) RemoveTag(ctx context.Context, req *tagrpc.RemoveTagRequest) (*tagrpc.RemoveTagResponse, error) {

	if err := s.tags.RemoveTag(ctx, req.UserID, req.Tag); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &tagrpc.RemoveTagResponse{UserID: req.UserID, RemovedTag: req.Tag}, nil

}

func (s *GRPCServer) GetUserTags(ctx context.Context, req *tagrpc.GetUserTagsRequest) (*tagrpc.GetUserTagsResponse, error) {

	tags, exists := s.tags.UserTags(ctx, req.UserID)

	return &tagrpc.GetUserTagsResponse{UserID: req.UserID, Tags: tags, Exists: exists}, nil

}

func (s *GRPCServer) GetUsersWithTag(ctx context.Context, req *tagrpc.GetUsersWithTagRequest) (*tagrpc.GetUsersWithTagResponse, error) {

	return &tagrpc.GetUsersWithTagResponse{Tag: req.Tag, Users: s.tags.UsersWithTag(ctx, req.Tag)}, nil

}

func (s *GRPCServer) HasTag(ctx context.Context, req *tagrpc.HasTagRequest) (*tagrpc.HasTagResponse, error) {

	return &tagrpc.HasTagResponse{HasTag: s.tags.HasTag(ctx, req.UserID, req.Tag)}, nil

}

func (s *GRPCServer) ListUsers(ctx context.Context, req *tagrpc.ListUsersRequest) (*tagrpc.ListUsersResponse, error) {

	return &tagrpc.ListUsersResponse{Users: s.tags.AllUsers(ctx)}, nil

}

func (s *GRPCServer) ListTags(ctx context.Context, req *tagrpc.ListTagsRequest) (*tagrpc.ListTagsResponse, error) {

	return &tagrpc.ListTagsResponse{Tags: s.tags.AllTags(ctx)}, nil

}

func (s *GRPCServer) Clear(ctx context.Context, req *tagrpc.ClearRequest) (*tagrpc.ClearResponse, error) {

	if err := s.tags.Clear(ctx); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &tagrpc.ClearResponse{}, nil

}

func (s *GRPCServer) Stats(ctx context.Context, req *tagrpc.StatsRequest) (*tagrpc.StatsResponse, error) {

	st := s.tags.Stats(ctx)

	return &tagrpc.StatsResponse{Users: st.Users, Tags: st.Tags, Pairs: st.Pairs}, nil

}
