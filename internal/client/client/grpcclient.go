package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/usertags/internal/common"
	"github.com/dmitrijs2005/usertags/internal/tagrpc"
)

// Stats mirrors the server's store counters.
type Stats struct {
	Users int
	Tags  int
	Pairs int
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      tagrpc.TagServiceClient
}

func NewTagClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(tagrpc.CodecName)),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = tagrpc.NewTagServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	_, err := s.client.Ping(ctx, &tagrpc.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

// AddTags attaches tags to user and returns the user's tags afterwards.
// With no tags it only makes sure the user exists.
func (s *GRPCClient) AddTags(ctx context.Context, user string, tags ...string) ([]string, error) {

	req := &tagrpc.AddTagsRequest{UserID: user, Tags: tags}

	resp, err := s.client.AddTags(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.Tags, nil

}

func (s *GRPCClient) CreateUser(ctx context.Context, user string) (bool, error) {
	resp, err := s.client.CreateUser(ctx, &tagrpc.CreateUserRequest{UserID: user})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Created, nil
}

func (s *GRPCClient) RemoveTag(ctx context.Context, user, tag string) error {
	_, err := s.client.RemoveTag(ctx, &tagrpc.RemoveTagRequest{UserID: user, Tag: tag})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

// UserTags returns the user's tags and whether the user is known at all.
func (s *GRPCClient) UserTags(ctx context.Context, user string) ([]string, bool, error) {
	resp, err := s.client.GetUserTags(ctx, &tagrpc.GetUserTagsRequest{UserID: user})
	if err != nil {
		return nil, false, s.mapError(err)
	}
	return resp.Tags, resp.Exists, nil
}

func (s *GRPCClient) UsersWithTag(ctx context.Context, tag string) ([]string, error) {
	resp, err := s.client.GetUsersWithTag(ctx, &tagrpc.GetUsersWithTagRequest{Tag: tag})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Users, nil
}

func (s *GRPCClient) HasTag(ctx context.Context, user, tag string) (bool, error) {
	resp, err := s.client.HasTag(ctx, &tagrpc.HasTagRequest{UserID: user, Tag: tag})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.HasTag, nil
}

func (s *GRPCClient) AllUsers(ctx context.Context) ([]string, error) {
	resp, err := s.client.ListUsers(ctx, &tagrpc.ListUsersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Users, nil
}

func (s *GRPCClient) AllTags(ctx context.Context) ([]string, error) {
	resp, err := s.client.ListTags(ctx, &tagrpc.ListTagsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Tags, nil
}

func (s *GRPCClient) Clear(ctx context.Context) error {
	_, err := s.client.Clear(ctx, &tagrpc.ClearRequest{})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Stats(ctx context.Context) (Stats, error) {
	resp, err := s.client.Stats(ctx, &tagrpc.StatsRequest{})
	if err != nil {
		return Stats{}, s.mapError(err)
	}
	return Stats{Users: resp.Users, Tags: resp.Tags, Pairs: resp.Pairs}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorValidation)
	case codes.NotFound:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorNotFound)
	case codes.Internal:
		return common.ErrorInternal
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
