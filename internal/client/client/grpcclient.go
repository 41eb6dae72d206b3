package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/api"
	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const defaultRequestTimeout = 10 * time.Second

type invokeFunc func(ctx context.Context, method string, req, reply any) error

type GRPCClient struct {
	endpointURL string
	apiKey      string
	timeout     time.Duration
	conn        *grpc.ClientConn
	invoke      invokeFunc
}

func withAPIKey(ctx context.Context, key string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.APIKeyHeaderName, key)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) apiKeyInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.apiKey != "" {
		ctx = withAPIKey(ctx, s.apiKey)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient prepares a lazily-connecting client for endpointURL.
// A non-positive timeout selects the default.
func NewGRPCClient(endpointURL, apiKey string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	c := &GRPCClient{endpointURL: endpointURL, apiKey: apiKey, timeout: timeout}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(extra ...grpc.DialOption) error {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.apiKeyInterceptor),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(api.CodecName)),
	}

	conn, err := grpc.NewClient(s.endpointURL, append(opts, extra...)...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.invoke = func(ctx context.Context, method string, req, reply any) error {
		return conn.Invoke(ctx, method, req, reply)
	}
	return nil
}

func (s *GRPCClient) call(ctx context.Context, method string, req, reply any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.invoke(ctx, method, req, reply); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) FindAccountByUsername(ctx context.Context, username string, password []byte) (*models.Account, error) {
	resp := &api.AccountResponse{}
	if err := s.call(ctx, api.MethodFindAccount, &api.FindAccountRequest{Username: username, Password: password}, resp); err != nil {
		return nil, err
	}
	return toAccount(resp.Account), nil
}

func (s *GRPCClient) FindAccountByID(ctx context.Context, id string) (*models.Account, error) {
	resp := &api.AccountResponse{}
	if err := s.call(ctx, api.MethodGetAccount, &api.GetAccountRequest{ID: id}, resp); err != nil {
		return nil, err
	}
	return toAccount(resp.Account), nil
}

func (s *GRPCClient) ListBiometricCredentials(ctx context.Context) ([]models.BiometricCredential, error) {
	resp := &api.ListCredentialsResponse{}
	if err := s.call(ctx, api.MethodListCredentials, &api.ListCredentialsRequest{}, resp); err != nil {
		return nil, err
	}

	list := make([]models.BiometricCredential, 0, len(resp.Credentials))
	for _, c := range resp.Credentials {
		list = append(list, models.BiometricCredential{CredentialID: c.CredentialID, AccountID: c.AccountID})
	}
	return list, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp := &api.PingResponse{}
	if err := s.call(ctx, api.MethodPing, &api.PingRequest{}, resp); err != nil {
		return err
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func toAccount(a api.Account) *models.Account {
	return &models.Account{
		ID:       a.ID,
		Username: a.Username,
		Role:     models.Role{ID: a.RoleID, Name: a.RoleName},
		IsActive: a.IsActive,
	}
}
