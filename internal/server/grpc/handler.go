package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/staffdesk/internal/api"
	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) FindAccount(ctx context.Context, req *api.FindAccountRequest) (*api.AccountResponse, error) {
	defer common.WipeByteArray(req.Password)

	consoleID, _ := ConsoleIDFromContext(ctx)

	account, err := s.accounts.Lookup(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Info(ctx, "No matching account", "console", consoleID)
			return nil, status.Error(codes.NotFound, "not found")
		}
		s.logger.Error(ctx, "Account lookup failed", "console", consoleID, "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &api.AccountResponse{Account: toAPIAccount(account)}, nil
}

func (s *GRPCServer) GetAccount(ctx context.Context, req *api.GetAccountRequest) (*api.AccountResponse, error) {
	account, err := s.accounts.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "not found")
		}
		s.logger.Error(ctx, "Account fetch failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &api.AccountResponse{Account: toAPIAccount(account)}, nil
}

func (s *GRPCServer) ListCredentials(ctx context.Context, req *api.ListCredentialsRequest) (*api.ListCredentialsResponse, error) {
	list, err := s.accounts.ListCredentials(ctx)
	if err != nil {
		s.logger.Error(ctx, "Credential listing failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &api.ListCredentialsResponse{Credentials: make([]api.Credential, 0, len(list))}
	for _, c := range list {
		resp.Credentials = append(resp.Credentials, api.Credential{CredentialID: c.CredentialID, AccountID: c.AccountID})
	}

	return resp, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func toAPIAccount(a *models.Account) api.Account {
	return api.Account{
		ID:       a.ID,
		Username: a.Username,
		RoleID:   a.Role.ID,
		RoleName: a.Role.Name,
		IsActive: a.IsActive,
	}
}
