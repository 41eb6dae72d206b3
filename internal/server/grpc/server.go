// Package grpc exposes the credential store to consoles over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/staffdesk/internal/logging"
	"github.com/dmitrijs2005/staffdesk/internal/server/models"
	"google.golang.org/grpc"
)

// AccountService is the part of services.AccountService the endpoint needs.
type AccountService interface {
	Lookup(ctx context.Context, username string, password []byte) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	ListCredentials(ctx context.Context) ([]*models.BiometricCredential, error)
}

type GRPCServer struct {
	address   string
	accounts  AccountService
	logger    logging.Logger
	apiSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, as AccountService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		accounts:  as,
		apiSecret: []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.apiKeyInterceptor))

	// registers service
	RegisterCredentialStoreServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
