package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/staffdesk/internal/api"
	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const consoleIDKey ctxKey = "consoleID"

// ConsoleIDFromContext returns the console id the api key was issued to.
func ConsoleIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(consoleIDKey).(string)
	return id, ok
}

// apiKeyInterceptor requires a valid api key on every method except Ping.
func (s *GRPCServer) apiKeyInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if info.FullMethod == api.MethodPing {
		return handler(ctx, req)
	}

	var apiKey string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.APIKeyHeaderName)
		if len(values) > 0 {
			apiKey = values[0]
		}
	}
	if len(apiKey) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing api key")
	}

	consoleID, err := auth.ParseAPIKey(apiKey, s.apiSecret)
	if err != nil {
		s.logger.Warn(ctx, "rejected api key", "method", info.FullMethod, "expired", errors.Is(err, common.ErrTokenExpired))
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	ctx = context.WithValue(ctx, consoleIDKey, consoleID)

	return handler(ctx, req)
}
