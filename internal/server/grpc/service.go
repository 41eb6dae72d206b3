package grpc

import (
	"context"

	"github.com/dmitrijs2005/staffdesk/internal/api"
	"google.golang.org/grpc"
)

// CredentialStoreServer is the server side of the store contract.
type CredentialStoreServer interface {
	FindAccount(context.Context, *api.FindAccountRequest) (*api.AccountResponse, error)
	GetAccount(context.Context, *api.GetAccountRequest) (*api.AccountResponse, error)
	ListCredentials(context.Context, *api.ListCredentialsRequest) (*api.ListCredentialsResponse, error)
	Ping(context.Context, *api.PingRequest) (*api.PingResponse, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: api.ServiceName,
	HandlerType: (*CredentialStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: api.FindAccount,
			Handler:    unaryHandler(api.MethodFindAccount, CredentialStoreServer.FindAccount),
		},
		{
			MethodName: api.GetAccount,
			Handler:    unaryHandler(api.MethodGetAccount, CredentialStoreServer.GetAccount),
		},
		{
			MethodName: api.ListCredentials,
			Handler:    unaryHandler(api.MethodListCredentials, CredentialStoreServer.ListCredentials),
		},
		{
			MethodName: api.Ping,
			Handler:    unaryHandler(api.MethodPing, CredentialStoreServer.Ping),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "staffdesk/store",
}

// unaryHandler adapts a typed server method to grpc.MethodHandler, decoding
// the request with whatever codec the call selected.
func unaryHandler[Req, Resp any](fullMethod string, call func(CredentialStoreServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(CredentialStoreServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CredentialStoreServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RegisterCredentialStoreServer registers impl on s.
func RegisterCredentialStoreServer(s grpc.ServiceRegistrar, impl CredentialStoreServer) {
	s.RegisterService(&serviceDesc, impl)
}
