package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/qrscanner/internal/billingpb"
	"github.com/dmitrijs2005/qrscanner/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const accountIDKey ctxKey = "accountID"

func accountIDFromMetadata(ctx context.Context) (string, error) {
	var accountID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccountIDHeaderName)
		if len(values) > 0 {
			accountID = values[0]
		}
	}
	if len(accountID) == 0 {
		return "", status.Error(codes.Unauthenticated, "missing account id")
	}
	return accountID, nil
}

func accountIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(accountIDKey).(string)
	return v
}

func (s *GRPCServer) accountIDInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if info.FullMethod == pb.Billing_Ping_FullMethodName {
		// reachable without an account so clients can check availability
		return handler(ctx, req)
	}

	accountID, err := accountIDFromMetadata(ctx)
	if err != nil {
		return nil, err
	}

	return handler(context.WithValue(ctx, accountIDKey, accountID), req)
}

type accountStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *accountStream) Context() context.Context { return w.ctx }

func (s *GRPCServer) accountIDStreamInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	accountID, err := accountIDFromMetadata(ss.Context())
	if err != nil {
		return err
	}

	ctx := context.WithValue(ss.Context(), accountIDKey, accountID)
	return handler(srv, &accountStream{ServerStream: ss, ctx: ctx})
}
