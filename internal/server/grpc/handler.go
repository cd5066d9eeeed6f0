package grpc

import (
	"context"
	"errors"

	pb "github.com/dmitrijs2005/qrscanner/internal/billingpb"
	"github.com/dmitrijs2005/qrscanner/internal/common"
	"github.com/dmitrijs2005/qrscanner/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC codes; anything unexpected is logged
// and reported as Internal.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.InvalidArgument, "invalid purchase token")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.PermissionDenied, "purchase belongs to another account")
	case errors.Is(err, services.ErrInvalidCategory):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	s.logger.Error(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	st, err := s.billing.Ping(ctx)
	if err != nil {
		return nil, status.Error(codes.Unavailable, "billing storage unavailable")
	}
	return &pb.PingResponse{Status: st}, nil
}

func (s *GRPCServer) QueryPurchases(ctx context.Context, req *pb.QueryPurchasesRequest) (*pb.QueryPurchasesResponse, error) {
	list, err := s.billing.QueryPurchases(ctx, accountIDFromContext(ctx), req.GetCategory())
	if err != nil {
		return nil, s.toStatus(ctx, "QueryPurchases", err)
	}
	return &pb.QueryPurchasesResponse{Purchases: list}, nil
}

func (s *GRPCServer) QueryProductDetails(ctx context.Context, req *pb.QueryProductDetailsRequest) (*pb.QueryProductDetailsResponse, error) {
	list, err := s.billing.QueryProductDetails(ctx, req.GetCategory(), req.GetProductIds())
	if err != nil {
		return nil, s.toStatus(ctx, "QueryProductDetails", err)
	}
	return &pb.QueryProductDetailsResponse{Products: list}, nil
}

func (s *GRPCServer) LaunchPurchaseFlow(ctx context.Context, req *pb.LaunchPurchaseFlowRequest) (*pb.LaunchPurchaseFlowResponse, error) {
	resp, err := s.billing.LaunchPurchaseFlow(ctx, accountIDFromContext(ctx), req.GetProductId(), req.GetOfferToken())
	if err != nil {
		return nil, s.toStatus(ctx, "LaunchPurchaseFlow", err)
	}
	return resp, nil
}

func (s *GRPCServer) Acknowledge(ctx context.Context, req *pb.AcknowledgeRequest) (*pb.AcknowledgeResponse, error) {
	if err := s.billing.Acknowledge(ctx, accountIDFromContext(ctx), req.GetToken()); err != nil {
		return nil, s.toStatus(ctx, "Acknowledge", err)
	}
	return &pb.AcknowledgeResponse{}, nil
}

// PurchaseUpdates streams the caller's purchase updates until the client goes
// away or the server stops.
func (s *GRPCServer) PurchaseUpdates(req *pb.PurchaseUpdatesRequest, stream pb.Billing_PurchaseUpdatesServer) error {
	ctx := stream.Context()
	accountID := accountIDFromContext(ctx)

	updates, err := s.billing.Subscribe(ctx, accountID)
	if err != nil {
		return s.toStatus(ctx, "PurchaseUpdates", err)
	}

	s.logger.Debug(ctx, "purchase update stream opened", "account", accountID)
	defer s.logger.Debug(ctx, "purchase update stream closed", "account", accountID)

	for {
		select {
		case <-ctx.Done():
			return nil
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			if err := stream.Send(u); err != nil {
				return err
			}
		}
	}
}
