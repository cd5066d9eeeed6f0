// Package grpc exposes the billing service over gRPC.
package grpc

import (
	"context"
	"net"

	pb "github.com/dmitrijs2005/qrscanner/internal/billingpb"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"google.golang.org/grpc"
)

// Billing is the purchase-processing logic behind the endpoint.
type Billing interface {
	Ping(ctx context.Context) (string, error)
	QueryPurchases(ctx context.Context, accountID, category string) ([]*pb.Purchase, error)
	QueryProductDetails(ctx context.Context, category string, ids []string) ([]*pb.ProductDetails, error)
	LaunchPurchaseFlow(ctx context.Context, accountID, productID, offerToken string) (*pb.LaunchPurchaseFlowResponse, error)
	Acknowledge(ctx context.Context, accountID, token string) error
	Subscribe(ctx context.Context, accountID string) (<-chan *pb.PurchaseUpdate, error)
}

type GRPCServer struct {
	pb.UnimplementedBillingServer
	address string
	billing Billing
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, b Billing) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		billing: b,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accountIDInterceptor),
		grpc.ChainStreamInterceptor(s.accountIDStreamInterceptor),
	)
	pb.RegisterBillingServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
