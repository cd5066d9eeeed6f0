package client

import (
	"context"
	"fmt"
	"time"

	pb "github.com/dmitrijs2005/qrscanner/internal/billingpb"
	"github.com/dmitrijs2005/qrscanner/internal/client/billing"
	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"github.com/dmitrijs2005/qrscanner/internal/common"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var _ billing.Service = (*GRPCClient)(nil)

const pingTimeout = 3 * time.Second

// GRPCClient talks to the Billing service and implements billing.Service.
type GRPCClient struct {
	endpointURL string
	accountID   string
	conn        *grpc.ClientConn
	client      pb.BillingClient
	logger      logging.Logger
}

func withAccountID(ctx context.Context, accountID string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccountIDHeaderName, accountID)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accountIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withAccountID(ctx, s.accountID), method, req, reply, cc, opts...)
}

func (s *GRPCClient) accountIDStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(withAccountID(ctx, s.accountID), desc, cc, method, opts...)
}

// NewBillingClient dials endpointURL lazily; no traffic happens until the
// first call.
func NewBillingClient(endpointURL, accountID string, logger logging.Logger) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accountID: accountID, logger: logger}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accountIDInterceptor),
		grpc.WithStreamInterceptor(s.accountIDStreamInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewBillingClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

// StartConnection checks the service is reachable and subscribes to purchase
// updates. The returned session outlives ctx; it ends when the stream breaks
// or Close is called.
func (s *GRPCClient) StartConnection(ctx context.Context) (billing.Session, error) {
	if err := s.Ping(ctx); err != nil {
		return nil, err
	}

	sctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stream, err := s.client.PurchaseUpdates(sctx, &pb.PurchaseUpdatesRequest{})
	if err != nil {
		cancel()
		return nil, s.mapError(err)
	}

	sess := &grpcSession{
		cancel:  cancel,
		updates: make(chan models.PurchaseUpdate, 8),
		done:    make(chan struct{}),
	}
	go sess.pump(sctx, stream, s.logger)
	return sess, nil
}

func (s *GRPCClient) QueryPurchases(ctx context.Context, category models.Category) ([]models.Purchase, error) {
	resp, err := s.client.QueryPurchases(ctx, &pb.QueryPurchasesRequest{Category: string(category)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return purchasesFromPB(resp.Purchases), nil
}

func (s *GRPCClient) QueryProductDetails(ctx context.Context, category models.Category, productIDs []string) ([]models.ProductDetails, error) {
	req := &pb.QueryProductDetailsRequest{Category: string(category), ProductIds: productIDs}
	resp, err := s.client.QueryProductDetails(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]models.ProductDetails, 0, len(resp.Products))
	for _, p := range resp.Products {
		if p == nil {
			continue
		}
		out = append(out, productFromPB(p))
	}
	return out, nil
}

func (s *GRPCClient) LaunchPurchaseFlow(ctx context.Context, params models.FlowParams) (*models.LaunchResult, error) {
	req := &pb.LaunchPurchaseFlowRequest{ProductId: params.Product.ProductID, OfferToken: params.OfferToken}
	resp, err := s.client.LaunchPurchaseFlow(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.LaunchResult{
		Code:         models.ResponseCode(resp.ResponseCode),
		DebugMessage: resp.DebugMessage,
		CheckoutURL:  resp.GetCheckoutUrl(),
	}, nil
}

func (s *GRPCClient) Acknowledge(ctx context.Context, token string) error {
	_, err := s.client.Acknowledge(ctx, &pb.AcknowledgeRequest{Token: token})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

type grpcSession struct {
	cancel  context.CancelFunc
	updates chan models.PurchaseUpdate
	done    chan struct{}
}

func (s *grpcSession) Updates() <-chan models.PurchaseUpdate { return s.updates }
func (s *grpcSession) Done() <-chan struct{}                 { return s.done }

func (s *grpcSession) Close() error {
	s.cancel()
	return nil
}

func (s *grpcSession) pump(ctx context.Context, stream pb.Billing_PurchaseUpdatesClient, logger logging.Logger) {
	defer close(s.done)
	for {
		u, err := stream.Recv()
		if err != nil {
			if ctx.Err() == nil {
				logger.Warn(ctx, "purchase update stream ended", "error", err)
			}
			return
		}
		select {
		case s.updates <- updateFromPB(u):
		case <-ctx.Done():
			return
		}
	}
}
