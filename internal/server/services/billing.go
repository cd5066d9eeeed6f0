// Package services implements the sandbox purchase-processing logic shared by
// the gRPC billing endpoint and the HTTP checkout API.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	pb "github.com/dmitrijs2005/qrscanner/internal/billingpb"
	"github.com/dmitrijs2005/qrscanner/internal/common"
	"github.com/dmitrijs2005/qrscanner/internal/dbx"
	"github.com/dmitrijs2005/qrscanner/internal/logging"
	"github.com/dmitrijs2005/qrscanner/internal/server/config"
	"github.com/dmitrijs2005/qrscanner/internal/server/models"
	"github.com/dmitrijs2005/qrscanner/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/qrscanner/internal/server/tokens"
	"github.com/dmitrijs2005/qrscanner/internal/server/updates"
	"github.com/google/uuid"
)

// now is a seam for tests.
var now = time.Now

// CheckoutView is what the checkout page shows for a launched flow.
type CheckoutView struct {
	Purchase models.Purchase
	Product  models.Product
	Expired  bool
}

type BillingService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	broker          updates.Broker
	secret          []byte
	checkoutBaseURL string
	checkoutTTL     time.Duration
	logger          logging.Logger
}

func NewBillingService(db *sql.DB, m repomanager.RepositoryManager, broker updates.Broker, cfg *config.Config, logger logging.Logger) *BillingService {
	return &BillingService{
		db:              db,
		repomanager:     m,
		broker:          broker,
		secret:          []byte(cfg.TokenSecret),
		checkoutBaseURL: strings.TrimRight(cfg.CheckoutBaseURL, "/"),
		checkoutTTL:     cfg.CheckoutTTL,
		logger:          logger.With("module", "billing_service"),
	}
}

func validCategory(category string) bool {
	return category == models.CategorySubs || category == models.CategoryInApp
}

// offerToken identifies the single offer of a subscription's base plan.
func offerToken(p models.Product) string {
	return p.ID + ":" + p.BasePlanID
}

// Ping reports "OK" when the database is reachable.
func (s *BillingService) Ping(ctx context.Context) (string, error) {
	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn(ctx, "database ping failed", "error", err)
		return "", fmt.Errorf("db error: %w", err)
	}
	return "OK", nil
}

func (s *BillingService) QueryPurchases(ctx context.Context, accountID, category string) ([]*pb.Purchase, error) {
	if !validCategory(category) {
		return nil, ErrInvalidCategory
	}

	list, err := s.repomanager.Purchases(s.db).ListByAccount(ctx, accountID, category)
	if err != nil {
		return nil, fmt.Errorf("error listing purchases: %w", err)
	}

	out := make([]*pb.Purchase, 0, len(list))
	for _, p := range list {
		out = append(out, purchaseToPB(p))
	}
	return out, nil
}

func (s *BillingService) QueryProductDetails(ctx context.Context, category string, ids []string) ([]*pb.ProductDetails, error) {
	if !validCategory(category) {
		return nil, ErrInvalidCategory
	}

	list, err := s.repomanager.Products(s.db).List(ctx, category, ids)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}

	out := make([]*pb.ProductDetails, 0, len(list))
	for _, p := range list {
		out = append(out, productToPB(p))
	}
	return out, nil
}

// LaunchPurchaseFlow records a pending purchase and returns the checkout URL
// that completes it. Catalog problems are reported through the response code,
// not as errors.
func (s *BillingService) LaunchPurchaseFlow(ctx context.Context, accountID, productID, offer string) (*pb.LaunchPurchaseFlowResponse, error) {
	product, err := s.repomanager.Products(s.db).Get(ctx, productID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &pb.LaunchPurchaseFlowResponse{
				ResponseCode: pb.CodeItemUnavailable,
				DebugMessage: "unknown product " + productID,
			}, nil
		}
		return nil, fmt.Errorf("error loading product: %w", err)
	}

	if product.Category == models.CategorySubs && offer != offerToken(*product) {
		return &pb.LaunchPurchaseFlowResponse{
			ResponseCode: pb.CodeDeveloperError,
			DebugMessage: "missing or unknown offer token",
		}, nil
	}

	var resp *pb.LaunchPurchaseFlowResponse
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Purchases(tx)

		owned, err := repo.ListByAccount(ctx, accountID, product.Category)
		if err != nil {
			return fmt.Errorf("error listing purchases: %w", err)
		}
		for _, p := range owned {
			if p.ProductID == productID && p.State == models.StatePurchased {
				resp = &pb.LaunchPurchaseFlowResponse{
					ResponseCode: pb.CodeItemAlreadyOwned,
					DebugMessage: productID + " is already owned",
				}
				return nil
			}
		}

		id := uuid.NewString()
		token, err := tokens.GenerateToken(id, accountID, productID, s.secret)
		if err != nil {
			return fmt.Errorf("error signing purchase token: %w", err)
		}

		purchase := &models.Purchase{
			ID:        id,
			OrderID:   "GPA." + strings.ToUpper(uuid.NewString()),
			AccountID: accountID,
			ProductID: productID,
			Token:     token,
			State:     models.StatePending,
		}
		if err := repo.Create(ctx, purchase); err != nil {
			return fmt.Errorf("error creating purchase: %w", err)
		}

		resp = &pb.LaunchPurchaseFlowResponse{
			ResponseCode: pb.CodeOK,
			CheckoutUrl:  s.checkoutBaseURL + "/checkout/" + token,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resp.ResponseCode == pb.CodeOK {
		s.logger.Info(ctx, "purchase flow launched", "account", accountID, "product", productID)
	}
	return resp, nil
}

// Acknowledge marks the caller's purchase as acknowledged.
func (s *BillingService) Acknowledge(ctx context.Context, accountID, token string) error {
	claims, err := tokens.ParseToken(token, s.secret)
	if err != nil {
		return err
	}
	if claims.AccountID != accountID {
		return common.ErrorUnauthorized
	}

	if err := s.repomanager.Purchases(s.db).Acknowledge(ctx, claims.PurchaseID); err != nil {
		return err
	}
	s.logger.Info(ctx, "purchase acknowledged", "account", accountID, "purchase", claims.PurchaseID)
	return nil
}

func (s *BillingService) loadByToken(ctx context.Context, token string) (*models.Purchase, error) {
	if _, err := tokens.ParseToken(token, s.secret); err != nil {
		return nil, err
	}
	return s.repomanager.Purchases(s.db).GetByToken(ctx, token)
}

func (s *BillingService) expired(p *models.Purchase) bool {
	return p.State == models.StatePending && s.checkoutTTL > 0 && now().Sub(p.CreatedAt) > s.checkoutTTL
}

func (s *BillingService) Checkout(ctx context.Context, token string) (*CheckoutView, error) {
	purchase, err := s.loadByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	product, err := s.repomanager.Products(s.db).Get(ctx, purchase.ProductID)
	if err != nil {
		return nil, fmt.Errorf("error loading product: %w", err)
	}

	return &CheckoutView{Purchase: *purchase, Product: *product, Expired: s.expired(purchase)}, nil
}

// Confirm completes a pending purchase and notifies the account's update
// streams.
func (s *BillingService) Confirm(ctx context.Context, token string) (*models.Purchase, error) {
	purchase, err := s.loadByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if purchase.State != models.StatePending {
		return nil, ErrAlreadyCompleted
	}
	if s.expired(purchase) {
		return nil, ErrCheckoutExpired
	}

	done, err := s.repomanager.Purchases(s.db).MarkPurchased(ctx, purchase.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrAlreadyCompleted
		}
		return nil, err
	}

	s.logger.Info(ctx, "purchase confirmed", "account", done.AccountID, "product", done.ProductID)
	s.publish(ctx, done.AccountID, &pb.PurchaseUpdate{
		ResponseCode: pb.CodeOK,
		Purchases:    []*pb.Purchase{purchaseToPB(*done)},
	})
	return done, nil
}

// Cancel abandons a pending purchase and tells the account the user backed
// out.
func (s *BillingService) Cancel(ctx context.Context, token string) error {
	purchase, err := s.loadByToken(ctx, token)
	if err != nil {
		return err
	}
	if purchase.State != models.StatePending {
		return ErrAlreadyCompleted
	}

	if err := s.repomanager.Purchases(s.db).DeletePending(ctx, purchase.ID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrAlreadyCompleted
		}
		return err
	}

	s.logger.Info(ctx, "purchase canceled", "account", purchase.AccountID, "product", purchase.ProductID)
	s.publish(ctx, purchase.AccountID, &pb.PurchaseUpdate{
		ResponseCode: pb.CodeUserCanceled,
		DebugMessage: "user canceled the purchase",
	})
	return nil
}

// publish failures are logged only: the purchase itself already succeeded and
// the client picks it up on its next reconciliation.
func (s *BillingService) publish(ctx context.Context, accountID string, u *pb.PurchaseUpdate) {
	if err := s.broker.Publish(ctx, accountID, u); err != nil {
		s.logger.Error(ctx, "failed to publish purchase update", "account", accountID, "error", err)
	}
}

func (s *BillingService) Subscribe(ctx context.Context, accountID string) (<-chan *pb.PurchaseUpdate, error) {
	return s.broker.Subscribe(ctx, accountID)
}
