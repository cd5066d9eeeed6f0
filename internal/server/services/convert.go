package services

import (
	pb "github.com/dmitrijs2005/qrscanner/internal/billingpb"
	"github.com/dmitrijs2005/qrscanner/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func purchaseToPB(p models.Purchase) *pb.Purchase {
	state := pb.StateUnspecified
	switch p.State {
	case models.StatePurchased:
		state = pb.StatePurchased
	case models.StatePending:
		state = pb.StatePending
	}

	out := &pb.Purchase{
		OrderId:      p.OrderID,
		ProductIds:   []string{p.ProductID},
		Token:        p.Token,
		State:        state,
		Acknowledged: p.Acknowledged,
	}
	if !p.PurchasedAt.IsZero() {
		out.PurchaseTime = timestamppb.New(p.PurchasedAt)
	}
	return out
}

func productToPB(p models.Product) *pb.ProductDetails {
	d := &pb.ProductDetails{
		ProductId:      p.ID,
		Category:       p.Category,
		Title:          p.Title,
		Description:    p.Description,
		FormattedPrice: p.FormattedPrice(),
	}
	if p.Category == models.CategorySubs {
		d.Offers = []*pb.Offer{{Token: offerToken(p), BasePlanId: p.BasePlanID}}
	}
	return d
}
