package client

import (
	"time"

	pb "github.com/dmitrijs2005/qrscanner/internal/billingpb"
	"github.com/dmitrijs2005/qrscanner/internal/client/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func purchaseFromPB(p *pb.Purchase) models.Purchase {
	return models.Purchase{
		OrderID:      p.GetOrderId(),
		ProductIDs:   p.GetProductIds(),
		Token:        p.GetToken(),
		State:        models.PurchaseState(p.GetState()),
		Acknowledged: p.GetAcknowledged(),
		PurchaseTime: purchaseTime(p.GetPurchaseTime()),
	}
}

// purchaseTime leaves pending purchases, which carry no timestamp, at the
// zero time.
func purchaseTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func purchasesFromPB(in []*pb.Purchase) []models.Purchase {
	out := make([]models.Purchase, 0, len(in))
	for _, p := range in {
		if p == nil {
			continue
		}
		out = append(out, purchaseFromPB(p))
	}
	return out
}

func productFromPB(p *pb.ProductDetails) models.ProductDetails {
	d := models.ProductDetails{
		ProductID:      p.GetProductId(),
		Category:       models.Category(p.Category),
		Title:          p.Title,
		Description:    p.Description,
		FormattedPrice: p.FormattedPrice,
	}
	for _, o := range p.Offers {
		if o == nil {
			continue
		}
		d.Offers = append(d.Offers, models.Offer{Token: o.Token, BasePlanID: o.GetBasePlanId()})
	}
	return d
}

func updateFromPB(u *pb.PurchaseUpdate) models.PurchaseUpdate {
	return models.PurchaseUpdate{
		Code:         models.ResponseCode(u.ResponseCode),
		DebugMessage: u.DebugMessage,
		Purchases:    purchasesFromPB(u.Purchases),
	}
}
