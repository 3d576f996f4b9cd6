// Package registry holds the static configuration the storefront runs on:
// the closed merchant enumeration, the shipment sender profiles, and the
// city/area translation tables. Everything here is built once at startup and
// treated as immutable.
package registry

import (
	"github.com/shopspring/decimal"

	"github.com/argentostore/storefront/internal/domain"
)

// Merchant identifiers. The set is closed; anything else resolves to the
// fallback merchant.
const (
	MerchantCastelPharma = "CASTELPHARMA"
	MerchantAzucar       = "SUDIID"
	MerchantUnilever     = "UNILEVERID"
	MerchantFofo         = "FOFO"
	MerchantHouse        = "BUSSNISID"
	MerchantUnknown      = "UNKNOWN"
)

// UnileverPackSize is the carton size for the wholesale merchant.
const UnileverPackSize = 24

// Merchants is the static merchant registry.
type Merchants struct {
	byID     map[string]*domain.Merchant
	fallback *domain.Merchant
}

// NewMerchants builds the merchant registry.
func NewMerchants() *Merchants {
	half := decimal.NewFromFloat(0.5)
	five := decimal.NewFromFloat(0.05)

	merchants := []*domain.Merchant{
		{
			ID:             MerchantCastelPharma,
			Name:           "كاستيل فارما",
			ContactName:    "شركة كاستيل فارما",
			Phone:          "+20 10 64147284",
			Address:        "الزقازيق الشرقية، حي الزهور",
			CommissionType: domain.CommissionPercentageFixedDual,
			DualPercentage: &domain.DualPercentageCommission{
				ProductRate: five,
				OfferRate:   five,
			},
			ReturnPolicy: domain.ReturnPolicy{
				Responsible:        domain.ReturnResponsibleMerchant,
				ShippingRefundRate: half,
				Notes:              "المرتجعات على التاجر، استرداد 50% من مصاريف الشحن",
			},
			Notes: "5% على العروض + 5% على السعر. المرتجعات على التاجر",
		},
		{
			ID:             MerchantAzucar,
			Name:           "Azúcar",
			ContactName:    "Azúcar",
			Phone:          "+20 10 17549330",
			Address:        "الزقازيق الشرقية، حي الزهور",
			CommissionType: domain.CommissionFixedVariable,
			FixedVariable: &domain.FixedVariableCommission{
				DefaultPerUnit:   decimal.NewFromInt(10),
				MinPerUnit:       decimal.NewFromInt(5),
				MaxPerUnit:       decimal.NewFromInt(50),
				PerProductManual: true,
			},
			ReturnPolicy: domain.ReturnPolicy{
				Responsible:        domain.ReturnResponsibleMerchant,
				ShippingRefundRate: half,
				Notes:              "المرتجعات على التاجر، استرداد 50% من مصاريف الشحن",
			},
			Notes: "عمولة ثابتة تختلف حسب المنتج (تدخل يدويًا)",
		},
		{
			ID:             MerchantFofo,
			Name:           "Fofo",
			ContactName:    "Fofo",
			Phone:          "+20 12 12137256",
			Address:        "الزقازيق الشرقية، حي الزهور",
			CommissionType: domain.CommissionFixedVariable,
			FixedVariable: &domain.FixedVariableCommission{
				DefaultPerUnit:   decimal.NewFromInt(5),
				MinPerUnit:       decimal.NewFromInt(3),
				MaxPerUnit:       decimal.NewFromInt(20),
				PerProductManual: true,
			},
			ReturnPolicy: domain.ReturnPolicy{
				Responsible:        domain.ReturnResponsibleMerchant,
				ShippingRefundRate: half,
				Notes:              "المرتجعات على التاجر، استرداد 50% من مصاريف الشحن",
			},
			Notes: "عمولة ثابتة تختلف حسب المنتج (تدخل يدويًا)",
		},
		{
			ID:             MerchantUnilever,
			Name:           "يونيليفر",
			ContactName:    "يونيليفر",
			Phone:          "01055688136",
			Address:        "الزقازيق الشرقية، حي الزهور",
			CommissionType: domain.CommissionComplexExternal,
			External: &domain.ExternalCommission{
				Source:   "price_sheet",
				PackSize: UnileverPackSize,
			},
			ReturnPolicy: domain.ReturnPolicy{
				Responsible:        domain.ReturnResponsiblePlatform,
				ShippingRefundRate: half,
				Notes:              "المرتجعات على حسابي، استرداد 50% من مصاريف الشحن",
			},
			Notes: "نظام عمولات من ملف خارجي. البيع بالكرتونة الكاملة فقط",
		},
		{
			ID:             MerchantHouse,
			Name:           "متجر Argento",
			ContactName:    "مدير المتجر",
			Phone:          "01055688136",
			Address:        "الزقازيق الشرقية، حي الزهور",
			CommissionType: domain.CommissionNone,
			ReturnPolicy: domain.ReturnPolicy{
				Responsible:        domain.ReturnResponsiblePlatform,
				ShippingRefundRate: decimal.NewFromInt(1),
				Notes:              "منتجات المتجر الرئيسي",
			},
			Notes: "الكتالوج الرئيسي للمتجر",
		},
	}

	byID := make(map[string]*domain.Merchant, len(merchants))
	for _, m := range merchants {
		byID[m.ID] = m
	}

	return &Merchants{
		byID: byID,
		fallback: &domain.Merchant{
			ID:             MerchantUnknown,
			Name:           "تاجر غير معروف",
			CommissionType: domain.CommissionNone,
			ReturnPolicy: domain.ReturnPolicy{
				Responsible:        domain.ReturnResponsiblePlatform,
				ShippingRefundRate: half,
			},
		},
	}
}

// Lookup resolves a merchant id, falling back to the zero-commission unknown
// merchant rather than failing.
func (r *Merchants) Lookup(merchantID string) *domain.Merchant {
	if m, ok := r.byID[merchantID]; ok {
		return m
	}
	return r.fallback
}

// Known reports whether the id belongs to the closed merchant set.
func (r *Merchants) Known(merchantID string) bool {
	_, ok := r.byID[merchantID]
	return ok
}

// All returns the registered merchants.
func (r *Merchants) All() []*domain.Merchant {
	out := make([]*domain.Merchant, 0, len(r.byID))
	for _, m := range r.byID {
		out = append(out, m)
	}
	return out
}

// Validate checks every registered merchant's commission payload.
func (r *Merchants) Validate() error {
	for _, m := range r.byID {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}
