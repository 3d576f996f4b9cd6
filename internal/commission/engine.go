// Package commission computes the platform's per-line margin for each
// merchant's commission scheme, plus the return/refund terms that apply.
package commission

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/argentostore/storefront/internal/domain"
)

var two = decimal.NewFromInt(2)

// Calculate computes the commission for one product line of one merchant.
// Dispatch is on the merchant's commission type; unknown or none-typed
// merchants earn zero. The result always carries the resolved return terms.
func Calculate(merchant *domain.Merchant, line domain.CommissionLine, ctx domain.OrderContext) domain.CommissionResult {
	qty := decimal.NewFromInt(int64(line.Quantity))
	result := domain.CommissionResult{
		ProductID:    line.ProductID,
		ProductName:  line.ProductName,
		MerchantID:   merchant.ID,
		MerchantName: merchant.Name,
		Type:         merchant.CommissionType,
		Quantity:     line.Quantity,
		UnitPrice:    line.UnitPrice,
		TotalPrice:   line.UnitPrice.Mul(qty),
	}

	switch merchant.CommissionType {
	case domain.CommissionFixedVariable:
		cfg := merchant.FixedVariable
		if line.ManualValue != nil {
			perUnit := *line.ManualValue
			result.Amount = perUnit.Mul(qty)
			result.PerUnit = perUnit
			result.Calculation = "manual_per_product"
			result.Details = fmt.Sprintf("عمولة يدوية: %s ج × %d قطعة", perUnit.String(), line.Quantity)
		} else {
			perUnit := decimal.Zero
			if cfg != nil {
				perUnit = cfg.DefaultPerUnit
			}
			result.Amount = perUnit.Mul(qty)
			result.PerUnit = perUnit
			result.Calculation = "default"
			result.Details = fmt.Sprintf("عمولة افتراضية: %s ج × %d قطعة", perUnit.String(), line.Quantity)
		}

	case domain.CommissionPercentageVariable:
		cfg := merchant.PercentageVariable
		if line.ManualValue != nil {
			rate := line.ManualValue.Div(decimal.NewFromInt(100))
			result.Amount = line.UnitPrice.Mul(rate).Mul(qty)
			result.Rate = rate
			result.Calculation = "manual_percentage"
			result.Details = fmt.Sprintf("نسبة يدوية: %s%% من %s ج", line.ManualValue.String(), result.TotalPrice.StringFixed(2))
		} else {
			rate := decimal.Zero
			if cfg != nil {
				rate = cfg.MinRate.Add(cfg.MaxRate).Div(two)
			}
			result.Amount = line.UnitPrice.Mul(rate).Mul(qty)
			result.Rate = rate
			result.Calculation = "average_range"
			result.Details = fmt.Sprintf("نسبة متوسطة: %s%% من %s ج",
				rate.Mul(decimal.NewFromInt(100)).StringFixed(1), result.TotalPrice.StringFixed(2))
		}

	case domain.CommissionPercentageFixedDual:
		cfg := merchant.DualPercentage
		productRate := decimal.Zero
		offerRate := decimal.Zero
		if cfg != nil {
			productRate = cfg.ProductRate
			offerRate = cfg.OfferRate
		}
		result.BaseAmount = line.UnitPrice.Mul(productRate).Mul(qty)
		if ctx.HasMerchantOffer {
			result.OfferAmount = ctx.MerchantOfferTotal.Mul(offerRate)
		}
		result.Amount = result.BaseAmount.Add(result.OfferAmount)
		result.Calculation = "dual_percentage"
		result.Details = fmt.Sprintf(
			"%s (%s%% على السعر + %s%% على العروض):\n• من سعر المنتج: %s ج\n• من العروض: %s ج",
			merchant.Name,
			productRate.Mul(decimal.NewFromInt(100)).StringFixed(0),
			offerRate.Mul(decimal.NewFromInt(100)).StringFixed(0),
			result.BaseAmount.StringFixed(2),
			result.OfferAmount.StringFixed(2),
		)

	case domain.CommissionComplexExternal:
		// The terms live in an offline document; the amount is settled manually.
		result.Amount = decimal.Zero
		result.Calculation = "external_document"
		result.RequiresManualCalculation = true
		result.Details = "يتم حساب العمولة يدويًا من الملف الخارجي (أسعار، خصومات، مرتجعات)"

	default:
		result.Amount = decimal.Zero
		result.Calculation = "none"
		result.Details = "لا توجد عمولة محددة"
	}

	result.ReturnTerms = returnTerms(merchant, ctx.ShippingCost)
	return result
}

// returnTerms resolves the merchant's return policy against the order's
// shipping cost.
func returnTerms(merchant *domain.Merchant, shippingCost decimal.Decimal) domain.ReturnTerms {
	policy := merchant.ReturnPolicy
	return domain.ReturnTerms{
		Responsible:          policy.Responsible,
		ShippingRefundRate:   policy.ShippingRefundRate,
		ShippingRefundAmount: shippingCost.Mul(policy.ShippingRefundRate),
		Notes:                policy.Notes,
	}
}

// PlanCartons computes the whole-carton purchase needed to cover a requested
// quantity from a wholesale merchant. The requested quantity is rounded up to
// full cartons for purchasing; the customer is charged for the requested
// quantity only.
func PlanCartons(requestedQty, packSize int, wholesalePrice, unitPrice decimal.Decimal) domain.CartonPlan {
	if packSize < 1 {
		packSize = 1
	}
	if requestedQty < 0 {
		requestedQty = 0
	}

	cartons := (requestedQty + packSize - 1) / packSize
	actual := cartons * packSize
	actualDec := decimal.NewFromInt(int64(actual))

	plan := domain.CartonPlan{
		CartonsNeeded:  cartons,
		ActualQuantity: actual,
		PurchaseCost:   wholesalePrice.Mul(actualDec),
		SalesRevenue:   unitPrice.Mul(decimal.NewFromInt(int64(requestedQty))),
		ExcessQuantity: actual - requestedQty,
	}
	plan.Profit = plan.SalesRevenue.Sub(plan.PurchaseCost)
	if actual > 0 {
		plan.UnitCost = plan.PurchaseCost.Div(actualDec)
	}
	return plan
}
