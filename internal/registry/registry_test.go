package registry

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argentostore/storefront/internal/domain"
)

func TestMerchantsRegistryValidates(t *testing.T) {
	r := NewMerchants()
	require.NoError(t, r.Validate())
	assert.Len(t, r.All(), 5)
}

func TestMerchantsLookup(t *testing.T) {
	r := NewMerchants()

	castel := r.Lookup(MerchantCastelPharma)
	assert.Equal(t, domain.CommissionPercentageFixedDual, castel.CommissionType)
	require.NotNil(t, castel.DualPercentage)
	assert.True(t, castel.DualPercentage.ProductRate.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, castel.DualPercentage.OfferRate.Equal(decimal.NewFromFloat(0.05)))

	azucar := r.Lookup(MerchantAzucar)
	require.NotNil(t, azucar.FixedVariable)
	assert.True(t, azucar.FixedVariable.DefaultPerUnit.Equal(decimal.NewFromInt(10)))
	assert.True(t, azucar.NeedsManualCommissionEntry())

	fofo := r.Lookup(MerchantFofo)
	require.NotNil(t, fofo.FixedVariable)
	assert.True(t, fofo.FixedVariable.DefaultPerUnit.Equal(decimal.NewFromInt(5)))

	unilever := r.Lookup(MerchantUnilever)
	assert.False(t, unilever.AllowsPartialQuantities())
	assert.Equal(t, UnileverPackSize, unilever.MinOrderQuantity())

	house := r.Lookup(MerchantHouse)
	assert.Equal(t, domain.CommissionNone, house.CommissionType)
	assert.True(t, house.ReturnPolicy.ShippingRefundRate.Equal(decimal.NewFromInt(1)))
}

func TestMerchantsLookupUnknownFallsBack(t *testing.T) {
	r := NewMerchants()

	m := r.Lookup("SOMEBODY-ELSE")
	assert.Equal(t, MerchantUnknown, m.ID)
	assert.Equal(t, domain.CommissionNone, m.CommissionType)
	assert.False(t, r.Known("SOMEBODY-ELSE"))
	assert.True(t, r.Known(MerchantAzucar))
}

func TestGeoCanonicalCity(t *testing.T) {
	g := NewGeo()

	city, fellBack := g.CanonicalCity("القاهرة")
	assert.Equal(t, "Cairo", city)
	assert.False(t, fellBack)

	city, fellBack = g.CanonicalCity("مدينة لا وجود لها")
	assert.Equal(t, DefaultCity, city)
	assert.True(t, fellBack)

	area, fellBack := g.CanonicalArea("المعادي")
	assert.Equal(t, "Maadi", area)
	assert.False(t, fellBack)

	area, fellBack = g.CanonicalArea("")
	assert.Equal(t, DefaultArea, area)
	assert.True(t, fellBack)
}

func TestGeoTablesAreCopies(t *testing.T) {
	g := NewGeo()

	cities := g.Cities()
	cities["القاهرة"] = "Mutated"

	city, _ := g.CanonicalCity("القاهرة")
	assert.Equal(t, "Cairo", city)
}

func TestSendersResolve(t *testing.T) {
	s := NewSenders()

	azucar := s.Resolve(MerchantAzucar)
	assert.Equal(t, "Azúcar", azucar.Name)
	assert.Equal(t, "01017549330", azucar.Phone)
	assert.Equal(t, "Sharqia", azucar.City)

	fallback := s.Resolve(MerchantHouse)
	assert.Equal(t, "Argento Store", fallback.Name)

	assert.Equal(t, fallback, s.Resolve("whoever"))
}
