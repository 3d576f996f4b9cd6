package speedaf

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argentostore/storefront/internal/domain"
	"github.com/argentostore/storefront/internal/registry"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"01012345678", "01012345678"},        // already 11 digits
		{"1012345678", "01012345678"},         // 10 digits missing the trunk zero
		{"201012345678", "01012345678"},       // country code
		{"+20 101 234 5678", "01012345678"},   // formatting stripped first
		{"010-1234-5678", "01012345678"},
		{"12345", PhonePlaceholder},           // too short
		{"0012345678901", PhonePlaceholder},   // 13 digits
		{"2212345678", PhonePlaceholder},      // 10 digits not starting with 1
		{"", PhonePlaceholder},
		{"not a phone", PhonePlaceholder},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), "input %q", tc.in)
	}
}

func TestComposeAddress(t *testing.T) {
	got := ComposeAddress(domain.ShippingDetails{
		Address:   "شارع الجلاء",
		Building:  "12",
		Floor:     "3",
		Apartment: "7",
		Landmark:  "صيدلية النور",
	})
	assert.Equal(t, "شارع الجلاء، مبنى 12، دور 3، شقة 7، بجوار صيدلية النور", got)
}

func TestComposeAddressPartial(t *testing.T) {
	got := ComposeAddress(domain.ShippingDetails{Address: "شارع الجلاء", Floor: "3"})
	assert.Equal(t, "شارع الجلاء، دور 3", got)
}

func TestComposeAddressEmpty(t *testing.T) {
	assert.Equal(t, "عنوان غير محدد", ComposeAddress(domain.ShippingDetails{}))
}

func sampleOrder() *domain.Order {
	o := domain.NewOrder(
		domain.Customer{Name: "أحمد محمد", Phone: "01012345678"},
		domain.ShippingDetails{Address: "شارع الجلاء", City: "القاهرة", Area: "المعادي"},
	)
	p := domain.Product{ID: "p1", Title: "كريم مرطب", Price: decimal.NewFromInt(150), MerchantID: "SUDIID"}
	p.Normalize()
	if err := o.AddLine(p, nil, 2, decimal.NewFromInt(20), ""); err != nil {
		panic(err)
	}
	o.ShippingCost = decimal.NewFromInt(65)
	return o
}

func TestFormatRecordLayout(t *testing.T) {
	f := NewFormatter(registry.NewGeo())
	order := sampleOrder()
	// recalc total after setting shipping directly
	require.NoError(t, order.UpdateQuantity("p1", 2))

	sender := registry.NewSenders().Resolve(registry.MerchantAzucar)
	rec := f.Format(order, sender)

	fields := rec.Fields()
	require.Len(t, fields, 22)
	assert.Len(t, Headers(), 22)

	assert.Equal(t, "", fields[0])
	assert.Equal(t, "Normal", fields[1])
	assert.Equal(t, "كريم مرطب", fields[2])
	assert.Equal(t, "1", fields[3], "one package regardless of units")
	assert.Equal(t, "1", fields[4])
	assert.Equal(t, "365", fields[5], "COD is the order total")
	assert.Equal(t, "No", fields[7])
	assert.Equal(t, "Azúcar", fields[9])
	assert.Equal(t, "01017549330", fields[10])
	assert.Equal(t, "Sharqia", fields[11])
	assert.Equal(t, "Zagazig", fields[12])
	assert.Equal(t, "أحمد محمد", fields[15])
	assert.Equal(t, "01012345678", fields[16])
	assert.Equal(t, "Cairo", fields[17])
	assert.Equal(t, "Maadi", fields[18])
	assert.Equal(t, "شارع الجلاء", fields[19])
	assert.Equal(t, "Deliver", fields[21])

	assert.Empty(t, rec.FallbackUsed)
	assert.Equal(t, strings.Join(fields, "\t"), rec.Row())
}

func TestFormatFallbacks(t *testing.T) {
	f := NewFormatter(registry.NewGeo())
	order := sampleOrder()
	order.Shipping.City = "مدينة مجهولة"
	order.Shipping.Area = ""
	order.Customer.Phone = "garbage"

	rec := f.Format(order, registry.NewSenders().Resolve("UNKNOWN"))

	fields := rec.Fields()
	assert.Equal(t, "Sharqia", fields[17])
	assert.Equal(t, "Zagazig", fields[18])
	assert.Equal(t, PhonePlaceholder, fields[16])
	assert.Equal(t, "Argento Store", fields[9], "unknown merchant uses the default sender")

	assert.ElementsMatch(t, []string{"receiver_city", "receiver_area", "receiver_phone"}, rec.FallbackUsed)
}

func TestGoodsNameTruncation(t *testing.T) {
	f := NewFormatter(registry.NewGeo())
	order := sampleOrder()
	order.Lines[0].Title = strings.Repeat("م", 40)

	rec := f.Format(order, registry.NewSenders().Resolve(registry.MerchantAzucar))
	name := rec.Fields()[2]

	runes := []rune(name)
	assert.Len(t, runes, 30)
	assert.True(t, strings.HasSuffix(name, "..."))
	assert.Equal(t, strings.Repeat("م", 27), string(runes[:27]))
}

func TestGoodsNameFallback(t *testing.T) {
	f := NewFormatter(registry.NewGeo())
	order := domain.NewOrder(
		domain.Customer{Name: "أحمد", Phone: "01012345678"},
		domain.ShippingDetails{Address: "x", City: "القاهرة"},
	)

	rec := f.Format(order, registry.NewSenders().Resolve(registry.MerchantAzucar))
	assert.Equal(t, "منتجات تسوق", rec.Fields()[2])
}
