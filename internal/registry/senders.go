package registry

// SenderProfile is the shipment sender block printed on the carrier manifest.
type SenderProfile struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Area    string `json:"area"`
	Address string `json:"address"`
}

// Senders resolves the sender profile for a merchant, with one default entry
// for the house catalog and anything unknown.
type Senders struct {
	byMerchant map[string]SenderProfile
	fallback   SenderProfile
}

// NewSenders builds the static sender profile table.
func NewSenders() *Senders {
	zagazig := "الزقازيق الشرقية، حي الزهور"
	return &Senders{
		byMerchant: map[string]SenderProfile{
			MerchantAzucar: {
				Name:    "Azúcar",
				Phone:   "01017549330",
				City:    "Sharqia",
				Area:    "Zagazig",
				Address: zagazig,
			},
			MerchantCastelPharma: {
				Name:    "كاستيل فارما",
				Phone:   "01064147284",
				City:    "Sharqia",
				Area:    "Zagazig",
				Address: zagazig,
			},
			MerchantFofo: {
				Name:    "Fofo",
				Phone:   "01212137256",
				City:    "Sharqia",
				Area:    "Zagazig",
				Address: zagazig,
			},
			MerchantUnilever: {
				Name:    "يونيليفر",
				Phone:   "01055688136",
				City:    "Sharqia",
				Area:    "Zagazig",
				Address: zagazig,
			},
		},
		fallback: SenderProfile{
			Name:    "Argento Store",
			Phone:   "01055688136",
			City:    "Sharqia",
			Area:    "Zagazig",
			Address: "حي الزهور، الزقازيق",
		},
	}
}

// Resolve returns the sender profile for a merchant, or the default profile
// when the merchant has no entry.
func (s *Senders) Resolve(merchantID string) SenderProfile {
	if p, ok := s.byMerchant[merchantID]; ok {
		return p
	}
	return s.fallback
}
