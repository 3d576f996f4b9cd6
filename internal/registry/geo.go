package registry

// Geo canonicalizes free-text Arabic city and area names into the carrier's
// accepted English vocabulary. Unrecognized input falls back to the
// platform's home region; callers get a flag so degraded input can be logged.
type Geo struct {
	cities map[string]string
	areas  map[string]string
}

// Fallback city/area pair: the platform's home region.
const (
	DefaultCity = "Sharqia"
	DefaultArea = "Zagazig"
)

// NewGeo builds the static translation tables.
func NewGeo() *Geo {
	return &Geo{
		cities: map[string]string{
			"الزقازيق":   "Sharqia",
			"القاهرة":    "Cairo",
			"الجيزة":     "Giza",
			"الإسكندرية": "Alexandria",
			"المنصورة":   "Dakahlia",
			"طنطا":       "Gharbia",
			"المنيا":     "Minya",
			"أسيوط":      "Assiut",
			"سوهاج":      "Sohag",
			"قنا":        "Qena",
			"الأقصر":     "Luxor",
			"أسوان":      "Aswan",
			"بورسعيد":    "Port Said",
			"الإسماعيلية": "Ismailia",
			"السويس":     "Suez",
			"شرم الشيخ":  "South Sinai",
			"العريش":     "North Sinai",
		},
		areas: map[string]string{
			// Sharqia
			"حي الزهور": "Zagazig",
			"الزقازيق":  "Zagazig",
			"أبو كبير":  "Abu Kabir",
			"ههيا":      "Hehya",
			"فاقوس":     "Faqous",
			"الصالحية":  "El Salheya",
			"ديرب نجم":  "Deirb Negm",
			// Cairo
			"المعادي":    "Maadi",
			"المهندسين":  "Mohandessin",
			"وسط البلد":  "Downtown",
			"مدينة نصر":  "Nasr City",
			"الشيخ زايد": "Sheikh Zayed",
			"6 أكتوبر":   "6th of October",
			// Alexandria
			"سموحة":   "Smouha",
			"المنتزة": "Montaza",
			"اللبان":  "Labban",
			"العصافرة": "Asafra",
		},
	}
}

// CanonicalCity maps a city name into the carrier vocabulary. The second
// return value reports whether the fallback was used.
func (g *Geo) CanonicalCity(input string) (string, bool) {
	if city, ok := g.cities[input]; ok {
		return city, false
	}
	return DefaultCity, true
}

// CanonicalArea maps an area name into the carrier vocabulary. The second
// return value reports whether the fallback was used.
func (g *Geo) CanonicalArea(input string) (string, bool) {
	if area, ok := g.areas[input]; ok {
		return area, false
	}
	return DefaultArea, true
}

// Cities returns the Arabic→English city table (for the landing-page picker).
func (g *Geo) Cities() map[string]string {
	out := make(map[string]string, len(g.cities))
	for k, v := range g.cities {
		out[k] = v
	}
	return out
}

// Areas returns the Arabic→English area table.
func (g *Geo) Areas() map[string]string {
	out := make(map[string]string, len(g.areas))
	for k, v := range g.areas {
		out[k] = v
	}
	return out
}
