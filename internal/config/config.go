package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	DataDir     string

	Facebook FacebookConfig
	Shipping ShippingConfig
	Admin    AdminConfig
}

type FacebookConfig struct {
	AccessToken string
	APIVersion  string
	// CatalogIDs maps merchant id → Facebook catalog id. Merchants without a
	// configured catalog are skipped by the sync.
	CatalogIDs map[string]string
}

type ShippingConfig struct {
	// RegionRates are the flat per-region rates; DefaultRate covers
	// everything else.
	RegionRates           map[string]decimal.Decimal
	DefaultRate           decimal.Decimal
	HandlingFee           decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	MinProfit             decimal.Decimal
}

type AdminConfig struct {
	// APIKeyHash is the bcrypt hash of the admin API key.
	APIKeyHash string
}

// merchant ids whose catalog env vars are probed at load time
var catalogMerchants = []string{"CASTELPHARMA", "SUDIID", "UNILEVERID", "FOFO", "BUSSNISID"}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("FB_API_VERSION", "v18.0")
	viper.SetDefault("SHIPPING_DEFAULT_RATE", "80")
	viper.SetDefault("SHIPPING_HANDLING_FEE", "5")
	viper.SetDefault("FREE_SHIPPING_THRESHOLD", "100")
	viper.SetDefault("FREE_SHIPPING_MIN_PROFIT", "15")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	defaultRate, err := decimalEnv("SHIPPING_DEFAULT_RATE")
	if err != nil {
		return nil, err
	}
	handlingFee, err := decimalEnv("SHIPPING_HANDLING_FEE")
	if err != nil {
		return nil, err
	}
	threshold, err := decimalEnv("FREE_SHIPPING_THRESHOLD")
	if err != nil {
		return nil, err
	}
	minProfit, err := decimalEnv("FREE_SHIPPING_MIN_PROFIT")
	if err != nil {
		return nil, err
	}

	catalogIDs := make(map[string]string)
	for _, merchantID := range catalogMerchants {
		if id := getEnvOrViper("CATALOG_"+merchantID, ""); id != "" {
			catalogIDs[merchantID] = id
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		DataDir:     getEnvOrViper("DATA_DIR", "data"),
		Facebook: FacebookConfig{
			AccessToken: getEnvOrViper("FB_ACCESS_TOKEN", ""),
			APIVersion:  getEnvOrViper("FB_API_VERSION", "v18.0"),
			CatalogIDs:  catalogIDs,
		},
		Shipping: ShippingConfig{
			RegionRates: map[string]decimal.Decimal{
				"Cairo":      decimal.NewFromInt(60),
				"Giza":       decimal.NewFromInt(60),
				"Sharqia":    decimal.NewFromInt(45),
				"Alexandria": decimal.NewFromInt(70),
				"Dakahlia":   decimal.NewFromInt(60),
				"Gharbia":    decimal.NewFromInt(60),
			},
			DefaultRate:           defaultRate,
			HandlingFee:           handlingFee,
			FreeShippingThreshold: threshold,
			MinProfit:             minProfit,
		},
		Admin: AdminConfig{
			APIKeyHash: getEnvOrViper("ADMIN_API_KEY_HASH", ""),
		},
	}

	return cfg, nil
}

func decimalEnv(key string) (decimal.Decimal, error) {
	raw := getEnvOrViper(key, "0")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a number, got %q", key, raw)
	}
	return d, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
