package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flexprice/clinicbilling/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Stripe     StripeConfig     `validate:"required"`
	Cache      CacheConfig
	Sentry     SentryConfig
	Billing    BillingConfig `validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type StripeConfig struct {
	SecretKey string `mapstructure:"secret_key" validate:"required"`
	// AccountID is set when acting on a connected account
	AccountID string `mapstructure:"account_id"`
}

type CacheConfig struct {
	Enabled bool            `mapstructure:"enabled"`
	Backend types.CacheKind `mapstructure:"backend"`
	// RedisURL is only read when Backend is redis
	RedisURL string `mapstructure:"redis_url"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional, real environment variables still win
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/clinicbilling")

	v.SetEnvPrefix("CLINICBILLING")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.Billing.normalize()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", types.ModeLocal)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.backend", types.CacheKindMemory)
	v.SetDefault("billing.currency", "usd")
	v.SetDefault("billing.credit_card_fee_percent", "0")
	v.SetDefault("billing.fee_price_page_size", DefaultFeePricePageSize)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Cache.Enabled && c.Cache.Backend == types.CacheKindRedis && c.Cache.RedisURL == "" {
		return errors.New("cache.redis_url is required when cache.backend is redis")
	}
	return c.Billing.Validate()
}

// GetDefaultConfig returns a configuration for local development and tests
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Stripe:     StripeConfig{SecretKey: "sk_test_local"},
		Cache:      CacheConfig{Enabled: true, Backend: types.CacheKindMemory},
		Billing: BillingConfig{
			Currency:             "usd",
			ShippingAmount:       500,
			BaseOneTimeAmount:    5000,
			CreditCardFeePercent: "3",
			FeeProductID:         "prod_cc_fee",
			OneTimeProductID:     "prod_one_time",
			FeePricePageSize:     DefaultFeePricePageSize,
			CouponCodes:          map[string]string{},
			SubscriptionPrices:   map[string]map[string]string{},
		},
	}
}
