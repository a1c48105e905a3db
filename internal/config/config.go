package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
)

// Config holds every runtime knob. Values come from env vars with the
// defaults below applied first.
type Config struct {
	Addr     string `default:":8000"`
	Env      string `default:"dev"`
	LogLevel string `default:"info"`

	// DevMode runs without MySQL/Cloudinary: in-memory stores and
	// placeholder images.
	DevMode  bool
	MySQLDSN string
	// TiDBCAPath is read when the DSN requests tls=tidb.
	TiDBCAPath string `default:"/etc/ssl/certs/ca-certificates.crt"`

	AdminToken string

	CloudinaryURL string
	UploadDir     string `default:"./static/uploads"`

	// PaymentProvider selects the active checkout flow: "stripe" (hosted
	// checkout) or "whatsapp" (message link).
	PaymentProvider string `default:"stripe"`
	StripeKey       string
	Currency        string `default:"usd"`
	// BaseURL is where the payment provider redirects back to.
	BaseURL         string        `default:"http://localhost:8000"`
	CheckoutTimeout time.Duration `default:"15s"`
}

// Load builds a Config from defaults and the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("config defaults: %w", err)
	}

	setString(&cfg.Addr, "ADDR")
	setString(&cfg.Env, "APP_ENV")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.MySQLDSN, "MYSQL_DSN")
	setString(&cfg.TiDBCAPath, "TIDB_CA")
	setString(&cfg.AdminToken, "ADMIN_TOKEN")
	setString(&cfg.CloudinaryURL, "CLOUDINARY_URL")
	setString(&cfg.UploadDir, "UPLOAD_DIR")
	setString(&cfg.PaymentProvider, "PAYMENT_PROVIDER")
	setString(&cfg.StripeKey, "STRIPE_SECRET_KEY")
	setString(&cfg.Currency, "CURRENCY")
	setString(&cfg.BaseURL, "BASE_URL")

	if v := os.Getenv("DEV_MODE"); v == "1" || strings.EqualFold(v, "true") {
		cfg.DevMode = true
	}
	if v := os.Getenv("CHECKOUT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("CHECKOUT_TIMEOUT: %w", err)
		}
		cfg.CheckoutTimeout = d
	}

	cfg.PaymentProvider = strings.ToLower(strings.TrimSpace(cfg.PaymentProvider))
	cfg.Currency = strings.ToLower(strings.TrimSpace(cfg.Currency))

	if !cfg.DevMode && cfg.MySQLDSN == "" {
		return Config{}, fmt.Errorf("env MYSQL_DSN must be set (or set DEV_MODE=true to run without external services)")
	}
	switch cfg.PaymentProvider {
	case "stripe", "whatsapp":
	default:
		return Config{}, fmt.Errorf("unknown PAYMENT_PROVIDER %q", cfg.PaymentProvider)
	}

	return cfg, nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
