package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	mysql "github.com/go-sql-driver/mysql"

	"github.com/mamazhanov/online-store/internal/cart"
	"github.com/mamazhanov/online-store/internal/catalog"
	"github.com/mamazhanov/online-store/internal/checkout"
	"github.com/mamazhanov/online-store/internal/config"
	"github.com/mamazhanov/online-store/internal/httpapi"
	"github.com/mamazhanov/online-store/internal/logger"
	"github.com/mamazhanov/online-store/internal/media"
	"github.com/mamazhanov/online-store/internal/payment"
	"github.com/mamazhanov/online-store/internal/profile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{Service: "online-store", Env: cfg.Env, Level: cfg.LogLevel})

	var db *sql.DB
	var catalogStore catalog.Store
	var profileStore profile.Store

	if cfg.DevMode {
		log.Info("DEV_MODE=true: running without MySQL/Cloudinary (in-memory store, placeholder images)")
		catalogStore = catalog.NewMemoryStore()
		profileStore = profile.NewMemoryStore()
	} else {
		// If the DSN requests tls=tidb, register a TLS config named "tidb".
		if strings.Contains(cfg.MySQLDSN, "tls=tidb") {
			registerTiDBTLS(cfg.TiDBCAPath, log)
		}
		db, err = sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Error("open db", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Error("ping db", "err", err)
			os.Exit(1)
		}
		if err := catalog.EnsureSchema(db); err != nil {
			log.Error("ensure catalog schema", "err", err)
			os.Exit(1)
		}
		if err := profile.EnsureSchema(db); err != nil {
			log.Error("ensure profile schema", "err", err)
			os.Exit(1)
		}
		catalogStore = catalog.NewRepository(db, log)
		profileStore = profile.NewRepository(db)
	}

	var uploader media.Uploader
	if cfg.CloudinaryURL != "" && !cfg.DevMode {
		uploader, err = media.NewCloudinary(cfg.CloudinaryURL)
	} else {
		uploader, err = media.NewDisk(cfg.UploadDir, cfg.BaseURL)
	}
	if err != nil {
		log.Error("uploader", "err", err)
		os.Exit(1)
	}

	var provider checkout.Provider
	switch {
	case cfg.PaymentProvider == "whatsapp":
		provider = payment.NewWhatsApp(profileStore)
	case cfg.DevMode && cfg.StripeKey == "":
		log.Info("no Stripe key in dev mode, using WhatsApp message-link checkout")
		provider = payment.NewWhatsApp(profileStore)
	default:
		provider, err = payment.NewStripe(cfg.StripeKey, cfg.BaseURL)
		if err != nil {
			log.Error("stripe", "err", err)
			os.Exit(1)
		}
	}

	carts := cart.NewSessionStore()
	checkoutSvc := checkout.NewService(provider, carts, cfg.Currency, cfg.CheckoutTimeout, log)

	handler := httpapi.NewHandler(catalogStore, profileStore, carts, checkoutSvc, uploader, cfg.AdminToken, "./static", log)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening", "addr", cfg.Addr, "provider", cfg.PaymentProvider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}

// registerTiDBTLS loads the CA bundle TiDB Cloud connections verify
// against, falling back to InsecureSkipVerify if it cannot be read.
func registerTiDBTLS(caPath string, log *slog.Logger) {
	pool := x509.NewCertPool()
	b, err := os.ReadFile(caPath)
	if err != nil {
		log.Warn("could not read CA file, falling back to InsecureSkipVerify", "path", caPath, "err", err)
		_ = mysql.RegisterTLSConfig("tidb", &tls.Config{InsecureSkipVerify: true})
		return
	}
	if !pool.AppendCertsFromPEM(b) {
		log.Warn("could not parse CA file, falling back to InsecureSkipVerify", "path", caPath)
		_ = mysql.RegisterTLSConfig("tidb", &tls.Config{InsecureSkipVerify: true})
		return
	}
	_ = mysql.RegisterTLSConfig("tidb", &tls.Config{RootCAs: pool})
}
