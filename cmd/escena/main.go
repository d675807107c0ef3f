// Command escena serves the marketing site, the public content API and the
// authenticated admin API in one binary.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	adapthttp "escena/internal/adapter/http"
	"escena/internal/adapter/memory"
	"escena/internal/adapter/postgres"
	"escena/internal/app"
	"escena/internal/config"
	"escena/internal/domain"
	"escena/internal/token"
)

// repositories is the full set of ports the services need; both storage
// adapters satisfy it.
type repositories interface {
	domain.UserRepository
	domain.ContentRepository
	domain.CatalogRepository
	domain.SiteRepository
	domain.ContactRepository
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	useMemory := flag.Bool("memory", false, "run with the in-memory store (development only)")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	flag.StringVar(&cfg.DatabaseURL, "db-url", cfg.DatabaseURL, "PostgreSQL DSN")
	flag.Parse()

	if cfg.JWTSecret == config.DefaultSecret {
		log.Warn("JWT_SECRET is not set; running on the default signing secret")
	}
	if cfg.RelaxedExpiry {
		log.Warn("RELAXED_EXPIRY is enabled; expired tokens will be accepted")
	}

	var repos repositories
	if *useMemory {
		repos = memory.New()
		log.Info("using in-memory store")
	} else {
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is required (or pass -memory)")
		}
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("db open failed")
		}
		defer func() { _ = db.Close() }()
		repos = db
	}

	codec := token.NewCodec(cfg.JWTSecret)
	bootstrap := app.DefaultAdminBootstrap(cfg.BootstrapEnabled)
	authSvc := app.NewAuthService(repos, codec, cfg.TokenLifetime, bootstrap, log)

	verifier := adapthttp.NewTokenVerifier(codec, cfg.RelaxedExpiry, log)
	gate := adapthttp.NewRequestGate(verifier, cfg.PublicPrefixes())

	srv := adapthttp.New(adapthttp.Deps{
		Auth:    authSvc,
		Content: app.NewContentService(repos),
		Catalog: app.NewCatalogService(repos),
		Site:    app.NewSiteService(repos),
		Contact: app.NewContactService(repos),
		Gate:    gate,
		DBPing:  repos.Ping,
		OIDC:    buildOIDC(cfg, log),
		WebDir:  cfg.WebDir,
		Log:     log,
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.WithField("addr", cfg.Addr).Info("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-done
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("shutdown failed")
	}
	log.Info("stopped")
}

func buildOIDC(cfg config.Config, log logrus.FieldLogger) adapthttp.OIDCConfig {
	if !cfg.SSOEnabled() {
		return adapthttp.OIDCConfig{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		log.WithError(err).Warn("oidc provider discovery failed; sso disabled")
		return adapthttp.OIDCConfig{}
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}
}
