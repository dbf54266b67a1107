package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"taxi-booking/internal/civil"
	"taxi-booking/internal/config"
	"taxi-booking/internal/logging"
	"taxi-booking/internal/metrics"
	"taxi-booking/internal/notify"
	"taxi-booking/internal/session"
	"taxi-booking/internal/wizard"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Server serves the booking wizard and the bill request form.
type Server struct {
	store          session.Store
	notifier       wizard.Notifier
	clock          *civil.Provider
	metrics        *metrics.BookingMetrics
	gatherer       prometheus.Gatherer
	limiter        *visitorLimiter
	logger         *logging.Logger
	whatsAppNumber string
	sessionTTL     time.Duration
	secureCookies  bool
}

// NewServer wires the configured store, notifier and metrics into an
// http.Server listening on cfg.Addr.
func NewServer(cfg *config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewBookingMetrics(reg)

	store, stopStore, err := newStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	notifier, err := newNotifier(cfg, m, logger)
	if err != nil {
		stopStore()
		return nil, err
	}

	s := &Server{
		store:          store,
		notifier:       notifier,
		clock:          civil.NewProvider(nil),
		metrics:        m,
		gatherer:       reg,
		limiter:        newVisitorLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		logger:         logger,
		whatsAppNumber: cfg.WhatsAppNumber,
		sessionTTL:     cfg.SessionTTL,
		secureCookies:  cfg.SecureCookies,
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.RegisterRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute,
	}
	srv.RegisterOnShutdown(stopStore)
	return srv, nil
}

func newStore(cfg *config.Config, logger *logging.Logger) (session.Store, func(), error) {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		store := session.NewRedisStore(client)
		logger.Info("draft sessions stored in redis", "addr", cfg.RedisAddr)
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing redis session store", "error", err)
			}
		}, nil
	}

	store := session.NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	go store.Janitor(ctx, time.Minute)
	logger.Info("draft sessions stored in memory")
	return store, cancel, nil
}

func newNotifier(cfg *config.Config, m *metrics.BookingMetrics, logger *logging.Logger) (wizard.Notifier, error) {
	sender := notify.Recipient{Email: cfg.SenderEmail, Name: cfg.SenderName}
	admin := notify.Recipient{Email: cfg.AdminEmail, Name: cfg.AdminName}

	switch cfg.EmailProvider {
	case config.ProviderBrevo:
		return notify.NewBrevoNotifier(notify.BrevoConfig{
			BaseURL:    cfg.BrevoBaseURL,
			APIKey:     config.BrevoAPIKey,
			Sender:     sender,
			Admin:      admin,
			HTTPClient: &http.Client{Timeout: cfg.NotifyTimeout},
		}, m, logger), nil
	case config.ProviderSendGrid:
		return notify.NewSendGridSender(notify.SendGridConfig{
			BaseURL: cfg.SendGridBaseURL,
			APIKey:  config.SendGridAPIKey,
			Sender:  sender,
			Admin:   admin,
			Timeout: cfg.NotifyTimeout,
		}, m, logger), nil
	default:
		return nil, fmt.Errorf("server: unknown email provider %q", cfg.EmailProvider)
	}
}
