package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"eventrsvp/config"
	"eventrsvp/internal/adapters/auth"
	"eventrsvp/internal/adapters/email"
	httpdelivery "eventrsvp/internal/delivery/http"
	"eventrsvp/internal/delivery/http/controllers"
	"eventrsvp/internal/metrics"
	"eventrsvp/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the RSVP HTTP server",
		Long: `Start the RSVP HTTP server.

If the store cannot be reached at startup the server still starts in degraded mode:
HEAD /rsvp and POST /login keep working and RSVP reads and writes answer 503.

Examples:
  server serve
  server serve --port 9090 --log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&serverPort, "port", "", "server port (default: PORT or 8080)")
	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if serverPort != "" {
		cfg.Port = serverPort
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logger := config.NewLogger(os.Stdout, cfg.Environment, cfg.LogLevel)
	logger.Info("starting rsvp server", "version", Version, "env", cfg.Environment, "store_driver", cfg.StoreDriver)
	metrics.Init(Version, GitCommit, cfg.StoreDriver)

	if ctx == nil {
		ctx = context.Background()
	}
	st := openStore(ctx, cfg, logger)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := st.close(closeCtx); err != nil {
			logger.Error("store close failed", "err", err)
		}
	}()

	handler, err := buildHandler(cfg, logger, st)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	return gracefulShutdown(ctx, server, logger, errCh)
}

func buildHandler(cfg *config.Config, logger *slog.Logger, st *store) (http.Handler, error) {
	verifier, err := auth.NewVerifier(cfg.PanelPassword, cfg.PanelPasswordHash)
	if err != nil {
		return nil, fmt.Errorf("panel password: %w", err)
	}
	if verifier == nil {
		logger.Warn("no panel password configured; POST /login will answer 500")
	}

	var opts []services.RSVPOption
	if len(cfg.NotifyEmailTo) > 0 {
		mailer, err := email.NewMailer(email.MailerConfig{
			Provider:    cfg.EmailProvider,
			FromAddress: cfg.EmailFromAddress,
			FromName:    cfg.EmailFromName,
			SES: email.SESConfig{
				Region:             cfg.AWSRegion,
				AccessKeyID:        cfg.AWSAccessKeyID,
				SecretAccessKey:    cfg.AWSSecretKey,
				InsecureSkipVerify: cfg.SESInsecureSkipVerify,
			},
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("mailer: %w", err)
		}
		opts = append(opts, services.WithNotifier(
			services.NewEmailNotifier(mailer, email.NewTemplateRenderer(), cfg.NotifyEmailTo),
		))
	}

	rsvpService := services.NewRSVPService(st.repo, logger, opts...)
	panelService := services.NewPanelAuthService(verifier)

	mux := httpdelivery.NewRouter(
		controllers.NewRSVPController(logger, rsvpService),
		controllers.NewPanelController(logger, panelService),
	)
	return httpdelivery.NewHandler(mux, logger, cfg.AllowedOrigins), nil
}

func gracefulShutdown(ctx context.Context, server *http.Server, logger *slog.Logger, errCh <-chan error) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
