package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	blogstore "github.com/inkpost/inkpost/internal/app/store/blogs"
	"github.com/inkpost/inkpost/internal/app/system/mailer"
	"github.com/inkpost/inkpost/internal/app/system/runstate"
	"github.com/inkpost/inkpost/internal/app/system/timeouts"
)

// maxPort is the highest port the bind fallback will try.
const maxPort = 65535

// Run executes the startup sequence and serves until the process receives
// SIGINT or SIGTERM.
//
// The sequence is deliberately ordered: the mail relay is verified first but
// its failure never aborts startup (contact submissions fail downstream
// until the relay recovers); the document store is a hard prerequisite and
// is retried indefinitely; the listener is bound only once the store is up.
func Run(cfg Config, logger *zap.Logger) error {
	flags := runstate.New()

	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Pass:     cfg.SMTPPass,
		From:     cfg.MailFrom,
		FromName: cfg.MailFromName,
	}, logger)

	verifyMailRelay(mail, flags, logger)

	client := connectStoreWithRetry(cfg, flags, logger)
	defer func() {
		ctx, cancel := timeouts.WithMedium(context.Background())
		defer cancel()
		logger.Info("disconnecting document store client")
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("document store disconnect failed", zap.Error(err))
		}
	}()

	db := client.Database(cfg.MongoDatabase)

	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := blogstore.New(db).EnsureIndexes(ctx); err != nil {
			logger.Warn("failed to ensure blogs indexes", zap.Error(err))
		}
		cancel()
	}

	handler := BuildHandler(cfg, db, mail, flags, logger)

	ln, port, err := listenWithFallback(cfg.HTTPPort, logger)
	if err != nil {
		return err
	}
	flags.SetPort(port)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: timeouts.Medium,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.Int("port", port),
			zap.String("env", cfg.Env))
		serveErr <- srv.Serve(ln)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-serveErr:
		return fmt.Errorf("server stopped unexpectedly: %w", err)
	}

	ctx, cancel := timeouts.WithMedium(context.Background())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}

// verifyMailRelay checks connectivity and credentials against the relay.
// Failure only leaves the flag down; the server still starts.
func verifyMailRelay(mail *mailer.Mailer, flags *runstate.Flags, logger *zap.Logger) {
	ctx, cancel := timeouts.WithMedium(context.Background())
	defer cancel()

	if err := mail.Verify(ctx); err != nil {
		logger.Warn("mail relay verification failed; contact submissions will fail until the relay recovers",
			zap.Error(err))
		flags.SetMail(false)
		return
	}

	flags.SetMail(true)
	logger.Info("mail relay verified")
}

// connectStoreWithRetry attempts the initial document store connection,
// retrying at a fixed interval until it succeeds. There is no backoff growth
// and no attempt ceiling. Once a client exists its heartbeat monitor keeps
// the connectivity flag current and the driver handles reconnection.
func connectStoreWithRetry(cfg Config, flags *runstate.Flags, logger *zap.Logger) *mongo.Client {
	for attempt := 1; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoSelectTimeout+5*time.Second)
		client, err := connectMongo(ctx, cfg, flags, logger)
		cancel()

		if err == nil {
			flags.SetDB(true)
			logger.Info("connected to document store",
				zap.String("database", cfg.MongoDatabase),
				zap.Uint64("max_pool_size", cfg.MongoMaxPoolSize))
			return client
		}

		flags.SetDB(false)
		logger.Error("document store connection failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", cfg.DBRetryInterval),
			zap.Error(err))
		time.Sleep(cfg.DBRetryInterval)
	}
}

// listenWithFallback binds the first free port starting at start. An
// address-in-use conflict moves to the next port; any other bind error, or
// exhausting the port range, is terminal.
func listenWithFallback(start int, logger *zap.Logger) (net.Listener, int, error) {
	for port := start; port <= maxPort; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			if port != start {
				logger.Warn("configured port was busy, bound fallback port",
					zap.Int("configured", start),
					zap.Int("bound", port))
			}
			return ln, port, nil
		}
		if !isAddrInUse(err) {
			return nil, 0, fmt.Errorf("failed to bind port %d: %w", port, err)
		}
		logger.Warn("port in use, trying next", zap.Int("port", port))
	}
	return nil, 0, fmt.Errorf("no free port available between %d and %d", start, maxPort)
}

// isAddrInUse reports whether err is a bind conflict.
func isAddrInUse(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}
