package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/3lvia/ice-problems/api"
	"github.com/3lvia/ice-problems/config"
	"github.com/3lvia/ice-problems/internal/observability"
	"github.com/3lvia/ice-problems/internal/runtime"
	"github.com/3lvia/ice-problems/report"
	"github.com/3lvia/libraries-go/pkg/elvia"
	elviaruntime "github.com/3lvia/libraries-go/pkg/elvia/runtime"
	"github.com/nats-io/nats.go"
)

type ProblemsService struct {
	*elvia.Service

	cfg      *config.Config
	nc       *nats.Conn
	reporter *report.Reporter
	obsStop  func(context.Context) error
}

func NewProblemsService(ctx context.Context, cfg *config.Config) (*ProblemsService, error) {
	obsStop, err := observability.Configure(ctx, cfg.Env)
	if err != nil {
		return nil, err
	}
	runtime.NewLogger(cfg.Env)

	opts := []elvia.ServiceOpt{
		elvia.WithEnvLoggerLevel(elviaruntime.Env(cfg.Env)),
	}

	svc, err := elvia.NewService(ctx, "ice", "problems", opts...)
	if err != nil {
		return nil, err
	}

	var secrets = &config.Secrets{}
	if cfg.VaultAddr != "" {
		slog.InfoContext(ctx, "vault addr set, loading secrets", "vault_addr", cfg.VaultAddr)

		vault, err := config.NewVault(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "failed to configure vault", "error", err)
			return nil, err
		}

		secrets, err = config.NewSecrets(ctx, vault)
		if err != nil {
			slog.ErrorContext(ctx, "failed to get secrets", "error", err)
			return nil, err
		}

		slog.InfoContext(ctx, "loaded secrets from vault")
	}

	var nc *nats.Conn
	if cfg.NatsAddr != "" {
		slog.InfoContext(ctx, "connecting to nats server", "nats_addr", cfg.NatsAddr)

		nc, err = nats.Connect(cfg.NatsAddr,
			nats.Token(secrets.NatsToken),
			nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
				slog.ErrorContext(ctx, "disconnected from nats server", "error", err)
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				slog.InfoContext(ctx, "reconnected to nats server")
			}),
			nats.ClosedHandler(func(nc *nats.Conn) {
				slog.InfoContext(ctx, "connection to nats server closed")
			}),
			nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
				slog.ErrorContext(ctx, "nats error", "error", err)
			}),
		)
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to nats server", "error", err)
			return nil, err
		}

		slog.InfoContext(ctx, "connected to nats server")
	}

	// occurrence reporting is optional: without NATS the reporter is inert
	var pub report.Publisher
	if nc != nil {
		pub = nc
	}

	return &ProblemsService{
		Service:  svc,
		cfg:      cfg,
		nc:       nc,
		reporter: report.New(pub),
		obsStop:  obsStop,
	}, nil
}

func (s *ProblemsService) Run(ctx context.Context) error {
	stop, errChan := api.Serve(s.cfg.ApiAddr, s.cfg.Env, s.reporter)
	defer stop(ctx)

	go func() {
		if err := <-errChan; err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "API server failed", "error", err)
		}
	}()

	return s.Service.Run(ctx)
}

func (s *ProblemsService) Stop(ctx context.Context) error {
	if s.nc != nil {
		s.nc.Close()
	}

	return errors.Join(s.Service.Stop(ctx), s.obsStop(ctx))
}
