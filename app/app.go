package app

import (
	"context"

	"log/slog"

	"github.com/jekabolt/retail-stats/config"
	httpapi "github.com/jekabolt/retail-stats/internal/api/http"
	"github.com/jekabolt/retail-stats/internal/dependency"
	"github.com/jekabolt/retail-stats/internal/mail"
	"github.com/jekabolt/retail-stats/internal/statistics"
	"github.com/jekabolt/retail-stats/internal/stockalert"
	"github.com/jekabolt/retail-stats/internal/store"
)

// App is the main application
type App struct {
	hs     *httpapi.Server
	db     dependency.Repository
	alerts *stockalert.Worker
	c      *config.Config
	done   chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting retail-stats")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()),
		)
		return err
	}

	svc := statistics.New(a.db)

	// the alert worker only runs when the mailer is configured
	if a.c.Mailer.APIKey != "" {
		mailer, err := mail.New(&a.c.Mailer)
		if err != nil {
			slog.Default().ErrorContext(ctx, "failed to create mailer",
				slog.String("err", err.Error()),
			)
			return err
		}
		a.alerts = stockalert.New(&a.c.StockAlert, svc, mailer)
		if err := a.alerts.Start(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "cannot start stock alert worker",
				slog.String("err", err.Error()),
			)
			return err
		}
	} else {
		slog.Default().InfoContext(ctx, "mailer not configured, stock alerts disabled")
	}

	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, svc, a.db); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.alerts != nil {
		if err := a.alerts.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop stock alert worker",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server",
				slog.String("err", err.Error()),
			)
		}
	}
	a.db.Close()
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
