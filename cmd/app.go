package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/audit"
	"github.com/chrisdamba/foodadmin/internal/export"
	"github.com/chrisdamba/foodadmin/internal/logger"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/mutation"
	"github.com/chrisdamba/foodadmin/internal/session"
)

// App carries what every command needs. It is built from the configuration
// once the flags are parsed.
type App struct {
	v       *viper.Viper
	cfgFile string
	output  string

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	cfg      *models.Config
	log      *slog.Logger
	sessions *session.Manager
	client   *api.Client

	sink     audit.Sink
	dispatch *mutation.Dispatcher
	exporter *export.Exporter
}

func newApp(in io.Reader, out, errOut io.Writer) *App {
	return &App{
		v:      viper.New(),
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

func (a *App) setup() error {
	cfg, err := models.LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if a.output != "table" && a.output != "json" {
		return fmt.Errorf("unsupported output format: %s", a.output)
	}
	a.cfg = cfg

	a.log, err = logger.New(a.errOut, "foodadmin", cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	if path := a.v.ConfigFileUsed(); path != "" {
		a.log.Debug("using config file", "path", path)
	}

	a.sessions = session.NewManager(session.NewFileStore(cfg.SessionFile))
	a.client, err = api.NewClient(cfg.APIBaseURL, a.sessions, cfg.RequestTimeout, api.WithLogger(a.log))
	return err
}

// dispatcher builds the mutation dispatcher and its audit sink on first use,
// so read-only commands never connect to a broker or database.
func (a *App) dispatcher(ctx context.Context) (*mutation.Dispatcher, error) {
	if a.dispatch != nil {
		return a.dispatch, nil
	}
	sink, err := audit.New(ctx, a.cfg.Audit, a.log)
	if err != nil {
		return nil, fmt.Errorf("audit sink: %w", err)
	}
	a.sink = sink

	var actor string
	if s, err := a.sessions.Current(); err == nil {
		actor = s.Admin.Email
	}
	a.dispatch = mutation.NewDispatcher(a.prompter(), a.notifier(),
		mutation.WithAudit(sink, actor),
		mutation.WithLogger(a.log),
		mutation.WithProgress(a.errOut),
	)
	return a.dispatch, nil
}

// mutate dispatches m and turns the outcome into the command's result. The
// dispatcher has already shown any API failure.
func (a *App) mutate(ctx context.Context, m mutation.Mutation, r mutation.Refresher) error {
	d, err := a.dispatcher(ctx)
	if err != nil {
		return err
	}
	return a.settle(d.Dispatch(ctx, m, r))
}

func (a *App) settle(err error) error {
	var apiErr *api.APIError
	var transportErr *api.TransportError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mutation.ErrDeclined):
		fmt.Fprintln(a.errOut, "Cancelled.")
		return nil
	case errors.As(err, &apiErr), errors.As(err, &transportErr):
		return &reportedError{err}
	default:
		return err
	}
}

func (a *App) exporterFor(ctx context.Context) (*export.Exporter, error) {
	if a.exporter != nil {
		return a.exporter, nil
	}
	e, err := export.New(ctx, a.cfg.Export)
	if err != nil {
		return nil, err
	}
	a.exporter = e
	return e, nil
}

func (a *App) close() error {
	if a.sink == nil {
		return nil
	}
	return a.sink.Close()
}

// reportedError is a failure the user has already been shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }
