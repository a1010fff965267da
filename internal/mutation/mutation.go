// Package mutation sends create, update and delete requests on behalf of a
// list screen and keeps the screen consistent with the server afterwards.
package mutation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/audit"
)

// ErrDeclined is returned when the admin cancels a confirmation or leaves a
// required reason empty. No request is sent.
var ErrDeclined = errors.New("cancelled")

// Prompter asks the admin to confirm an action or type a short answer.
type Prompter interface {
	Confirm(prompt string) (bool, error)
	Ask(prompt string) (string, error)
}

// Notifier shows the outcome of a mutation.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

// Refresher refetches the list a mutation belongs to.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Mutation describes one write against the API.
type Mutation struct {
	Action   string
	Entity   string
	TargetID string

	// Confirm, when set, must be accepted before anything is sent.
	Confirm string
	// Reason, when set, is asked for after confirmation; an empty answer
	// cancels. The answer is handed to Send.
	Reason string

	// Success is shown after the API accepts the request. An empty Success
	// shows the API's own message.
	Success string
	// Failure is shown when the API sent no message of its own.
	Failure string

	Send func(ctx context.Context, reason string) (*api.Envelope, error)
}

type Dispatcher struct {
	prompt   Prompter
	notify   Notifier
	sink     audit.Sink
	actor    string
	logger   *slog.Logger
	progress io.Writer
}

type Option func(*Dispatcher)

func WithAudit(sink audit.Sink, actor string) Option {
	return func(d *Dispatcher) {
		d.sink = sink
		d.actor = actor
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithProgress sets where bulk operations draw their progress bar.
func WithProgress(w io.Writer) Option {
	return func(d *Dispatcher) { d.progress = w }
}

func NewDispatcher(prompt Prompter, notify Notifier, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		prompt:   prompt,
		notify:   notify,
		sink:     audit.Discard{},
		logger:   slog.Default(),
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs m and, once the API accepts it, refetches r. A failed request
// leaves the list as it was.
func (d *Dispatcher) Dispatch(ctx context.Context, m Mutation, r Refresher) error {
	reason, err := d.gate(m)
	if err != nil {
		return err
	}

	env, err := m.Send(ctx, reason)
	if errors.Is(err, api.ErrNoSession) {
		return err
	}
	if err != nil {
		msg := api.Message(err, m.Failure)
		d.logger.Error("mutation failed",
			"action", m.Action, "entity", m.Entity, "id", m.TargetID, "error", err)
		d.record(ctx, m, audit.OutcomeFailure, msg)
		d.notify.Failure(msg)
		return fmt.Errorf("%s %s %s: %w", m.Action, m.Entity, m.TargetID, err)
	}

	msg := m.Success
	if msg == "" && env != nil {
		msg = env.Message
	}
	d.record(ctx, m, audit.OutcomeSuccess, msg)
	d.refresh(ctx, r)
	if msg != "" {
		d.notify.Success(msg)
	}
	return nil
}

func (d *Dispatcher) gate(m Mutation) (string, error) {
	if m.Confirm != "" {
		ok, err := d.prompt.Confirm(m.Confirm)
		if err != nil {
			return "", fmt.Errorf("confirm %s: %w", m.Action, err)
		}
		if !ok {
			return "", ErrDeclined
		}
	}
	if m.Reason == "" {
		return "", nil
	}
	reason, err := d.prompt.Ask(m.Reason)
	if err != nil {
		return "", fmt.Errorf("ask %s reason: %w", m.Action, err)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", ErrDeclined
	}
	return reason, nil
}

func (d *Dispatcher) refresh(ctx context.Context, r Refresher) {
	if r == nil {
		return
	}
	if err := r.Refresh(ctx); err != nil {
		d.logger.Warn("refetch after mutation failed", "error", err)
	}
}

func (d *Dispatcher) record(ctx context.Context, m Mutation, outcome, msg string) {
	e := audit.NewEvent(d.actor, m.Action, m.Entity, m.TargetID)
	e.Outcome = outcome
	e.Message = msg
	if err := d.sink.Record(ctx, e); err != nil {
		d.logger.Warn("audit event not recorded", "action", m.Action, "error", err)
	}
}
