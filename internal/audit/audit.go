// Package audit records every mutation the console sends to the API.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucsky/cuid"

	"github.com/chrisdamba/foodadmin/internal/models"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Event struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Actor    string    `json:"actor,omitempty"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	TargetID string    `json:"targetId,omitempty"`
	Outcome  string    `json:"outcome"`
	Message  string    `json:"message,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(actor, action, entity, targetID string) Event {
	return Event{
		ID:       cuid.New(),
		Time:     time.Now().UTC(),
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		TargetID: targetID,
	}
}

func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Sink stores audit events. Record must not block longer than ctx allows.
type Sink interface {
	Record(ctx context.Context, e Event) error
	Close() error
}

// Discard drops every event.
type Discard struct{}

func (Discard) Record(context.Context, Event) error { return nil }
func (Discard) Close() error                        { return nil }

// Console writes events to the structured log.
type Console struct {
	Logger *slog.Logger
}

func (c Console) Record(ctx context.Context, e Event) error {
	c.Logger.LogAttrs(ctx, slog.LevelInfo, "audit",
		slog.String("id", e.ID),
		slog.String("actor", e.Actor),
		slog.String("action", e.Action),
		slog.String("entity", e.Entity),
		slog.String("target", e.TargetID),
		slog.String("outcome", e.Outcome),
		slog.String("message", e.Message),
	)
	return nil
}

func (Console) Close() error { return nil }

// Multi fans an event out to several sinks and joins their errors.
type Multi []Sink

func (m Multi) Record(ctx context.Context, e Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Record(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}

// New builds the sink named by cfg.Sink.
func New(ctx context.Context, cfg models.AuditConfig, logger *slog.Logger) (Sink, error) {
	switch cfg.Sink {
	case "", "none":
		return Discard{}, nil
	case "console":
		return Console{Logger: logger}, nil
	case "kafka":
		return NewKafkaSink(cfg)
	case "rabbitmq":
		return NewRabbitSink(cfg)
	case "postgres":
		return NewPostgresSink(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported audit sink: %s", cfg.Sink)
	}
}
