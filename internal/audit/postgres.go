package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chrisdamba/foodadmin/internal/models"
)

const createAuditTable = `
    CREATE TABLE IF NOT EXISTS admin_audit (
        id         TEXT PRIMARY KEY,
        at         TIMESTAMPTZ NOT NULL,
        actor      TEXT NOT NULL DEFAULT '',
        action     TEXT NOT NULL,
        entity     TEXT NOT NULL,
        target_id  TEXT NOT NULL DEFAULT '',
        outcome    TEXT NOT NULL,
        message    TEXT NOT NULL DEFAULT ''
    )`

const insertAuditEvent = `
    INSERT INTO admin_audit (id, at, actor, action, entity, target_id, outcome, message)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const selectRecentEvents = `
    SELECT id, at, actor, action, entity, target_id, outcome, message
    FROM admin_audit
    ORDER BY at DESC
    LIMIT $1`

// database is the part of *pgxpool.Pool the sink uses.
type database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// PostgresSink appends events to the admin_audit table.
type PostgresSink struct {
	db database
}

func NewPostgresSink(ctx context.Context, cfg models.AuditConfig) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect audit database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping audit database: %w", err)
	}
	if _, err := pool.Exec(ctx, createAuditTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create audit table: %w", err)
	}
	return &PostgresSink{db: pool}, nil
}

func (p *PostgresSink) Record(ctx context.Context, e Event) error {
	_, err := p.db.Exec(ctx, insertAuditEvent,
		e.ID,
		e.Time,
		e.Actor,
		e.Action,
		e.Entity,
		e.TargetID,
		e.Outcome,
		e.Message,
	)
	if err != nil {
		return fmt.Errorf("insert audit event %s: %w", e.ID, err)
	}
	return nil
}

// Recent returns the latest events, newest first.
func (p *PostgresSink) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := p.db.Query(ctx, selectRecentEvents, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Event, error) {
		var e Event
		err := row.Scan(&e.ID, &e.Time, &e.Actor, &e.Action, &e.Entity, &e.TargetID, &e.Outcome, &e.Message)
		return e, err
	})
}

func (p *PostgresSink) Close() error {
	p.db.Close()
	return nil
}
