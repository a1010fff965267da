package audit

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
)

type fakeDB struct {
	sql    []string
	args   [][]any
	rows   []Event
	err    error
	closed bool
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	if f.err != nil {
		return nil, f.err
	}
	return &eventRows{events: f.rows, i: -1}, nil
}

func (f *fakeDB) Close() { f.closed = true }

// eventRows serves a fixed list of events through pgx.Rows.
type eventRows struct {
	events []Event
	i      int
}

func (r *eventRows) Close()                                       {}
func (r *eventRows) Err() error                                   { return nil }
func (r *eventRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *eventRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *eventRows) Values() ([]any, error)                       { return nil, nil }
func (r *eventRows) RawValues() [][]byte                          { return nil }
func (r *eventRows) Conn() *pgx.Conn                              { return nil }

func (r *eventRows) Next() bool {
	r.i++
	return r.i < len(r.events)
}

func (r *eventRows) Scan(dest ...any) error {
	e := r.events[r.i]
	values := []any{e.ID, e.Time, e.Actor, e.Action, e.Entity, e.TargetID, e.Outcome, e.Message}
	if len(dest) != len(values) {
		return errors.New("wrong column count")
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *time.Time:
			*d = v.(time.Time)
		default:
			return errors.New("unexpected scan target")
		}
	}
	return nil
}

func TestPostgresSinkRecord(t *testing.T) {
	db := &fakeDB{}
	sink := &PostgresSink{db: db}
	e := NewEvent("admin@delivernow.com", "refund", "payment", "p1")
	e.Outcome, e.Message = OutcomeFailure, "Only completed payments can be refunded"

	if err := sink.Record(context.Background(), e); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(db.sql) != 1 || !strings.Contains(db.sql[0], "INSERT INTO admin_audit") {
		t.Fatalf("statements = %q", db.sql)
	}
	want := []any{e.ID, e.Time, "admin@delivernow.com", "refund", "payment", "p1", OutcomeFailure, "Only completed payments can be refunded"}
	if diff := cmp.Diff(want, db.args[0]); diff != "" {
		t.Errorf("insert args mismatch (-want +got):\n%s", diff)
	}

	db.err = errors.New("relation admin_audit does not exist")
	if err := sink.Record(context.Background(), e); !errors.Is(err, db.err) {
		t.Errorf("Record error = %v", err)
	}
}

func TestPostgresSinkRecent(t *testing.T) {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	db := &fakeDB{rows: []Event{
		{ID: "e2", Time: at.Add(time.Minute), Actor: "a@x.com", Action: "delete", Entity: "driver", TargetID: "d1", Outcome: OutcomeSuccess},
		{ID: "e1", Time: at, Actor: "a@x.com", Action: "approve", Entity: "document", TargetID: "doc1", Outcome: OutcomeSuccess},
	}}
	sink := &PostgresSink{db: db}

	got, err := sink.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if diff := cmp.Diff(db.rows, got); diff != "" {
		t.Errorf("Recent mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(db.sql[0], "ORDER BY at DESC") || db.args[0][0] != 2 {
		t.Errorf("query = %q %v", db.sql[0], db.args[0])
	}

	if err := sink.Close(); err != nil || !db.closed {
		t.Errorf("Close: %v, closed %v", err, db.closed)
	}
}

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestRabbitSinkPublishesPersistentJSON(t *testing.T) {
	ch := &fakeChannel{}
	sink := &RabbitSink{ch: ch, exchange: "admin_audit"}
	e := NewEvent("admin@delivernow.com", "reject", "document", "doc1")
	e.Outcome = OutcomeSuccess

	if err := sink.Record(context.Background(), e); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if ch.exchange != "admin_audit" || ch.key != "document.reject" {
		t.Errorf("published to %s/%s", ch.exchange, ch.key)
	}
	if ch.msg.DeliveryMode != amqp.Persistent || ch.msg.ContentType != "application/json" || ch.msg.MessageId != e.ID {
		t.Errorf("message headers = %+v", ch.msg)
	}
	var got Event
	if err := json.Unmarshal(ch.msg.Body, &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID != e.ID || got.TargetID != "doc1" || got.Outcome != OutcomeSuccess {
		t.Errorf("body = %+v", got)
	}

	if err := sink.Close(); err != nil || !ch.closed {
		t.Errorf("Close: %v, closed %v", err, ch.closed)
	}
}

func TestRabbitSinkReportsFailure(t *testing.T) {
	ch := &fakeChannel{err: amqp.ErrClosed}
	sink := &RabbitSink{ch: ch, exchange: "admin_audit"}
	if err := sink.Record(context.Background(), NewEvent("", "delete", "driver", "d1")); !errors.Is(err, amqp.ErrClosed) {
		t.Fatalf("Record error = %v, want ErrClosed", err)
	}
}
