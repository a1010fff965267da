package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"

	"github.com/chrisdamba/foodadmin/internal/models"
)

type failingSink struct{ err error }

func (f failingSink) Record(context.Context, Event) error { return f.err }
func (f failingSink) Close() error                        { return nil }

func TestNewEvent(t *testing.T) {
	a := NewEvent("ada@example.com", "delete", "driver", "d1")
	b := NewEvent("ada@example.com", "delete", "driver", "d2")
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("event ids not unique: %q %q", a.ID, b.ID)
	}
	if a.Time.IsZero() {
		t.Fatal("event time not set")
	}
}

func TestConsoleRecord(t *testing.T) {
	var buf bytes.Buffer
	sink := Console{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}
	e := NewEvent("ada@example.com", "update_status", "order", "o1")
	e.Outcome = OutcomeSuccess

	if err := sink.Record(context.Background(), e); err != nil {
		t.Fatalf("Record: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"action":"update_status"`, `"target":"o1"`, `"outcome":"success"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %s missing %s", out, want)
		}
	}
}

func TestMultiJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	m := Multi{Discard{}, failingSink{err: boom}}
	if err := m.Record(context.Background(), Event{}); !errors.Is(err, boom) {
		t.Fatalf("Record error = %v, want boom", err)
	}
}

func TestKafkaSinkPublishesJSON(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var e Event
		if err := json.Unmarshal(val, &e); err != nil {
			return err
		}
		if e.Action != "delete" || e.TargetID != "d1" {
			return errors.New("unexpected event " + string(val))
		}
		return nil
	})

	sink := newKafkaSink(producer, "admin_audit")
	if err := sink.Record(context.Background(), NewEvent("", "delete", "driver", "d1")); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestKafkaSinkReportsFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	sink := newKafkaSink(producer, "admin_audit")
	err := sink.Record(context.Background(), NewEvent("", "delete", "driver", "d1"))
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("Record error = %v, want ErrOutOfBrokers", err)
	}
	_ = sink.Close()
}

func TestRoutingKey(t *testing.T) {
	if got := RoutingKey(Event{Entity: "document", Action: "reject"}); got != "document.reject" {
		t.Errorf("RoutingKey() = %q", got)
	}
}

func TestNewUnknownSink(t *testing.T) {
	if _, err := New(context.Background(), models.AuditConfig{Sink: "carrier-pigeon"}, slog.Default()); err == nil {
		t.Fatal("expected error for unknown sink")
	}
}
