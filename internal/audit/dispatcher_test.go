package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/models"
)

func TestDispatcherDeliversInOrder(t *testing.T) {
	rec := &Recorder{}
	d := NewDispatcher(rec, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	d.Dispatch(Event{Action: "dentist_submitted", Entity: "dentist", EntityID: "1"})
	d.Dispatch(Event{Action: "form_cancelled", Entity: "dentist"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}

	entries := rec.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Action != "dentist_submitted" || entries[0].EntityID != "1" {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
	if entries[1].CreatedAt.IsZero() {
		t.Fatal("CreatedAt not set")
	}
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	rec := &Recorder{}
	var buf bytes.Buffer
	d := NewDispatcher(rec, slog.New(slog.NewTextHandler(&buf, nil)))
	_ = d.Close(context.Background())
	_ = d.Close(context.Background())

	d.Dispatch(Event{Action: "late"})

	if got := len(rec.Entries()); got != 0 {
		t.Fatalf("entries = %d, want 0", got)
	}
	if !strings.Contains(buf.String(), "audit dispatcher closed") {
		t.Fatalf("drop not logged: %q", buf.String())
	}
}

func TestDispatchRacingClose(t *testing.T) {
	rec := &Recorder{}
	d := NewDispatcher(rec, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch(Event{Action: "form_cancelled"})
			}
		}()
	}

	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	wg.Wait()

	before := len(rec.Entries())
	d.Dispatch(Event{Action: "late"})
	if got := len(rec.Entries()); got != before {
		t.Fatalf("entries grew after close: %d -> %d", before, got)
	}
}

func TestLoggerWritesPayload(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewJSONHandler(&buf, nil)))

	d := NewDispatcher(Tee{l}, nil)
	d.Dispatch(Event{
		Action:  "appointment_submitted",
		Entity:  "appointment",
		Payload: map[string]string{"patientId": "P001"},
	})
	_ = d.Close(context.Background())

	line := strings.TrimSpace(buf.String())
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("log line is not JSON: %q", line)
	}
	if rec["action"] != "appointment_submitted" || rec["component"] != "audit" {
		t.Fatalf("unexpected record %v", rec)
	}
	payload, ok := rec["payload"].(map[string]any)
	if !ok || payload["patientId"] != "P001" {
		t.Fatalf("payload missing: %v", rec["payload"])
	}
}

func TestRecorderLimit(t *testing.T) {
	rec := NewRecorder(2)
	ctx := context.Background()
	for _, a := range []string{"a", "b", "c"} {
		_ = rec.Write(ctx, models.AuditLog{Action: a})
	}

	entries := rec.Entries()
	if len(entries) != 2 || entries[0].Action != "b" || entries[1].Action != "c" {
		t.Fatalf("entries = %+v", entries)
	}
}
