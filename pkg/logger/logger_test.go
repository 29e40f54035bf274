package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestWithContextAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("inventory-api", false, &buf)
	defer func() { Logger = zerolog.Nop() }()

	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	Info(ctx).Msg("hello")
	span.End()

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}

	if entry["service"] != "inventory-api" {
		t.Errorf("expected service field, got %v", entry["service"])
	}
	if entry["trace_id"] != span.SpanContext().TraceID().String() {
		t.Errorf("expected trace_id %s, got %v", span.SpanContext().TraceID(), entry["trace_id"])
	}
	if _, ok := entry["span_id"]; !ok {
		t.Errorf("expected span_id field")
	}
}

func TestWithContextWithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("inventory-api", false, &buf)
	defer func() { Logger = zerolog.Nop() }()

	Warn(context.Background()).Msg("no span")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if _, ok := entry["trace_id"]; ok {
		t.Errorf("did not expect trace_id without a span")
	}
}

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		SetLevel(tt.in)
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Errorf("SetLevel(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
