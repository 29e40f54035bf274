package tracing

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNewProviderInstallsGlobals(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()

	tp, err := newProvider("inventory-api", sdktrace.WithSyncer(exporter))
	if err != nil {
		t.Fatalf("newProvider failed: %v", err)
	}
	defer Shutdown(context.Background(), tp)

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 exported span, got %d", len(spans))
	}
	if spans[0].Name != "op" {
		t.Errorf("expected span name op, got %s", spans[0].Name)
	}

	var found bool
	for _, attr := range spans[0].Resource.Attributes() {
		if string(attr.Key) == "service.name" && attr.Value.AsString() == "inventory-api" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected service.name resource attribute")
	}
}

func TestShutdownIgnoresForeignProviders(t *testing.T) {
	if err := Shutdown(context.Background(), noop.NewTracerProvider()); err != nil {
		t.Errorf("expected nil error for non-SDK provider, got %v", err)
	}
}
