package llm

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Observer receives the outcome of every completion call.
type Observer func(model Model, status string, elapsed time.Duration)

// TracedCompleter wraps a Completer with an OpenTelemetry span and an
// optional Observer (metrics).
type TracedCompleter struct {
	next     Completer
	tracer   trace.Tracer
	observer Observer
}

func NewTracedCompleter(next Completer, observer Observer) *TracedCompleter {
	return &TracedCompleter{
		next:     next,
		tracer:   otel.Tracer("research-gap-be/llm"),
		observer: observer,
	}
}

func (t *TracedCompleter) Complete(ctx context.Context, messages []Message, model Model) (*CompletionResponse, error) {
	ctx, span := t.tracer.Start(ctx, "llm.complete",
		trace.WithAttributes(
			attribute.String("llm.model", string(model)),
			attribute.Int("llm.messages", len(messages)),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := t.next.Complete(ctx, messages, model)
	elapsed := time.Since(start)

	status := StatusOf(err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, status)
	} else {
		span.SetAttributes(attribute.Int("llm.total_tokens", resp.Usage.TotalTokens))
	}

	if t.observer != nil {
		t.observer(model, status, elapsed)
	}
	return resp, err
}

// StatusOf classifies a completion error into a short label.
func StatusOf(err error) string {
	if err == nil {
		return "ok"
	}
	var (
		cfgErr       *ConfigurationError
		upstreamErr  *UpstreamError
		transportErr *TransportError
	)
	switch {
	case errors.As(err, &cfgErr):
		return "configuration_error"
	case errors.As(err, &upstreamErr):
		return "upstream_error"
	case errors.As(err, &transportErr):
		return "transport_error"
	default:
		return "error"
	}
}
