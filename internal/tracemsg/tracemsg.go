// Package tracemsg carries the otel trace context over NATS message headers.
package tracemsg

import (
	"context"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// NewHeader returns a header with the trace context of ctx injected.
func NewHeader(ctx context.Context) nats.Header {
	headers := make(nats.Header)
	propagator := otel.GetTextMapPropagator()
	propagator.Inject(ctx, propagation.HeaderCarrier(headers))

	return headers
}

// Extract returns ctx extended with the trace context found in header.
func Extract(ctx context.Context, header nats.Header) context.Context {
	propagator := otel.GetTextMapPropagator()
	return propagator.Extract(ctx, propagation.HeaderCarrier(header))
}
