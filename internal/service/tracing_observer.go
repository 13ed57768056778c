package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingObserver records each use case as a span. Events arrive after the
// use case has finished, so spans are back-dated to the event's start time.
type TracingObserver struct {
	tracer trace.Tracer
}

func NewTracingObserver(tp trace.TracerProvider) *TracingObserver {
	return &TracingObserver{tracer: tp.Tracer("github.com/alexanderramin/tasktory/internal/service")}
}

func (o *TracingObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]attribute.KeyValue, 0, len(event.Fields))
	for k, v := range event.Fields {
		attrs = append(attrs, fieldAttribute(k, v))
	}
	_, span := o.tracer.Start(ctx, event.Name,
		trace.WithTimestamp(event.StartedAt),
		trace.WithAttributes(attrs...),
	)
	if event.Err != nil {
		span.RecordError(event.Err)
		span.SetStatus(codes.Error, event.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(event.StartedAt.Add(event.Duration)))
}

func fieldAttribute(k string, v any) attribute.KeyValue {
	switch val := v.(type) {
	case string:
		return attribute.String(k, val)
	case int:
		return attribute.Int(k, val)
	case int64:
		return attribute.Int64(k, val)
	case bool:
		return attribute.Bool(k, val)
	case float64:
		return attribute.Float64(k, val)
	default:
		return attribute.String(k, fmt.Sprint(val))
	}
}
