package ctxutil

import "context"

type traceDataKey struct{}

type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	val := ctx.Value(traceDataKey{})
	if td, ok := val.(*TraceData); ok {
		return td
	}
	return nil
}

// Detach returns a background context that keeps the trace data of ctx but
// none of its deadline or cancellation.
func Detach(ctx context.Context) context.Context {
	out := context.Background()
	if td := GetTraceData(ctx); td != nil {
		cp := *td
		out = WithTraceData(out, &cp)
	}
	return out
}
