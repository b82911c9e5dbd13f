package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type contextKey string

const (
	logContextKey contextKey = "log_context"
)

const (
	FieldRequestID    = "request_id"
	FieldOperation    = "operation"
	FieldRunBlockType = "run_block_type"
	FieldAdmissionID  = "admission_id"
	FieldErrorCount   = "validation_error_count"
	FieldErrorFields  = "validation_error_fields"
	FieldIgnored      = "ignored_fields"
	FieldChannel      = "channel"
	FieldProxyLocSet  = "proxy_location_set"
	FieldProxyURLSet  = "proxy_url_set"
	FieldModelSet     = "model_override_set"
	FieldCredType     = "credential_type"
)

// LogContext accumulates fields for the single canonical log line emitted
// at the end of a request.
type LogContext struct {
	mu     sync.RWMutex
	fields []zap.Field
}

func NewLogContext() *LogContext {
	return &LogContext{
		fields: make([]zap.Field, 0, 10),
	}
}

func (lc *LogContext) AddFields(fields ...zap.Field) {
	if lc == nil {
		return
	}
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.fields = append(lc.fields, fields...)
}

func (lc *LogContext) Fields() []zap.Field {
	if lc == nil {
		return nil
	}
	lc.mu.RLock()
	defer lc.mu.RUnlock()

	result := make([]zap.Field, len(lc.fields))
	copy(result, lc.fields)
	return result
}

func WithLogContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

func GetLogContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, ok := ctx.Value(logContextKey).(*LogContext)
	if !ok {
		return nil
	}
	return lc
}

// AddToContext is a no-op when ctx carries no LogContext.
func AddToContext(ctx context.Context, fields ...zap.Field) {
	GetLogContext(ctx).AddFields(fields...)
}
