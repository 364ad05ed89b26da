package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across headsmith.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRunID = "run_id"

	// Components
	FieldComponent = "component"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts
	FieldCount      = "count"
	FieldTotalCount = "total_count"
	FieldMissing    = "missing"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"
	FieldLine = "line"

	// Domain
	FieldMaterial  = "material"
	FieldFont      = "font"
	FieldGlyph     = "glyph"
	FieldTexture   = "texture"
	FieldTier      = "tier"
	FieldCategory  = "category"
	FieldCandidate = "candidate"
	FieldSection   = "section"
)

type contextKey string

const (
	runIDKey     contextKey = "logger_run_id"
	componentKey contextKey = "logger_component"
)

// WithRunID adds a generation run ID to the context for logging
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// RunIDFromContext returns the run ID stored in ctx, or "".
func RunIDFromContext(ctx context.Context) string {
	runID, _ := ctx.Value(runIDKey).(string)
	return runID
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		fields = append(fields, FieldRunID, runID)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// LoggerFromContext returns the global logger with fields extracted from context.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	return WithContext(Logger, ctx)
}

// WithContext decorates base with the fields carried by ctx.
func WithContext(base *zap.SugaredLogger, ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	resolver := resolve.NewTextureResolver(rows, cfg, logger.ComponentLogger("resolve.texture"))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
