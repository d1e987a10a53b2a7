package services

import "context"

type contextKey int

const (
	trackKey contextKey = iota
	runIDKey
)

// WithTrack returns a context carrying the catalog track number.
func WithTrack(ctx context.Context, number int) context.Context {
	return context.WithValue(ctx, trackKey, number)
}

// TrackFromContext extracts the catalog track number, if present.
func TrackFromContext(ctx context.Context) (int, bool) {
	if ctx == nil {
		return 0, false
	}
	number, ok := ctx.Value(trackKey).(int)
	return number, ok
}

// WithRunID returns a context carrying the run identifier.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext extracts the run identifier, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	runID, ok := ctx.Value(runIDKey).(string)
	return runID, ok
}
