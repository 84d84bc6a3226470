package common

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&buf, nil))

	LoggerFromContext(WithRequestID(context.Background(), "r-1"), fallback).Info("x")
	assert.Contains(t, buf.String(), "req_id=r-1")

	buf.Reset()
	scoped := fallback.With("scope", "http")
	LoggerFromContext(WithLogger(context.Background(), scoped), nil).Info("y")
	assert.Contains(t, buf.String(), "scope=http")

	assert.NotNil(t, LoggerFromContext(context.Background(), nil))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}
