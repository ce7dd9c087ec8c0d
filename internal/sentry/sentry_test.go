package sentry

import (
	"context"
	"errors"
	"testing"

	"github.com/flexprice/prorata/internal/config"
	"github.com/flexprice/prorata/internal/logger"
	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Disabled(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Sentry.Enabled = false
	svc := NewSentryService(cfg, logger.NewNopLogger())

	require.NoError(t, svc.Init())
	assert.False(t, svc.Enabled())
	assert.True(t, svc.Flush(1))

	ctx := context.Background()
	span, spanCtx := svc.StartQuoteSpan(ctx, "proration.quote", map[string]interface{}{"product_id": "iew"})
	assert.Nil(t, span)
	assert.Equal(t, ctx, spanCtx)

	assert.NotPanics(t, func() {
		svc.AddBreadcrumb("proration", "calculating quote", nil)
		svc.CaptureException(errors.New("boom"))
	})
}

func TestService_Enabled(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Sentry.Enabled = true
	cfg.Sentry.DSN = ""
	cfg.Sentry.SampleRate = 1
	svc := NewSentryService(cfg, logger.NewNopLogger())

	require.NoError(t, svc.Init())
	assert.True(t, svc.Enabled())

	span, ctx := svc.StartQuoteSpan(context.Background(), "proration.quote", map[string]interface{}{"policy": "ratio"})
	require.NotNil(t, span)
	assert.Equal(t, "proration.quote", span.Op)
	assert.Equal(t, span, sentry.SpanFromContext(ctx))
	span.Finish()

	assert.NotPanics(t, func() {
		svc.AddBreadcrumb("proration", "calculating quote", map[string]interface{}{"anchor_day": 15})
		svc.CaptureException(errors.New("boom"))
		svc.Flush(1)
	})
}
