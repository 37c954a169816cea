package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDIsAttached(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := L()
	ReplaceGlobal(zap.New(core))
	t.Cleanup(func() { ReplaceGlobal(prev) })

	ctx := WithRequestID(context.Background(), "req-1")
	Info(ctx, "match created", String("match_id", "m1"))
	Warn(context.Background(), "no id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "m1", entries[0].ContextMap()["match_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestBuild_UnknownLevelFallsBackToInfo(t *testing.T) {
	l, err := Build(Config{Level: "loud", Encoding: "json"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
}
