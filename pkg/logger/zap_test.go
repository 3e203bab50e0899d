package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrap_With(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := Wrap(zap.New(core)).With(zap.String("session_id", "s1"))

	log.Warn("corrupt wishlist data", zap.String("key", "wishlist:s1"))

	entries := logs.FilterMessage("corrupt wishlist data").All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "s1", ctx["session_id"])
		assert.Equal(t, "wishlist:s1", ctx["key"])
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	}
}

func TestNewZapLogger_UnknownLevel(t *testing.T) {
	log := NewZapLogger(&ZapLoggerConfig{Level: "loud", Encoding: "json"})
	assert.NotNil(t, log)
	log.Info("still works")
}
