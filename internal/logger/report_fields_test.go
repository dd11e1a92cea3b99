package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  result  ", Value: "  Pass  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	require.Len(t, fields, 1)
	assert.Equal(t, "result", fields[0].Key)
	assert.Equal(t, "Pass", fields[0].String)

	assert.Empty(t, StringFields())
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	enriched := WithFields(zap.New(core), zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bar", entries[0].ContextMap()["foo"])

	fallback := WithFields(nil, zap.String("baz", "qux"))
	require.NotNil(t, fallback)
	fallback.Info("must not panic")
}

func TestReportFields(t *testing.T) {
	fields := ReportFields("Pass", 88.5)

	require.Len(t, fields, 2)
	assert.Equal(t, FieldOverallResult, fields[0].Key)
	assert.Equal(t, "Pass", fields[0].String)
	assert.Equal(t, FieldOverallScore, fields[1].Key)
	assert.Equal(t, "88.50", fields[1].String)

	assert.Len(t, ReportFields("", 0), 1)
}

func TestWithReportFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	enriched := WithReportFields(zap.New(core), "Fail", 12.5)
	enriched.Info("test log")

	entries := observed.All()
	require.Len(t, entries, 1)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "Fail", ctx[FieldOverallResult])
	assert.Equal(t, "12.50", ctx[FieldOverallScore])
}
