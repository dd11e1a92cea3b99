package logger

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldOverallResult is the structured log field key for the aggregate verdict.
	FieldOverallResult = "overall_result"
	// FieldOverallScore is the structured log field key for the aggregate score.
	FieldOverallScore = "overall_score"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ReportFields returns standard zap fields summarizing a match verdict.
// Empty values are ignored to keep log entries compact.
func ReportFields(result string, overallScore float64) []zap.Field {
	return StringFields(
		StringField{Key: FieldOverallResult, Value: result},
		StringField{Key: FieldOverallScore, Value: strconv.FormatFloat(overallScore, 'f', 2, 64)},
	)
}

// WithReportFields attaches the verdict summary fields to the provided logger.
// If the logger is nil, a no-op logger is created to avoid panics.
func WithReportFields(logger *zap.Logger, result string, overallScore float64) *zap.Logger {
	fields := ReportFields(result, overallScore)
	return WithFields(logger, fields...)
}
