package logger

// Standard field key constants for structured logging.
const (
	FieldComponent    = "component"
	FieldOperation    = "operation"
	FieldStatus       = "status"
	FieldError        = "error"
	FieldTarget       = "target"
	FieldMatch        = "match"
	FieldGrantKey     = "grant_key"
	FieldPath         = "path"
	FieldDecision     = "decision"
	FieldResolutionID = "resolution_id"
	FieldRuleCount    = "rule_count"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	logger.Fields(logger.FieldTarget, "user", logger.FieldRuleCount, 3)
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}
