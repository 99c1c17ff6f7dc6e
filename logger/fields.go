package logger

// Standard field key constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldCount     = "count"
	FieldDepth     = "depth"
	FieldReason    = "reason"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	log.Debug("fused", logger.Fields("operation", "where", "depth", 3))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// OperationFields creates fields for an engine operation.
func OperationFields(op string, kvs ...interface{}) map[string]interface{} {
	m := Fields(kvs...)
	m[FieldOperation] = op
	return m
}
