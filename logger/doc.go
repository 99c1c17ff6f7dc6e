// Package logger provides structured logging for seqkit using zerolog.
//
// It supports JSON and console output, level configuration, component-scoped
// loggers and a small named-logger registry.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	if log, ok := logger.Lookup("sequence"); ok {
//		log.Debug("fused", logger.OperationFields("where", logger.FieldDepth, 2))
//	}
package logger
