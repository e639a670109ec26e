package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings.
const (
	// Generation
	FieldUnit      = "unit"
	FieldTypeName  = "type_name"
	FieldElemType  = "element_type"
	FieldComponent = "component"

	// Files and paths
	FieldPath   = "path"
	FieldConfig = "config"

	// Counts and timing
	FieldCount      = "count"
	FieldBytes      = "bytes"
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	type DirWriter struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewDirWriter(root string) *DirWriter {
//	    return &DirWriter{logger: logger.ComponentLogger("vecgen.writer")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
//	unitLogger := logger.ChildLogger(base, logger.FieldUnit, unit.Name)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
