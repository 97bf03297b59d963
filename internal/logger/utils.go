package logger

import "go.uber.org/zap"

// convertToZapFields converts error and additional field maps into Zap's structured logging fields.
// This internal helper method transforms the simplified field maps used by this logger wrapper
// into the zap.Field format required by the underlying Zap logger.
//
// The method handles both error objects and arbitrary key-value pairs from the fields maps.
// If multiple fields maps contain the same key, the later maps will override earlier ones.
func (l *Logger) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	// Iterate through optional field maps and convert them into Zap fields.
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

// Info logs an informational message, along with an optional error and structured fields.
// Use Info for general application progress and successful operations.
//
// Example:
//
//	logger.Info("image inserted", nil, map[string]interface{}{
//	    "file_name": "cat.jpg",
//	    "class":     "animals",
//	})
func (l *Logger) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Debug logs a debug-level message, useful for development and troubleshooting.
func (l *Logger) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Warn logs a warning message, indicating potential issues that aren't necessarily errors.
func (l *Logger) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs an error message, including details of the error and additional context fields.
// Use Error when something has gone wrong that affects the current operation but
// doesn't require immediate termination of the application.
func (l *Logger) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// Fatal logs a critical error message and terminates the application.
// Use Fatal only for errors that make it impossible for the application to continue running.
// This method will call os.Exit(1) after logging the message.
func (l *Logger) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, l.convertToZapFields(err, fields...)...)
}
