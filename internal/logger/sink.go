package logger

import "go.uber.org/zap"

// ErrorSink forwards shader diagnostics to a zap logger at error level.
type ErrorSink struct {
	log *zap.Logger
}

// NewErrorSink returns a sink adding fields to every entry.
// A nil logger means the global one at the time of each call.
func NewErrorSink(log *zap.Logger, fields ...zap.Field) *ErrorSink {
	if log != nil && len(fields) > 0 {
		log = log.With(fields...)
	}
	return &ErrorSink{log: log}
}

// LogError implements shader.ErrorLogger.
func (s *ErrorSink) LogError(msg string) {
	log := s.log
	if log == nil {
		log = Log
	}
	log.Error(msg)
}
