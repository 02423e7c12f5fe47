package log

import "go.uber.org/zap"

var logger = newDefault()

func newDefault() *zap.Logger {
	lg, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return lg
}

// SetLogger replaces the package logger, e.g. with the host application's
// zap instance.
func SetLogger(lg *zap.Logger) {
	if lg != nil {
		logger = lg
	}
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Sync() {
	_ = logger.Sync()
}
