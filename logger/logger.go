package logger

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	logger *zap.SugaredLogger
	once   sync.Once
)

// Init initializes the global structured logger.
// Development config by default, JSON production config when ENV=production.
func Init() {
	once.Do(func() {
		env := os.Getenv("ENV")

		var base *zap.Logger
		var err error
		if env == "production" {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}

		logger = base.Sugar()
	})
}

// L returns the global logger instance.
func L() *zap.SugaredLogger {
	if logger == nil {
		Init()
	}
	return logger
}

// Sync flushes buffered log entries. Call before process exit.
func Sync() {
	if logger == nil {
		return
	}
	if err := logger.Sync(); err != nil {
		log.Printf("failed to flush log entries: %v", err)
	}
}

// Info is a shorthand for L().Infow.
func Info(msg string, args ...any) {
	L().Infow(msg, args...)
}

// Warn is a shorthand for L().Warnw.
func Warn(msg string, args ...any) {
	L().Warnw(msg, args...)
}

// Error is a shorthand for L().Errorw.
func Error(msg string, args ...any) {
	L().Errorw(msg, args...)
}

// Debug is a shorthand for L().Debugw.
func Debug(msg string, args ...any) {
	L().Debugw(msg, args...)
}

// Fatal logs the message and exits the process.
func Fatal(msg string, args ...any) {
	L().Fatalw(msg, args...)
}
