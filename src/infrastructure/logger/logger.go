package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.Logger and exposes the gin integration helpers used
// across the application.
type Logger struct {
	Log *zap.Logger
}

// NewLogger creates a production logger (JSON output, info level).
func NewLogger() (*Logger, error) {
	log, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{Log: log}, nil
}

// NewDevelopmentLogger creates a development logger (console output, debug level).
func NewDevelopmentLogger() (*Logger, error) {
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &Logger{Log: log}, nil
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.Log.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.Log.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.Log.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.Log.Error(msg, fields...)
}

func (l *Logger) Panic(msg string, fields ...zap.Field) {
	l.Log.Panic(msg, fields...)
}

func (l *Logger) Fatal(msg string, fields ...zap.Field) {
	l.Log.Fatal(msg, fields...)
}

// GinZapLogger returns a gin middleware that logs each request through zap.
func (l *Logger) GinZapLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()
		l.Log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("clientIP", c.ClientIP()),
		)
	}
}

// SetupGinWithZapLogger redirects gin's default writers to zap.
func (l *Logger) SetupGinWithZapLogger() {
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = &zapWriter{log: l.Log, level: zapcore.InfoLevel}
	gin.DefaultErrorWriter = &zapWriter{log: l.Log, level: zapcore.ErrorLevel}
}

// SetupGinWithZapLoggerInDevelopment redirects gin's writers to zap while
// keeping debug mode enabled.
func (l *Logger) SetupGinWithZapLoggerInDevelopment() {
	gin.SetMode(gin.DebugMode)
	gin.DefaultWriter = &zapWriter{log: l.Log, level: zapcore.InfoLevel}
	gin.DefaultErrorWriter = &zapWriter{log: l.Log, level: zapcore.ErrorLevel}
}

type zapWriter struct {
	log   *zap.Logger
	level zapcore.Level
}

func (w *zapWriter) Write(p []byte) (int, error) {
	msg := string(p)
	switch w.level {
	case zapcore.ErrorLevel:
		w.log.Error(msg)
	default:
		w.log.Info(msg)
	}
	return len(p), nil
}
