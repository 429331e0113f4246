package log

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface usecases and repositories depend on.
// Extra values are attached as fields: zap.Field as-is, errors under
// "error", anything else under "arg<i>".
type Logger interface {
	Info(ctx context.Context, msg string, fields ...any)
	Warn(ctx context.Context, msg string, fields ...any)
	Error(ctx context.Context, msg string, fields ...any)
}

type logger struct {
	l *otelzap.Logger
}

var (
	mu     sync.RWMutex
	global Logger = &logger{l: otelzap.New(zap.NewNop())}
)

// SetupLogger builds the zap production logger; LOG_LEVEL overrides the level.
func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(lvl)); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	l, err := cfg.Build()
	if err != nil {
		return zap.NewExample()
	}
	return l
}

// Setup returns the otelzap logger handlers hold.
func Setup() *otelzap.Logger {
	return otelzap.New(SetupLogger())
}

func Init(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = &logger{l: otelzap.New(l)}
}

func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func New(l *otelzap.Logger) Logger {
	return &logger{l: l}
}

func (lg *logger) Info(ctx context.Context, msg string, fields ...any) {
	lg.l.Ctx(ctx).Info(msg, toFields(fields)...)
}

func (lg *logger) Warn(ctx context.Context, msg string, fields ...any) {
	lg.l.Ctx(ctx).Warn(msg, toFields(fields)...)
}

func (lg *logger) Error(ctx context.Context, msg string, fields ...any) {
	lg.l.Ctx(ctx).Error(msg, toFields(fields)...)
}

func toFields(values []any) []zap.Field {
	fields := make([]zap.Field, 0, len(values))
	for i, v := range values {
		switch f := v.(type) {
		case zap.Field:
			fields = append(fields, f)
		case error:
			fields = append(fields, zap.Error(f))
		default:
			fields = append(fields, zap.Any(fmt.Sprintf("arg%d", i), f))
		}
	}
	return fields
}
