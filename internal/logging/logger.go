package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Option func(*options)

type options struct {
	level   zapcore.Level
	out     io.Writer
	console bool
}

// Logger is a thin key/value adapter over zap.
type Logger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// WithLevel sets the minimum level from its name (debug, info, warn, error).
// Unknown names fall back to info.
func WithLevel(name string) Option {
	return func(o *options) {
		o.level = ParseLevel(name)
	}
}

// WithOutput redirects log output to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithConsole switches from JSON to human-readable console encoding.
func WithConsole() Option {
	return func(o *options) {
		o.console = true
	}
}

func NewLogger(opts ...Option) *Logger {
	o := options{level: zapcore.InfoLevel, out: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if o.console {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	level := zap.NewAtomicLevelAt(o.level)
	core := zapcore.NewCore(enc, zapcore.AddSync(o.out), level)

	return &Logger{
		logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)),
		level:  level,
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zap.NewNop(), level: zap.NewAtomicLevelAt(zapcore.FatalLevel)}
}

func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) SetLevel(name string) { l.level.SetLevel(ParseLevel(name)) }

// With returns a child logger that always carries keysAndValues.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{logger: l.logger.With(fields(keysAndValues)...), level: l.level}
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log(zapcore.DebugLevel, msg, keysAndValues)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log(zapcore.InfoLevel, msg, keysAndValues)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log(zapcore.WarnLevel, msg, keysAndValues)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.log(zapcore.ErrorLevel, msg, keysAndValues)
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func (l *Logger) Sync() error {
	if err := l.logger.Sync(); err != nil {
		if strings.Contains(err.Error(), "inappropriate ioctl for device") ||
			strings.Contains(err.Error(), "invalid argument") {
			return nil
		}
		return err
	}
	return nil
}

func (l *Logger) log(level zapcore.Level, msg string, keysAndValues []interface{}) {
	if ce := l.logger.Check(level, msg); ce != nil {
		ce.Write(fields(keysAndValues)...)
	}
}

func fields(keysAndValues []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		switch v := keysAndValues[i+1].(type) {
		case string, int, int64, float64, bool:
			out = append(out, zap.Any(key, v))
		case error:
			out = append(out, zap.NamedError(key, v))
		default:
			out = append(out, zap.String(key, fmt.Sprintf("%v", v)))
		}
	}
	return out
}
