package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the application logger.
type Options struct {
	Level       string
	Development bool
	// FilePath enables a JSON log file next to the console output. Empty disables it.
	FilePath     string
	MaxSizeBytes int64
	Backups      uint
	// ObfuscatedLength is how many leading characters of an email local part stay readable.
	ObfuscatedLength int
}

// Logger represents application logger.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New creates new Logger instance writing to stdout and, optionally, a rotating file.
func New(opts Options) (*Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level: %w", err)
		}
		level = parsed
	}

	var consoleEncoder zapcore.Encoder
	if opts.Development {
		consoleEncoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(productionEncoderConfig())
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level),
	}

	if opts.FilePath != "" {
		writer, err := newRotatingWriter(opts.FilePath, opts.MaxSizeBytes, opts.Backups)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(productionEncoderConfig()),
			zapcore.AddSync(writer),
			level,
		))
	}

	core := NewRedactingCore(zapcore.NewTee(cores...), opts.ObfuscatedLength)

	return NewWithCore(core), nil
}

// NewWithCore wraps an existing zap core.
func NewWithCore(core zapcore.Core) *Logger {
	return &Logger{sugar: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

func productionEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// newRotatingWriter keeps the live file at path and rotates it once it grows past maxSize bytes.
func newRotatingWriter(path string, maxSize int64, backups uint) (*rotatelogs.RotateLogs, error) {
	ext := filepath.Ext(path)
	pattern := strings.TrimSuffix(path, ext) + ".%Y%m%d" + ext

	options := []rotatelogs.Option{
		rotatelogs.WithLinkName(path),
		rotatelogs.WithMaxAge(-1),
		rotatelogs.WithRotationCount(backups + 1),
	}
	if maxSize > 0 {
		options = append(options, rotatelogs.WithRotationSize(maxSize))
	}

	w, err := rotatelogs.New(pattern, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return w, nil
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, keysAndValues ...any) {
	l.sugar.Fatalw(msg, keysAndValues...)
}

// With returns a child logger that adds the given key/value pairs to every entry.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...)}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

type ctxKey struct{}

// WithContext stores l on ctx so that request-scoped code can log with its fields.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// Ctx returns the logger stored on ctx, or l when there is none.
func (l *Logger) Ctx(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	if scoped, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return scoped
	}
	return l
}
