package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger names used across the service. The log report tool groups records by them.
const (
	Requests = "maverik.requests"
	Rag      = "maverik.rag"
	Business = "maverik.business"
	Auth     = "maverik.auth"
	Errors   = "maverik.errors"
	App      = "maverik.app"
)

const (
	MainLogFile  = "maverik_backend.log"
	ErrorLogFile = "errors.log"
)

// ILogger writes one structured record. The first argument is the logger name, the
// details are flattened into top-level JSON fields.
type ILogger interface {
	Debug(name, message string, details map[string]interface{})
	Info(name, message string, details map[string]interface{})
	Warn(name, message string, details map[string]interface{})
	Error(name, message string, details map[string]interface{})
	Sync() error
}

type ZapLogger struct {
	logger *zap.Logger
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = utcTimeEncoder
	cfg.MessageKey = "message"
	cfg.LevelKey = "level"
	cfg.NameKey = "logger"
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	// module/function/line are added by sourceCore
	cfg.CallerKey = zapcore.OmitKey
	cfg.FunctionKey = zapcore.OmitKey
	cfg.StacktraceKey = zapcore.OmitKey
	return cfg
}

func utcTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000000Z"))
}

func rotatingFile(path string, maxSizeMB, backups int) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: backups,
		MaxAge:     30,
		Compress:   true,
	})
}

// NewZapLogger writes INFO+ to <logDir>/maverik_backend.log, ERROR+ to <logDir>/errors.log
// and everything to stdout.
func NewZapLogger(logDir string, isProd bool) *ZapLogger {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "logger: cannot create log dir %s: %v\n", logDir, err)
	}

	jsonEncoder := zapcore.NewJSONEncoder(encoderConfig())

	mainCore := zapcore.NewCore(jsonEncoder, rotatingFile(filepath.Join(logDir, MainLogFile), 10, 5), zap.InfoLevel)
	errorCore := zapcore.NewCore(jsonEncoder, rotatingFile(filepath.Join(logDir, ErrorLogFile), 5, 3), zap.ErrorLevel)

	var consoleEncoder zapcore.Encoder
	if isProd {
		consoleEncoder = jsonEncoder
	} else {
		consoleCfg := zap.NewDevelopmentEncoderConfig()
		consoleCfg.CallerKey = zapcore.OmitKey
		consoleEncoder = zapcore.NewConsoleEncoder(consoleCfg)
	}
	consoleLevel := zap.DebugLevel
	if isProd {
		consoleLevel = zap.InfoLevel
	}
	consoleCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), consoleLevel)

	return newFromCores(mainCore, errorCore, consoleCore)
}

// NewWriterLogger sends JSON records to a single sink. Used by tests and tools.
func NewWriterLogger(w zapcore.WriteSyncer, level zapcore.Level) *ZapLogger {
	return newFromCores(zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), w, level))
}

func newFromCores(cores ...zapcore.Core) *ZapLogger {
	wrapped := make([]zapcore.Core, len(cores))
	for i, c := range cores {
		wrapped[i] = &sourceCore{Core: c}
	}
	l := zap.New(zapcore.NewTee(wrapped...), zap.AddCaller(), zap.AddCallerSkip(2))
	return &ZapLogger{logger: l}
}

func (l *ZapLogger) Debug(name, message string, details map[string]interface{}) {
	l.write(zapcore.DebugLevel, name, message, details)
}

func (l *ZapLogger) Info(name, message string, details map[string]interface{}) {
	l.write(zapcore.InfoLevel, name, message, details)
}

func (l *ZapLogger) Warn(name, message string, details map[string]interface{}) {
	l.write(zapcore.WarnLevel, name, message, details)
}

func (l *ZapLogger) Error(name, message string, details map[string]interface{}) {
	if err, ok := details["error"].(error); ok {
		fields := make(map[string]interface{}, len(details)+1)
		for k, v := range details {
			fields[k] = v
		}
		if _, set := fields["error_type"]; !set {
			fields["error_type"] = errorType(err)
		}
		fields["error"] = err.Error()
		details = fields
	}
	l.write(zapcore.ErrorLevel, name, message, details)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func (l *ZapLogger) write(level zapcore.Level, name, message string, details map[string]interface{}) {
	if ce := l.logger.Named(name).Check(level, message); ce != nil {
		ce.Write(detailFields(details)...)
	}
}

func detailFields(details map[string]interface{}) []zap.Field {
	if len(details) == 0 {
		return nil
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, details[k]))
	}
	return fields
}

func errorType(err error) string {
	t := strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
	if i := strings.LastIndex(t, "."); i >= 0 {
		return t[i+1:]
	}
	return t
}

// sourceCore stamps module, function and line on every entry.
type sourceCore struct {
	zapcore.Core
}

func (c *sourceCore) With(fields []zapcore.Field) zapcore.Core {
	return &sourceCore{Core: c.Core.With(fields)}
}

func (c *sourceCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *sourceCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	if ent.Caller.Defined {
		fields = append(fields,
			zap.String("module", strings.TrimSuffix(filepath.Base(ent.Caller.File), ".go")),
			zap.String("function", shortFunction(ent.Caller.Function)),
			zap.Int("line", ent.Caller.Line),
		)
	}
	return c.Core.Write(ent, fields)
}

func shortFunction(fn string) string {
	if i := strings.LastIndex(fn, "/"); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.Index(fn, "."); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}

func NewNop() *ZapLogger {
	return &ZapLogger{logger: zap.NewNop()}
}
