// Package logx holds the process-wide zap logger: a colored console core,
// optionally masked, teed with a plain file core.
package logx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level                string    // debug|info|warn|error
	FilePath             string    // e.g. "logs/seedscanner_{start}.log"; "" means console only
	ConsoleOnly          bool      // ignore FilePath
	HideSecretsInConsole bool      // redact mnemonics and keys on the console core
	Console              io.Writer // defaults to os.Stdout
}

var StartTime = time.Now()

var (
	global  = zap.NewNop()
	sugar   = global.Sugar()
	fileOut *os.File
)

// Init replaces the global logger. The file core, when enabled, always gets
// the unmasked record so found mnemonics survive in the run log.
func Init(cfg Config) error {
	level := parseLevel(cfg.Level)

	cores := []zapcore.Core{consoleCore(cfg, level)}
	if cfg.FilePath != "" && !cfg.ConsoleOnly {
		fc, err := fileCore(resolvePath(cfg.FilePath), level)
		if err != nil {
			return err
		}
		cores = append(cores, fc)
	}

	logger := zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.PanicLevel),
	)
	zap.ReplaceGlobals(logger)

	global = logger
	sugar = logger.Sugar()
	return nil
}

func consoleCore(cfg Config, level zapcore.LevelEnabler) zapcore.Core {
	var out io.Writer = os.Stdout
	if cfg.Console != nil {
		out = cfg.Console
	}
	enc := zapcore.NewConsoleEncoder(encoderConfig(zapcore.CapitalColorLevelEncoder))
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(out)), level)
	if !cfg.HideSecretsInConsole {
		return core
	}
	return &maskingCore{
		Core:         core,
		sensitive:    defaultSensitiveKeys(),
		maskPattern:  defaultMaskPattern(),
		replaceValue: "[REDACTED]",
	}
}

func fileCore(path string, level zapcore.LevelEnabler) (zapcore.Core, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	fileOut = f
	enc := zapcore.NewConsoleEncoder(encoderConfig(zapcore.CapitalLevelEncoder))
	return zapcore.NewCore(enc, zapcore.AddSync(f), level), nil
}

func encoderConfig(levelEnc zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "lvl",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEnc,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// Close syncs and closes the file (if open).
func Close() {
	_ = global.Sync()
	if fileOut != nil {
		_ = fileOut.Sync()
		_ = fileOut.Close()
		fileOut = nil
	}
}

func L() *zap.Logger        { return global }
func S() *zap.SugaredLogger { return sugar }

func With(name string) *zap.SugaredLogger     { return sugar.Named(name) }
func WithFields(kv ...any) *zap.SugaredLogger { return sugar.With(kv...) }

func resolvePath(tmpl string) string {
	return strings.NewReplacer(
		"{start}", StartTime.Format("2006-01-02_15-04-05"),
		"{pid}", fmt.Sprintf("%d", os.Getpid()),
	).Replace(tmpl)
}

func parseLevel(lvl string) zapcore.LevelEnabler {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error", "err":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
