package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the application logger. Stdout always receives output; a log
// file is added when a path is configured.
type ZapLogger struct {
	*zap.Logger
	file *os.File
}

// ZapConfig holds Zap logger configuration
type ZapConfig struct {
	Level    string
	FilePath string
	Format   string // json or console
	Service  string
}

// NewZapLogger builds a logger from config
func NewZapLogger(config ZapConfig) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(config.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encCfg.EncodeDuration = zapcore.StringDurationEncoder

	stdoutEnc := zapcore.NewJSONEncoder(encCfg)
	if config.Format == "console" {
		stdoutEnc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(stdoutEnc, zapcore.Lock(os.Stdout), level)

	zl := &ZapLogger{}
	if config.FilePath != "" {
		file, err := openLogFile(config.FilePath)
		if err != nil {
			return nil, err
		}
		zl.file = file
		// files are always JSON so they can be shipped as-is
		core = zapcore.NewTee(core, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), level))
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)}
	if config.Service != "" {
		opts = append(opts, zap.Fields(zap.String("service", config.Service)))
	}
	zl.Logger = zap.New(core, opts...)

	return zl, nil
}

// InitZapLoggerFromConfig builds the logger for the running app
func InitZapLoggerFromConfig(configs *models.Config) (*ZapLogger, error) {
	return NewZapLogger(ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Format:   configs.Logger.Format,
		Service:  configs.App.Name,
	})
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *ZapLogger {
	return &ZapLogger{Logger: zap.NewNop()}
}

// Close flushes buffered entries and releases the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file == nil {
		return nil
	}
	return zl.file.Close()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
