// logging/logging.go
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance.
var Logger *zap.Logger

const timeLayout = "2006-01-02 15:04:05"

// Init initializes the global logger: a colored console core on stderr for
// development use, tee'd with a plain-text core appending to one dated file
// per day under dir ("<dir>/<YYYY-MM-DD>_automation-toolkit.log"). An empty
// dir disables the file core.
func Init(dir string, debug bool) error {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), level),
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		name := time.Now().Format("2006-01-02") + "_automation-toolkit.log"
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		fileCfg := zap.NewDevelopmentEncoderConfig()
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		fileCfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileCfg), zapcore.AddSync(f), level))
	}

	Logger = zap.New(zapcore.NewTee(cores...))
	return nil
}

// L returns the global logger. Before Init it falls back to a basic
// development logger so early startup and tests can always log.
func L() *zap.Logger {
	if Logger == nil {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	return Logger
}

// Tool returns the logger for one tool, named "tools.<name>".
func Tool(name string) *zap.Logger {
	return L().Named("tools." + name)
}

// Sync flushes any buffered log entries.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
