// Package logging configures the file-backed zap logger
// The terminal owns stdout and stderr while a match runs, so logs only ever go to a file
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultDir is the log directory relative to the working directory
	DefaultDir = "logs"

	// FileName is the active log file inside the log directory
	FileName = "bulletsinair.log"

	// MaxSize triggers rotation of the active log file at startup
	MaxSize = 10 * 1024 * 1024
)

// Setup returns a debug-level file logger under dir when debug is set, and a no-op logger otherwise
// The returned close function flushes and closes the file and must always be called
func Setup(debug bool, dir string) (*zap.Logger, func(), error) {
	if !debug {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	logger := zap.New(core, zap.AddCaller())

	// Libraries writing through the standard logger end up in the same file
	restore := zap.RedirectStdLog(logger)

	closeFn := func() {
		restore()
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, closeFn, nil
}

// rotate renames an oversized log file with a timestamp suffix
func rotate(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= MaxSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
