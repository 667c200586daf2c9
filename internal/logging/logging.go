// Package logging builds the diagnostic logger. The terminal belongs to the
// interactive shell, so log output goes to a rotating file instead.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a zap logger writing JSON to a rotating file at path.
// An empty path selects the default location under the user state dir.
func New(level, path string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.Set(strings.ToLower(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if path == "" {
		path = defaultLogPath()
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, zapLevel)
	return zap.New(core), nil
}

func defaultLogPath() string {
	base, err := os.UserHomeDir()
	if err != nil {
		return "agentcli.log"
	}
	return filepath.Join(base, ".local", "state", "agentcli", "agentcli.log")
}
