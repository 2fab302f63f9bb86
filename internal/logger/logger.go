// Package logger 初始化zap日志器, 日志级别与输出格式来自配置
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 创建日志器
// level: debug/info/warn/error, format: console/json, 输出到stderr
func New(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	var conf zap.Config
	switch strings.ToLower(format) {
	case "", "console":
		conf = zap.NewDevelopmentConfig()
	case "json":
		conf = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("log format %q: want console or json", format)
	}
	conf.OutputPaths = []string{"stderr"}
	conf.ErrorOutputPaths = []string{"stderr"}
	conf.DisableStacktrace = true
	conf.Level = zap.NewAtomicLevelAt(lvl)
	return conf.Build()
}
