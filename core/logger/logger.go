package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	l, _ := zap.NewProduction(zap.AddCallerSkip(1))
	sugar = l.Sugar()
}

// Init rebuilds the logger for the given environment. Call once at startup;
// the package-level functions are usable before Init with production defaults.
func Init(env string) {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		sugar.Errorw("logger init failed, keeping defaults", "error", err)
		return
	}
	sugar = l.Sugar()
}

func Debug(msg string, args ...any) {
	sugar.Debugw(msg, args...)
}

func Info(msg string, args ...any) {
	sugar.Infow(msg, args...)
}

func Warn(msg string, args ...any) {
	sugar.Warnw(msg, args...)
}

func Error(msg string, args ...any) {
	sugar.Errorw(msg, args...)
}

func Sync() {
	_ = sugar.Sync()
}
