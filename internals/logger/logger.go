package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"youthcentre_backend/internals/helpers/dbtime"
)

// Log is the process-wide logger. It starts as a no-op so packages and tests
// can log before Init runs.
var Log = zap.NewNop().Sugar()

// Config represents configuration options for logger initialization
type Config struct {
	Debug        bool           // Enable debug logging
	TimeLocation *time.Location // Time zone used in timestamps (default Africa/Algiers)
	LogToFile    bool           // Also write JSON lines to LogsDir/app.log
	LogsDir      string         // Directory for logs (default: working directory)
}

func Init(config Config) error {
	loc := config.TimeLocation
	if loc == nil {
		loc = dbtime.Location()
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.In(loc).Format("2006-01-02 15:04:05"))
		},
	}

	level := zapcore.InfoLevel
	if config.Debug {
		level = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stdout), level),
	}

	if config.LogToFile {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir := wd
		if config.LogsDir != "" {
			dir = filepath.Join(wd, config.LogsDir)
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
		f, err := os.OpenFile(filepath.Join(dir, "app.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}

		// file output without colors
		fileEncoderConfig := encoderConfig
		fileEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(f), level))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named("main").Sugar()
	return nil
}

// Named returns a child logger ("http", "database", "scheduler", ...).
func Named(name string) *zap.SugaredLogger {
	return Log.Named(name)
}

func Sync() {
	_ = Log.Sync()
}
