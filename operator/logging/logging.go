package logging

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"strings"
)

type SubSystem string

const (
	Config      SubSystem = "config"
	Maintenance SubSystem = "maintenance"
	Scheduler   SubSystem = "scheduler"
	Server      SubSystem = "server"
)

// Setup installs a JSON logger writing to w at the named level as the default logger.
func Setup(w io.Writer, level string) {
	var logLevel slog.LevelVar
	logLevel.Set(ParseLevel(level))
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: &logLevel})))
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return TraceLevel
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Warn(msg string, subSystem SubSystem, keyvals ...interface{}) {
	withSubsystem := append([]interface{}{"subsystem", subSystem}, keyvals...)
	slog.Warn(msg, withSubsystem...)
}

func Info(msg string, subSystem SubSystem, keyvals ...interface{}) {
	withSubsystem := append([]interface{}{"subsystem", subSystem}, keyvals...)
	slog.Info(msg, withSubsystem...)
}

func Error(msg string, subSystem SubSystem, keyvals ...interface{}) {
	withSubsystem := append([]interface{}{"subsystem", subSystem}, keyvals...)

	// Check for error values and add their types
	for i := 0; i+1 < len(keyvals); i += 2 {
		if err, ok := keyvals[i+1].(error); ok {
			withSubsystem = append(withSubsystem, "error-type", reflect.TypeOf(err).String())
		}
	}

	slog.Error(msg, withSubsystem...)
}

func Debug(msg string, subSystem SubSystem, keyvals ...interface{}) {
	withSubsystem := append([]interface{}{"subsystem", subSystem}, keyvals...)
	slog.Debug(msg, withSubsystem...)
}

const TraceLevel = -8

func Trace(msg string, subSystem SubSystem, keyvals ...interface{}) {
	withSubsystem := append([]interface{}{"subsystem", subSystem}, keyvals...)
	slog.Log(context.Background(), TraceLevel, msg, withSubsystem...)
}
