package log

import (
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger installs a JSON slog default logger at the given level.
// Attribute keys are renamed to the Cloud Logging schema so the records are
// ingested as structured entries, and errors logged through ErrAttr carry
// the stacktrace attached by ErrFmtHandler.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource:   true,
		Level:       ToLogLevel(loglevel),
		ReplaceAttr: replaceCloudLoggingAttr,
	}
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(os.Stdout, &ops))
	slog.SetDefault(slog.New(handler))
}

// replaceCloudLoggingAttr maps the standard slog keys to their Cloud
// Logging equivalents.
func replaceCloudLoggingAttr(groups []string, attr slog.Attr) slog.Attr {
	switch attr.Key {
	case slog.LevelKey:
		attr.Key = "severity"
	case slog.MessageKey:
		attr.Key = "message"
	case slog.SourceKey:
		attr.Key = "logging.googleapis.com/sourceLocation"
	}
	return attr
}

// ToLogLevel converts a textual log level to its slog.Level, panicking on
// an unknown name.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level: %s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr wraps err as a slog attribute under ErrAttrKey so handlers can
// recognize and enrich it.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
