package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var globalLogger zerolog.Logger

var once sync.Once

// InitLogging configures the global zerolog logger, writing to stdout and,
// when logFilePath is set, to that file as well.
func InitLogging(logFilePath string) {
	once.Do(func() {
		var writers []io.Writer
		writers = append(writers, os.Stdout)

		if logFilePath != "" {
			file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
			if err != nil {
				// The logger is not up yet, so stderr is all we have.
				os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, file)
			}
		}

		multi := zerolog.MultiLevelWriter(writers...)
		logger := zerolog.New(multi).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		globalLogger = logger
		// Also back the zerolog/log package-level logger.
		log.Logger = logger
	})
}

// WithLogger returns a context carrying the logger extended with fields.
func WithLogger(ctx context.Context, fields map[string]interface{}) context.Context {
	l := globalLogger.With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

// getLogger pulls the logger out of ctx, falling back to the global one.
func getLogger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &globalLogger
	}
	return l
}

// DebugLog logs a debug level message.
func DebugLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Debug().Msgf(msg, args...)
}

// InfoLog logs an info level message.
func InfoLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Info().Msgf(msg, args...)
}

// WarnLog logs a warning level message.
func WarnLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Warn().Msgf(msg, args...)
}

// ErrorLog logs an error level message. When the first argument is an error
// it is attached as a structured field instead of formatted into the text.
func ErrorLog(ctx context.Context, msg string, args ...interface{}) {
	l := getLogger(ctx)
	if len(args) > 0 {
		if err, ok := args[0].(error); ok {
			l.Error().Err(err).Msg(msg)
			return
		}
		l.Error().Msgf(msg, args...)
		return
	}
	l.Error().Msg(msg)
}
