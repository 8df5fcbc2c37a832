package logs

import (
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/promptforge/genbridge/config"
	"github.com/rs/zerolog"
)

// Logger defaults to a no-op until one of the Init functions runs, so
// library code can log unconditionally.
var Logger = zerolog.Nop()

// InitLogger sets up the file-backed logger used by the pixelart tool.
// Console output goes to stderr, and only at debug level, so that
// stdout stays a clean result channel.
func InitLogger(cfg config.Log) {
	level := parseLogLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	writers = append(writers, &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   true,
	})
	if level <= zerolog.DebugLevel {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
}

// InitConsole sets up a stderr-only logger. The gemini-bridge tool
// prints its result on stdout, so nothing else may write there.
func InitConsole(level string) {
	zerolog.SetGlobalLevel(parseLogLevel(level))
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}
