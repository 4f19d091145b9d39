package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger: a colorized console writer plus a
// rotating plain-text log file, both at the same level. Unknown level names
// fall back to info.
func New(level, logFile string) zerolog.Logger {
	lj := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    25, // MB
		MaxBackups: 3,
		Compress:   true,
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	multi := zerolog.MultiLevelWriter(console, lj)

	logger := zerolog.New(multi).With().Timestamp().Logger()

	name := strings.ToLower(level)
	if name == "warning" {
		name = "warn"
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		logger.Warn().Str("log_level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}

	return logger.Level(lvl)
}
