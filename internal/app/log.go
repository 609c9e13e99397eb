package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
)

// Logger writes human-readable lines to the console and, with a log file,
// JSON lines to a rotated file. The console never receives debug events
// unless verbose is set.
type Logger struct {
	zl   zerolog.Logger
	file *lumberjack.Logger
}

func NewLogger(console io.Writer, verbose bool, logFile string) (*Logger, error) {
	consoleLevel := zerolog.WarnLevel
	if verbose {
		consoleLevel = zerolog.DebugLevel
	}
	writers := []io.Writer{
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
				Out:        console,
				NoColor:    true,
				TimeFormat: time.TimeOnly,
			}},
			Level: consoleLevel,
		},
	}

	l := &Logger{}
	if strings.TrimSpace(logFile) != "" {
		dir := filepath.Dir(logFile)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		l.file = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			LocalTime:  true,
		}
		writers = append(writers, l.file)
	}

	l.zl = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
	return l, nil
}

func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

func (l *Logger) Event(event string, fields map[string]any) {
	l.zl.Debug().Str("event", event).Fields(fields).Send()
}
