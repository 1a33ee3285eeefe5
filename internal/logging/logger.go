package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger. Debug and trace levels switch to the
// human-readable console writer; everything else stays JSON.
func New(level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	zerolog.TimestampFieldName = "timestamp"

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	if lvl <= zerolog.DebugLevel {
		cw := zerolog.NewConsoleWriter()
		cw.TimeFormat = time.DateTime
		cw.Out = w
		w = cw
	}

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	if err != nil {
		logger.Warn().Str("level", level).Msg("unknown log level, using warn")
	}
	return logger
}
