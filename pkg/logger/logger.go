package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config salida y nivel mínimo del logger.
type Config struct {
	Env    string    // "development" usa consola legible; cualquier otro, JSON
	Level  string    // nivel mínimo; vacío o inválido cae a info
	Writer io.Writer // destino; nil usa os.Stdout
}

// Logger envuelve zerolog para inyectarlo por constructor en vez de usar el
// global. El global de zerolog igual se redirige para las librerías que lo
// consultan.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según la configuración.
func New(cfg Config) *Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Zerolog expone el logger interno para componentes que reciben
// zerolog.Logger directamente (el shim, los handlers).
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }
