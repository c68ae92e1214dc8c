// Package logger configura el logging estructurado de la aplicación de la
// clínica sobre zerolog. Todos los eventos llevan el campo fijo "service"
// para distinguir instancias cuando la API convive con otros procesos.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env     string // development -> consola legible; el resto -> JSON
	Level   string // trace, debug, info, warn, error
	Service string // nombre de la aplicación, se estampa en cada evento
}

// Logger logger estructurado de la aplicación.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger. En development la salida es consola legible con hora
// local; en cualquier otro entorno, JSON por stdout.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()

	// También como logger global de zerolog, para librerías que lo usen.
	log.Logger = zl

	return &Logger{zl: zl}
}

// Trace, Debug, Info, Warn, Error, Fatal delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos adicionales.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno por si se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
