package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FormatJSON    = "json"
	FormatPretty  = "pretty"
	FormatConsole = "console"
	BooleanTrue   = "true"
)

// Logger is a zerolog logger bound to a service. The level is held per
// logger, so library loggers and test writers never change each other.
type Logger struct {
	logger  zerolog.Logger
	service string
}

// Init installs the global logger described by cfg and drops component
// loggers derived from the previous one.
func Init(cfg *Config) {
	cfg.ApplyDefaults()
	name := cfg.ServiceName
	if name == "" {
		name = "default"
	}
	globalLogger = New(cfg, name)
	if isConsole(cfg.Format) {
		log.Logger = globalLogger.logger
	}
	registry.reset()
}

// New builds a logger from cfg. An unknown level falls back to info.
func New(cfg *Config, serviceName string) *Logger {
	var zl zerolog.Logger
	if isConsole(cfg.Format) {
		zl = newConsoleLogger(cfg, serviceName)
	} else {
		zl = zerolog.New(outputWriter(cfg.Output))
		if cfg.Timestamp {
			zl = zl.With().Timestamp().Logger()
		}
	}
	if cfg.Caller {
		zl = zl.With().Caller().Logger()
	}
	return &Logger{logger: zl.Level(parseLevel(cfg.Level)), service: serviceName}
}

// NewDefault returns an info-level console logger on stderr.
func NewDefault(serviceName string) *Logger {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return New(cfg, serviceName)
}

// NewFromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT, LOG_NO_COLOR and
// LOG_TIMESTAMP, falling back to the defaults of Config.
func NewFromEnv(serviceName string) *Logger {
	cfg := &Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
		Output: os.Getenv("LOG_OUTPUT"),
	}
	cfg.ApplyDefaults()
	cfg.NoColor = os.Getenv("LOG_NO_COLOR") == BooleanTrue
	cfg.Timestamp = os.Getenv("LOG_TIMESTAMP") != "false"
	return New(cfg, serviceName)
}

// NewWriter returns a JSON logger on w, for tests that read log output.
func NewWriter(w io.Writer, level string, serviceName string) *Logger {
	return &Logger{logger: zerolog.New(w).Level(parseLevel(level)), service: serviceName}
}

func (l *Logger) derive(zl zerolog.Logger) *Logger {
	return &Logger{logger: zl, service: l.service}
}

// WithComponent tags every entry with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return l.derive(l.logger.With().Str(FieldComponent, name).Logger())
}

// WithFields attaches fields to every entry.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return l.derive(l.logger.With().Fields(fields).Logger())
}

// WithError attaches err to every entry.
func (l *Logger) WithError(err error) *Logger {
	return l.derive(l.logger.With().Err(err).Logger())
}

// GetLogger returns the underlying zerolog.Logger.
func (l *Logger) GetLogger() zerolog.Logger {
	return l.logger
}

// DebugEnabled reports whether debug entries are written. Hot paths
// check it before building fields.
func (l *Logger) DebugEnabled() bool {
	return l.logger.GetLevel() <= zerolog.DebugLevel
}

func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	emit(l.logger.Debug(), msg, fields)
}

func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	emit(l.logger.Info(), msg, fields)
}

func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	emit(l.logger.Warn(), msg, fields)
}

func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	emit(l.logger.Error(), msg, fields)
}

// emit writes one entry. A disabled level yields a nil event, which
// zerolog treats as a no-op.
func emit(event *zerolog.Event, msg string, fields []map[string]interface{}) {
	if event == nil {
		return
	}
	for _, fm := range fields {
		event.Fields(fm)
	}
	event.Msg(msg)
}

// --- Global logger ---

var globalLogger *Logger

// SetGlobalLogger replaces the global logger.
func SetGlobalLogger(l *Logger) {
	globalLogger = l
	registry.reset()
}

// GetGlobalLogger returns the global logger, creating a default one if needed.
func GetGlobalLogger() *Logger {
	if globalLogger == nil {
		globalLogger = NewDefault("default")
	}
	return globalLogger
}

func Debug(msg string, fields ...map[string]interface{}) { GetGlobalLogger().Debug(msg, fields...) }
func Info(msg string, fields ...map[string]interface{})  { GetGlobalLogger().Info(msg, fields...) }
func Warn(msg string, fields ...map[string]interface{})  { GetGlobalLogger().Warn(msg, fields...) }
func Error(msg string, fields ...map[string]interface{}) { GetGlobalLogger().Error(msg, fields...) }

// WithComponent returns a component-tagged logger from the global logger.
func WithComponent(name string) *Logger {
	return GetGlobalLogger().WithComponent(name)
}

// --- internal helpers ---

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

func isConsole(format string) bool {
	switch strings.ToLower(format) {
	case FormatConsole, FormatPretty:
		return true
	}
	return false
}

func outputWriter(output string) *os.File {
	if strings.EqualFold(output, "stdout") {
		return os.Stdout
	}
	return os.Stderr
}

// levelStyle is the console tag and ANSI color of a level.
type levelStyle struct {
	tag   string
	color string
}

var levelStyles = map[string]levelStyle{
	"trace": {"TRC", "\033[90m"},
	"debug": {"DBG", "\033[36m"},
	"info":  {"INF", "\033[32m"},
	"warn":  {"WRN", "\033[33m"},
	"error": {"ERR", "\033[31m"},
	"fatal": {"FTL", "\033[35m"},
}

func paint(s, color string, noColor bool) string {
	if noColor || color == "" {
		return s
	}
	return color + s + "\033[0m"
}

// newConsoleLogger writes "[SVC][INF] message key:value" lines, where SVC
// is the first three letters of the service name.
func newConsoleLogger(cfg *Config, serviceName string) zerolog.Logger {
	prefix := ""
	if serviceName != "default" && len(serviceName) >= 3 {
		prefix = paint("["+strings.ToUpper(serviceName[:3])+"]", "\033[34m", cfg.NoColor)
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        outputWriter(cfg.Output),
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
		FormatLevel: func(i interface{}) string {
			lvl := fmt.Sprint(i)
			style, ok := levelStyles[lvl]
			if !ok {
				style = levelStyle{tag: strings.ToUpper(lvl)}
			}
			return prefix + paint("["+style.tag+"]", style.color, cfg.NoColor)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
	}).With().Timestamp().Logger()
}
