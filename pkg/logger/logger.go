// Package logger provides leveled, structured logging for protostage.
// Output is a single line per event in either text or json format.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name ("debug", "info", ...) to a LogLevel.
// Unknown names fall back to INFO.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

type Logger struct {
	level  LogLevel
	logger *log.Logger
	format string
	fields map[string]interface{}
}

type Config struct {
	Level  LogLevel
	Output io.Writer
	Format string // "json" or "text" (default)
}

// New creates a logger with defaults: INFO to stderr in text format.
// PROTOSTAGE_LOG_LEVEL overrides the level when set.
func New() *Logger {
	level := INFO
	if env := os.Getenv("PROTOSTAGE_LOG_LEVEL"); env != "" {
		level = ParseLevel(env)
	}
	return NewWithConfig(Config{
		Level:  level,
		Output: os.Stderr,
		Format: "text",
	})
}

func NewWithConfig(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	if config.Format == "" {
		config.Format = "text"
	}

	return &Logger{
		level:  config.Level,
		logger: log.New(config.Output, "", 0),
		format: config.Format,
		fields: make(map[string]interface{}),
	}
}

// WithFields creates a new logger carrying extra key/value context.
// Values are given as alternating key, value pairs; a trailing key
// without a value is dropped.
func (l *Logger) WithFields(keyVals ...interface{}) *Logger {
	newLogger := &Logger{
		level:  l.level,
		logger: l.logger,
		format: l.format,
		fields: make(map[string]interface{}),
	}

	for k, v := range l.fields {
		newLogger.fields[k] = v
	}

	for i := 0; i+1 < len(keyVals); i += 2 {
		key := fmt.Sprintf("%v", keyVals[i])
		newLogger.fields[key] = keyVals[i+1]
	}

	return newLogger
}

// WithField creates a new logger that includes one extra bit of context,
// like "component=stager".
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(key, value)
}

func (l *Logger) Debug(msg string, keyVals ...interface{}) {
	l.log(DEBUG, msg, keyVals...)
}

func (l *Logger) Info(msg string, keyVals ...interface{}) {
	l.log(INFO, msg, keyVals...)
}

func (l *Logger) Warn(msg string, keyVals ...interface{}) {
	l.log(WARN, msg, keyVals...)
}

func (l *Logger) Error(msg string, keyVals ...interface{}) {
	l.log(ERROR, msg, keyVals...)
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *Logger) GetLevel() LogLevel {
	return l.level
}

func (l *Logger) IsDebugEnabled() bool {
	return l.level <= DEBUG
}

func (l *Logger) log(level LogLevel, msg string, keyVals ...interface{}) {
	if level < l.level {
		return
	}

	allFields := make(map[string]interface{}, len(l.fields)+len(keyVals)/2)
	for k, v := range l.fields {
		allFields[k] = v
	}
	for i := 0; i+1 < len(keyVals); i += 2 {
		key := fmt.Sprintf("%v", keyVals[i])
		allFields[key] = keyVals[i+1]
	}

	timestamp := time.Now().Format(time.RFC3339)

	if l.format == "json" {
		l.logger.Print(formatJSON(timestamp, level, msg, allFields))
		return
	}
	l.logger.Print(formatText(timestamp, level, msg, allFields))
}

func formatJSON(timestamp string, level LogLevel, msg string, fields map[string]interface{}) string {
	entry := make(map[string]interface{}, len(fields)+3)
	for k, v := range fields {
		if err, ok := v.(error); ok {
			entry[k] = err.Error()
			continue
		}
		entry[k] = v
	}
	entry["time"] = timestamp
	entry["level"] = level.String()
	entry["msg"] = msg

	data, err := json.Marshal(entry)
	if err != nil {
		// Fields that json cannot represent degrade to text.
		return formatText(timestamp, level, msg, fields)
	}
	return string(data)
}

func formatText(timestamp string, level LogLevel, msg string, fields map[string]interface{}) string {
	parts := []string{
		fmt.Sprintf("[%s]", timestamp),
		fmt.Sprintf("[%s]", level.String()),
		msg,
	}

	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fieldParts := make([]string, 0, len(keys))
		for _, k := range keys {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, formatValue(fields[k])))
		}
		parts = append(parts, fmt.Sprintf("| %s", strings.Join(fieldParts, " ")))
	}

	return strings.Join(parts, " ")
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		if strings.Contains(v, " ") {
			return fmt.Sprintf("%q", v)
		}
		return v
	case error:
		return fmt.Sprintf("%q", v.Error())
	case time.Duration:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
