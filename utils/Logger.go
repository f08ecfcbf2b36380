package utils

import (
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps logrus and is handed to every gateway at construction. One
// instance per log target, shared by reference, never mutated after NewLogger.
type Logger struct {
	*logrus.Logger
}

// NewLogger builds the structured logger
func NewLogger() *Logger {
	log := logrus.New()

	// Set log level from environment
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	// Set formatter (JSON for production, Text for development)
	env := os.Getenv("GIN_MODE")
	if env == "release" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			PrettyPrint:     false,
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	// Configure log rotation with lumberjack
	logFile := &lumberjack.Logger{
		Filename:   "logs/app.log",
		MaxSize:    10,   // MB
		MaxBackups: 5,    // Keep 5 old log files
		MaxAge:     30,   // Days
		Compress:   true, // Compress old logs
	}

	log.SetOutput(logFile)

	// Also log to stdout in development
	if env != "release" {
		log.SetOutput(os.Stdout)
	}

	return &Logger{Logger: log}
}

// ErrorLog writes one structured failure entry for a store-layer error:
// component and operation name it, the entry carries the message, the stack
// context and the severity. Logging never swallows the error - callers still
// return it.
func (l *Logger) ErrorLog(component, operation string, err error) {
	l.WithFields(logrus.Fields{
		"component": component,
		"operation": operation,
		"stack":     string(debug.Stack()),
	}).Error(err.Error())
}

// LogInfo logs with structured fields
func (l *Logger) LogInfo(message string, fields map[string]interface{}) {
	l.WithFields(logrus.Fields(fields)).Info(message)
}

func (l *Logger) LogWarn(message string, fields map[string]interface{}) {
	l.WithFields(logrus.Fields(fields)).Warn(message)
}

func (l *Logger) LogDebug(message string, fields map[string]interface{}) {
	l.WithFields(logrus.Fields(fields)).Debug(message)
}
