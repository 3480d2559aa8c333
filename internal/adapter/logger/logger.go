package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

type LoggerAdapter struct {
	logger *logrus.Logger
}

// NewLoggerAdapter returns a logger configured for the environment: JSON in
// production, human-readable text otherwise.
func NewLoggerAdapter(env string) *LoggerAdapter {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		log.SetLevel(logrus.DebugLevel)
	}

	return &LoggerAdapter{logger: log}
}

func (l *LoggerAdapter) Info(message string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Info(message)
}

func (l *LoggerAdapter) Warn(message string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(message)
}

func (l *LoggerAdapter) Error(message string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Error(message)
}

func (l *LoggerAdapter) Fatal(message string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Fatal(message)
}
