package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// InitLogger sets the level of the shared logger.
func InitLogger(level logrus.Level) {
	logger.SetLevel(level)
}

// ParseLevel turns a config value into a logrus level, falling back to info.
func ParseLevel(value string) logrus.Level {
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func GetLogger() *logrus.Logger {
	return logger
}
