package logger

import (
	"github.com/sirupsen/logrus"
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	log *logrus.Logger
}

// NewLogger creates a logger with the given level. Unknown levels fall back
// to info.
func NewLogger(level string) *defaultLogger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return &defaultLogger{log: log}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	l.log.Debugf(msg, a...)
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	l.log.Infof(msg, a...)
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	l.log.Warnf(msg, a...)
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	l.log.Errorf(msg, a...)
}
