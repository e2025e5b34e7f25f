package reporting

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Reporter receives errors that reached the user.
type Reporter interface {
	Report(err error)
}

// Log reports errors to a zap logger. Production reporters log at error
// level; otherwise reports are kept at debug.
type Log struct {
	logger *zap.Logger
	level  zapcore.Level
}

func NewLog(logger *zap.Logger, production bool) *Log {
	level := zapcore.DebugLevel
	if production {
		level = zapcore.ErrorLevel
	}
	return &Log{logger: logger.Named("errors"), level: level}
}

func (l *Log) Report(err error) {
	if err == nil {
		return
	}
	if ce := l.logger.Check(l.level, "error reported"); ce != nil {
		ce.Write(zap.Error(err))
	}
}

// Func adapts a function to a Reporter.
type Func func(error)

func (f Func) Report(err error) { f(err) }
