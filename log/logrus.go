package log

import "github.com/sirupsen/logrus"

type logrusLogger struct {
	backend logrus.FieldLogger
}

var _ Logger = (*logrusLogger)(nil)

func (l *logrusLogger) Trace(msg string, fields ...interface{}) {
	if isEnabled(LevelTrace) {
		// FieldLogger has no Trace, so trace messages go out at debug
		l.withFields(fields).Debug(msg)
	}
}

func (l *logrusLogger) Debug(msg string, fields ...interface{}) {
	if isEnabled(LevelDebug) {
		l.withFields(fields).Debug(msg)
	}
}

func (l *logrusLogger) Info(msg string, fields ...interface{}) {
	if isEnabled(LevelInfo) {
		l.withFields(fields).Info(msg)
	}
}

func (l *logrusLogger) Warn(msg string, fields ...interface{}) {
	if isEnabled(LevelWarn) {
		l.withFields(fields).Warn(msg)
	}
}

func (l *logrusLogger) Error(msg string, fields ...interface{}) {
	if isEnabled(LevelError) {
		l.withFields(fields).Error(msg)
	}
}

func (l *logrusLogger) Fatal(msg string, fields ...interface{}) {
	if isEnabled(LevelFatal) {
		l.withFields(fields).Fatal(msg)
	}
}

func (l *logrusLogger) Sub(fields ...interface{}) Logger {
	return &logrusLogger{
		backend: l.withFields(fields),
	}
}

func isEnabled(level Level) bool {
	return level >= CurrentLevel()
}

func (l *logrusLogger) withFields(fields []interface{}) logrus.FieldLogger {
	if len(fields) == 0 {
		return l.backend
	}
	if len(fields)%2 != 0 {
		panic("must specify arguments as tuples")
	}

	lFields := make(logrus.Fields, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		k, ok := fields[i].(string)
		if !ok {
			panic("argument keys must be strings")
		}
		lFields[k] = fields[i+1]
	}
	return l.backend.WithFields(lFields)
}
