package logger

import "github.com/harrison/hevcparam/internal/param"

// Multi fans every message out to each logger in order. Nil entries are
// skipped.
type Multi []param.Logger

// Debugf forwards to every logger.
func (m Multi) Debugf(format string, args ...interface{}) {
	for _, l := range m {
		if l != nil {
			l.Debugf(format, args...)
		}
	}
}

// Infof forwards to every logger.
func (m Multi) Infof(format string, args ...interface{}) {
	for _, l := range m {
		if l != nil {
			l.Infof(format, args...)
		}
	}
}

// Warnf forwards to every logger.
func (m Multi) Warnf(format string, args ...interface{}) {
	for _, l := range m {
		if l != nil {
			l.Warnf(format, args...)
		}
	}
}

// Errorf forwards to every logger.
func (m Multi) Errorf(format string, args ...interface{}) {
	for _, l := range m {
		if l != nil {
			l.Errorf(format, args...)
		}
	}
}
