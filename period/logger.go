package period

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.StandardLogger())
}

// SetLogger заменяет логгер пакета. nil возвращает стандартный логгер logrus.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.StandardLogger()
	}
	logger.Store(l)
}

// entry возвращает запись лога с полем component=period.
func entry() *log.Entry {
	return logger.Load().WithField("component", "period")
}
