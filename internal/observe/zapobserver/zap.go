// Package zapobserver logs engine events via zap.
package zapobserver

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/djdv/go-pagecache"
)

// Observer implements pagecache.Observer by logging every event at debug level.
type Observer[Key comparable] struct {
	logger *zap.Logger
}

// Compile-time check that Observer implements pagecache.Observer.
var _ pagecache.Observer[int] = (*Observer[int])(nil)

// New creates a new logging observer.
// If logger is nil, a no-op logger is used.
func New[Key comparable](logger *zap.Logger) *Observer[Key] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Observer[Key]{logger: logger}
}

// Observe logs the event.
func (o *Observer[Key]) Observe(event pagecache.Event[Key]) {
	if ce := o.logger.Check(zapcore.DebugLevel, event.Op.String()); ce != nil {
		ce.Write(
			zap.Any("key", event.Key),
			zap.Int("resident", event.Resident),
		)
	}
}
