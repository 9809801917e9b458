package slog

import (
	"log/slog"

	"github.com/jimmed/severus"
)

// Ensure Observer implements severus.Observer.
var _ severus.Observer = (*Observer)(nil)

// Observer logs absent fields at debug level.
type Observer struct {
	logger *slog.Logger
}

// NewObserver creates a new Observer. Attributes of logger, such as the
// page or record being extracted, are included in every entry.
func NewObserver(logger *slog.Logger) *Observer {
	return &Observer{logger: logger}
}

// Absent logs field.
func (o *Observer) Absent(field string) {
	o.logger.Debug("field absent", "field", field)
}
