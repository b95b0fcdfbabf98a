package record_changed

import (
	"maak/internal/realtime"
	"maak/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Hub interface {
	Publish(event realtime.Event)
}
