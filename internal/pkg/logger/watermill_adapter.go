package logger

import (
	"github.com/ThreeDotsLabs/watermill"
)

// WatermillAdapter bridges the in-process message bus onto ILogger so bus
// internals land in the same log files as everything else.
type WatermillAdapter struct {
	logger ILogger
	module string
	fields watermill.LogFields
}

func NewWatermillAdapter(l ILogger, module string) *WatermillAdapter {
	return &WatermillAdapter{logger: l, module: module}
}

func (a *WatermillAdapter) details(fields watermill.LogFields) map[string]interface{} {
	details := make(map[string]interface{}, len(a.fields)+len(fields))
	for k, v := range a.fields {
		details[k] = v
	}
	for k, v := range fields {
		details[k] = v
	}
	return details
}

func (a *WatermillAdapter) Error(msg string, err error, fields watermill.LogFields) {
	details := a.details(fields)
	if err != nil {
		details["error"] = err.Error()
	}
	a.logger.Error(a.module, msg, details)
}

func (a *WatermillAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.Info(a.module, msg, a.details(fields))
}

func (a *WatermillAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.Debug(a.module, msg, a.details(fields))
}

func (a *WatermillAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.Debug(a.module, msg, a.details(fields))
}

func (a *WatermillAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &WatermillAdapter{
		logger: a.logger,
		module: a.module,
		fields: a.fields.Add(fields),
	}
}
