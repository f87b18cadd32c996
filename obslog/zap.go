package obslog

import "go.uber.org/zap"

// zapLogger adapts a *zap.SugaredLogger to the Logger interface, the same
// shape open-policy-agent/opa's logging/plugins/ozap package uses to wrap
// zap behind OPA's own logging.Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZap wraps sugar as a Logger. Passing a nil sugar returns Noop.
func NewZap(sugar *zap.SugaredLogger) Logger {
	if sugar == nil {
		return Noop
	}
	return zapLogger{sugar: sugar}
}

func (l zapLogger) Debugw(msg string, fields ...any) { l.sugar.Debugw(msg, fields...) }
func (l zapLogger) Warnw(msg string, fields ...any)  { l.sugar.Warnw(msg, fields...) }
