package pkg

import "github.com/rs/zerolog"

// Notifier receives user-facing warnings raised during a transform. The UI
// wires its own presentation; nothing in this package blocks on it.
type Notifier interface {
	Warn(message string)
}

// NotifierFunc adapts a plain function.
type NotifierFunc func(message string)

func (f NotifierFunc) Warn(message string) {
	f(message)
}

type logNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier routes warnings to a zerolog logger.
func NewLogNotifier(logger zerolog.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Warn(message string) {
	n.logger.Warn().Msg(message)
}
