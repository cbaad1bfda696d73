package notify

import "auction-house/utils"

//go:generate mockgen -destination=mock_notify.go -package=notify auction-house/internal/notify Notifier

// Notifier receives the human-readable outcome of store operations
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// LogNotifier writes notifications to the application log
type LogNotifier struct {
	source string
}

// NewLogNotifier creates a notifier whose entries are tagged with source
func NewLogNotifier(source string) *LogNotifier {
	return &LogNotifier{source: source}
}

func (n *LogNotifier) Success(message string) {
	utils.Info(message, map[string]any{"source": n.source, "kind": "success"})
}

func (n *LogNotifier) Error(message string) {
	utils.Warn(message, map[string]any{"source": n.source, "kind": "error"})
}

func (n *LogNotifier) Info(message string) {
	utils.Info(message, map[string]any{"source": n.source, "kind": "info"})
}

// Discard drops every notification
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
func (Discard) Info(string)    {}
