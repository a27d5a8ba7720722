package sms

import (
	"context"
	"log/slog"
)

// LogNotifier writes every message to the log instead of sending it.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log_notifier")}
}

func (n *LogNotifier) Send(ctx context.Context, phoneNumber, message string) error {
	n.logger.InfoContext(ctx, "SMS not sent, logging only", "phone_number", phoneNumber, "message", message)
	return nil
}
