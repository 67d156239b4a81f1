package notify

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"droscher.com/DrinkCatalog/pkg/model"
)

var ErrEmptyMessage = errors.New("notification needs a subject")

// Notifier delivers a message to the catalog administrators.
type Notifier interface {
	NotifyAdmin(ctx context.Context, fromUser *model.User, subject string, details string) error
}

// LogNotifier writes admin notifications to the log.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("admin")}
}

func (n *LogNotifier) NotifyAdmin(_ context.Context, fromUser *model.User, subject string, details string) error {
	if strings.TrimSpace(subject) == "" {
		return ErrEmptyMessage
	}

	fields := []zap.Field{zap.String("subject", subject), zap.String("details", details)}
	if fromUser != nil {
		fields = append(fields, zap.String("from", fromUser.Email), zap.Stringer("from_uuid", fromUser.UUID))
	}

	n.logger.Info("admin notification", fields...)

	return nil
}
