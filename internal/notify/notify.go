package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier is the delivery capability the core calls after committing state.
// Delivery is fire-and-forget: implementations log failures and never return
// them into ledger flows.
type Notifier interface {
	Notify(ctx context.Context, userID int, title, body string)
	NotifyOperator(ctx context.Context, text string)
}

// LogNotifier writes notifications to the application log. It is the default
// user-facing delivery until a push channel is wired.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, userID int, title, body string) {
	zap.L().Info("notification",
		zap.Int("userID", userID),
		zap.String("title", title),
		zap.String("body", body),
	)
}

func (LogNotifier) NotifyOperator(_ context.Context, text string) {
	zap.L().Info("operator notification", zap.String("text", text))
}
