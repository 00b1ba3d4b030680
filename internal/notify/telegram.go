package notify

import (
	"context"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"go.uber.org/zap"
)

// TelegramNotifier pushes operator events (deposit references, payout and
// withdrawal decisions) to the admin chat. User notifications fall back to
// the log since players are not reachable over telegram.
type TelegramNotifier struct {
	bot      *telego.Bot
	chatID   int64
	fallback LogNotifier
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, err
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, userID int, title, body string) {
	n.fallback.Notify(ctx, userID, title, body)
}

func (n *TelegramNotifier) NotifyOperator(ctx context.Context, text string) {
	_, err := n.bot.SendMessage(ctx, tu.Message(tu.ID(n.chatID), text))
	if err != nil {
		zap.L().Error("telegram notification failed", zap.Error(err))
	}
}
