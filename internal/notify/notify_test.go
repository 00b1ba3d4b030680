package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := zap.ReplaceGlobals(zap.New(core))
	defer prev()

	n := LogNotifier{}
	n.Notify(context.Background(), 7, "Deposit confirmed", "500 added to your wallet")
	n.NotifyOperator(context.Background(), "deposit 42 needs review")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "notification", entries[0].Message)
	assert.Equal(t, int64(7), entries[0].ContextMap()["userID"])
	assert.Equal(t, "operator notification", entries[1].Message)
	assert.Equal(t, "deposit 42 needs review", entries[1].ContextMap()["text"])
}

func TestNewTelegramNotifier(t *testing.T) {
	n, err := NewTelegramNotifier("", 100)
	assert.Error(t, err)
	assert.Nil(t, n)
}

func TestTelegramNotifierUserFallback(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := zap.ReplaceGlobals(zap.New(core))
	defer prev()

	n := &TelegramNotifier{chatID: 100}
	n.Notify(context.Background(), 7, "Payout", "you won 300")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "notification", entries[0].Message)
}
