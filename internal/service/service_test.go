package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/battlearena/battlearena/internal/config"
	"github.com/battlearena/battlearena/internal/notify"
	"github.com/battlearena/battlearena/internal/pg"
	"github.com/battlearena/battlearena/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := repo.New(mockDB, mockTxManager)
	cfg := &config.Config{
		DepositExpiry: 30 * time.Minute,
		WithdrawalMin: 50,
		WithdrawalMax: 10000,
		KycThreshold:  5000,
		VotingWindow:  30 * time.Minute,
	}

	services := New(cfg, repos, mockTxManager, &notify.LogNotifier{})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.TournamentService)
	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.VoteService)
	assert.NotNil(t, services.DisputeService)
	assert.NotNil(t, services.AdminService)
}
