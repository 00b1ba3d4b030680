package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	err := env.Parse(cfg)
	assert.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "info", cfg.LogLvl)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	assert.Equal(t, 30*time.Minute, cfg.VotingLead)
	assert.Equal(t, 5*time.Minute, cfg.VotingWindow)
	assert.Equal(t, int64(50), cfg.WithdrawalMin)
	assert.Equal(t, int64(2000), cfg.WithdrawalMax)
	assert.Equal(t, int64(5000), cfg.KycThreshold)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "0.0.0.0:9090")
	t.Setenv("WITHDRAWAL_MAX", "5000")
	t.Setenv("SWEEP_INTERVAL", "10s")

	cfg := &Config{}
	err := env.Parse(cfg)
	assert.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Address)
	assert.Equal(t, int64(5000), cfg.WithdrawalMax)
	assert.Equal(t, 10*time.Second, cfg.SweepInterval)
}
