package logger

import (
	"testing"

	"github.com/battlearena/battlearena/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		lvl       string
		expectErr bool
	}{
		{name: "info level", lvl: "info"},
		{name: "debug level", lvl: "debug"},
		{name: "error level", lvl: "error"},
		{name: "unknown level", lvl: "verbose", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.lvl})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
