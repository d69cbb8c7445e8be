package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tukarid/tukarbot/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		logLvl    string
		expectErr bool
	}{
		{name: "Info level", logLvl: "info"},
		{name: "Error level", logLvl: "error"},
		{name: "Debug level", logLvl: "debug"},
		{name: "Unsupported level", logLvl: "verbose", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.logLvl})
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
