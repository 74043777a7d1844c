package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "menu.txt", cfg.MenuFile)
	assert.Equal(t, "invoices.txt", cfg.InvoiceLog)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.True(t, cfg.ShouldClearScreen())
	assert.Equal(t, "Thank you for dining with us!", cfg.Farewell)
}

func TestLoad_OverridesAndKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
menu_file: data/menu.xlsx
currency_symbol: "€"
clear_screen: false
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/menu.xlsx", cfg.MenuFile)
	assert.Equal(t, "€", cfg.CurrencySymbol)
	assert.False(t, cfg.ShouldClearScreen())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "invoices.txt", cfg.InvoiceLog)
	assert.Equal(t, "invoices_{timestamp}.xlsx", cfg.ExportNameFormat)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed yaml", "menu_file: [unterminated"},
		{"unknown log level", "log_level: chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "./exports", cfg.ExportDir)
	assert.Equal(t, "./logs/billing.log", cfg.LogFile)
}
