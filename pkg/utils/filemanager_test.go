package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "invoices.txt")

	require.NoError(t, EnsureParentDir(path))
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, EnsureParentDir("invoices.txt"))
}

func TestGenerateOutputFileName(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC)

	assert.Equal(t, "invoices_20240115_143022.xlsx", GenerateOutputFileName("invoices_{timestamp}", ".xlsx", now))
	assert.Equal(t, "day_20240115.XLSX", GenerateOutputFileName("day_{date}.XLSX", ".xlsx", now))

	name := GenerateOutputFileName("{uuid}", ".xlsx", now)
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
	assert.Len(t, strings.TrimSuffix(name, ".xlsx"), 36)
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	assert.True(t, FileExists(path))
}
