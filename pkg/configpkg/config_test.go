package configpkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600)
	require.NoError(t, err)

	return dir
}

func TestLoad(t *testing.T) {
	dir := writeEnvFile(t, "DB_DRIVER=memory\nTECHNICIAN_CODE=T0\nHISTORY_SIZE=3\n")

	config, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, "memory", config.DBDriver)
	require.Equal(t, "T0", config.TechnicianCode)
	require.Equal(t, int32(3), config.HistorySize)
	require.Equal(t, "./data/atm.db", config.DBSource)
	require.Equal(t, "production", config.Environment)
	require.True(t, config.SeedDemoData)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := writeEnvFile(t, "DB_DRIVER=sqlite\n")

	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("SEED_DEMO_DATA", "false")

	config, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, "postgres", config.DBDriver)
	require.False(t, config.SeedDemoData)
}

func TestLoadRejectsHistorySize(t *testing.T) {
	testCases := []struct {
		name string
		size string
	}{
		{name: "Zero", size: "0"},
		{name: "Negative", size: "-1"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			dir := writeEnvFile(t, "HISTORY_SIZE="+tc.size+"\n")

			_, err := Load(dir)
			require.ErrorContains(t, err, "HISTORY_SIZE must be positive")
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}
