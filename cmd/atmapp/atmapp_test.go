package atmapp

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-atm/pkg/configpkg"
)

func newApp(t *testing.T, config configpkg.Config) *App {
	t.Helper()

	app, err := New(context.Background(), config, zerolog.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, app.Close())
	})

	return app
}

func run(t *testing.T, app *App, lines ...string) string {
	t.Helper()

	var out bytes.Buffer

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, app.Run(context.Background(), in, &out))

	return out.String()
}

func testConfig(driver, source string) configpkg.Config {
	return configpkg.Config{
		DBDriver:       driver,
		DBSource:       source,
		TechnicianCode: "TECH123",
		SeedDemoData:   true,
		HistorySize:    5,
	}
}

func TestConsoleSessionMemory(t *testing.T) {
	app := newApp(t, testConfig(DriverMemory, ""))

	out := run(t, app,
		"1", "1111", "1111",
		"1", "200", "yes",
		"3", "2222", "500", "yes",
		"4",
		"5",
		"6",
		"2", "TECH123",
		"1",
		"7",
		"3",
	)

	require.Contains(t, out, "Withdrawal successful. New balance: $4800.00")
	require.Contains(t, out, "Type   : WITHDRAW")
	require.Contains(t, out, "Transfer successful. New balance: $4300.00")
	require.Contains(t, out, "Type   : TRANSFER")
	require.Contains(t, out, "Balance: $4300.00")
	require.Contains(t, out, "TRANSFER_OUT")
	require.Contains(t, out, "WITHDRAW")

	// Two printed receipts; the transfer leaves the device cash alone.
	require.Contains(t, out, "Cash    : $9800.00")
	require.Contains(t, out, "Paper   : 18")
	require.Contains(t, out, "Ink     : 18")
	require.Contains(t, out, "$20  notes: 60")
	require.Contains(t, out, "Thank you for using ATM. Goodbye!")
}

func TestConsoleSessionSQLitePersists(t *testing.T) {
	source := filepath.Join(t.TempDir(), "atm.db")

	first := newApp(t, testConfig("sqlite", source))

	out := run(t, first, "1", "2222", "2222", "2", "100.50", "no", "6", "3")
	require.Contains(t, out, "Deposit successful. New balance: $3100.50")
	require.NoError(t, first.Close())

	// Seeding is skipped once accounts exist.
	second := newApp(t, testConfig("sqlite", source))

	out = run(t, second, "1", "2222", "2222", "4", "5", "6", "3")
	require.Contains(t, out, "Balance: $3100.50")
	require.Contains(t, out, "DEPOSIT")
	require.Contains(t, out, "100.50")
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := New(context.Background(), testConfig("mysql", ""), zerolog.Nop())
	require.ErrorContains(t, err, `unsupported db driver "mysql"`)
}
