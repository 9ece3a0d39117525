// Package atmapp wires the ledger store, services and console handler of the ATM.
package atmapp

import (
	"context"
	"database/sql"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-atm/internal/accountrepo"
	"github.com/go-petr/pet-atm/internal/accountservice"
	"github.com/go-petr/pet-atm/internal/atmservice"
	"github.com/go-petr/pet-atm/internal/consoledelivery"
	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/entryrepo"
	"github.com/go-petr/pet-atm/internal/ledger"
	"github.com/go-petr/pet-atm/internal/ledger/memory"
	"github.com/go-petr/pet-atm/internal/ledgerrepo"
	"github.com/go-petr/pet-atm/pkg/configpkg"
	"github.com/go-petr/pet-atm/pkg/dbpkg"

	// Ledger store drivers.
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// DriverMemory selects the in-memory ledger store.
const DriverMemory = "memory"

// App holds the db connection, the console handler and configuration.
type App struct {
	DB      *sql.DB // nil for the memory store
	Handler *consoledelivery.Handler
	Config  configpkg.Config
}

type provisioner interface {
	ledger.Store
	Provision(ctx context.Context, accounts []domain.CreateAccountParams, device domain.DeviceState) (bool, error)
}

// New creates App with the configured ledger store migrated and, when enabled, seeded with demo data.
func New(ctx context.Context, config configpkg.Config, logger zerolog.Logger) (*App, error) {
	ctx = logger.WithContext(ctx)
	app := &App{Config: config}

	var (
		store    provisioner
		accounts *accountservice.Service
	)

	switch config.DBDriver {
	case DriverMemory:
		mem := memory.New()
		store = mem
		accounts = accountservice.New(mem.Accounts(), mem.Entries())
	case dbpkg.DriverPostgres, dbpkg.DriverSQLite:
		db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
		if err != nil {
			return nil, errors.Wrap(err, "cannot connect to database")
		}

		app.DB = db

		if err := dbpkg.Migrate(ctx, db, config.DBDriver); err != nil {
			app.Close()
			return nil, errors.Wrap(err, "cannot migrate database")
		}

		store = ledgerrepo.NewRepoPGS(db)
		accounts = accountservice.New(accountrepo.NewRepoPGS(db), entryrepo.NewRepoPGS(db))
	default:
		return nil, errors.Errorf("unsupported db driver %q", config.DBDriver)
	}

	if config.SeedDemoData {
		now := time.Now().UTC().Truncate(time.Microsecond)

		seeded, err := store.Provision(ctx, ledger.DemoAccounts(now), ledger.DemoDevice(now))
		if err != nil {
			app.Close()
			return nil, errors.Wrap(err, "cannot seed demo data")
		}

		logger.Info().Bool("seeded", seeded).Msg("demo data provisioned")
	}

	handler, err := consoledelivery.NewHandler(atmservice.New(store), accounts, logger, config.TechnicianCode, config.HistorySize)
	if err != nil {
		app.Close()
		return nil, errors.Wrap(err, "cannot create console handler")
	}

	app.Handler = handler

	return app, nil
}

// Run serves one console session.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	return a.Handler.Run(ctx, in, out)
}

// Close releases the database connection.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}

	return a.DB.Close()
}
