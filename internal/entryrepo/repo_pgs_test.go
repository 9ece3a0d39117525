package entryrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/entryrepo"
	"github.com/go-petr/pet-atm/internal/integrationtest"
	"github.com/go-petr/pet-atm/internal/test"
	"github.com/go-petr/pet-atm/pkg/randompkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCreate(t *testing.T) {
	testCases := []struct {
		name    string
		arg     func(tx *sql.Tx) domain.CreateEntryParams
		wantErr error
	}{
		{
			name: "OK",
			arg: func(tx *sql.Tx) domain.CreateEntryParams {
				account := test.SeedAccountWith1000Balance(t, tx)

				return domain.CreateEntryParams{
					AccountID: account.ID,
					Amount:    randompkg.MoneyAmountBetween(-100, -1),
					Type:      domain.EntryTransferOut,
					CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
				}
			},
		},
		{
			name: "ConstraintViolation:transactions_account_id_fkey",
			arg: func(tx *sql.Tx) domain.CreateEntryParams {
				return domain.CreateEntryParams{
					AccountID: "ACC404",
					Amount:    randompkg.MoneyAmountBetween(1, 100),
					Type:      domain.EntryDeposit,
					CreatedAt: time.Now().UTC(),
				}
			},
			wantErr: domain.ErrAccountNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Prepare test transaction and seed database
			tx := integrationtest.SetupTX(t)
			arg := tc.arg(tx)
			entryRepo := entryrepo.NewRepoPGS(tx)

			// Run test
			got, err := entryRepo.Create(context.Background(), arg)
			if err != tc.wantErr {
				t.Fatalf(`entryRepo.Create(context.Background(), %+v) returned error: %v, want %v`, arg, err, tc.wantErr)
			}

			if tc.wantErr != nil {
				return
			}

			want := domain.Entry{
				AccountID: arg.AccountID,
				Amount:    arg.Amount,
				Type:      arg.Type,
				CreatedAt: arg.CreatedAt,
			}

			ignoreFields := cmpopts.IgnoreFields(domain.Entry{}, "ID")
			if diff := cmp.Diff(want, got, ignoreFields); diff != "" {
				t.Errorf(`entryRepo.Create(context.Background(), %+v) returned unexpected difference (-want +got):\n%s"`, arg, diff)
			}

			if got.ID == 0 {
				t.Error("got.ID = 0, want non-zero")
			}
		})
	}
}

func TestGet(t *testing.T) {
	testCases := []struct {
		name      string
		wantEntry func(tx *sql.Tx) domain.Entry
		wantErr   error
	}{
		{
			name: "OK",
			wantEntry: func(tx *sql.Tx) domain.Entry {
				account := test.SeedAccountWith1000Balance(t, tx)
				return test.SeedEntry(t, tx, account.ID, randompkg.MoneyAmountBetween(-10, 10))
			},
		},
		{
			name: "ErrEntryNotFound",
			wantEntry: func(tx *sql.Tx) domain.Entry {
				return domain.Entry{ID: 0}
			},
			wantErr: entryrepo.ErrEntryNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t)
			want := tc.wantEntry(tx)
			entryRepo := entryrepo.NewRepoPGS(tx)

			got, err := entryRepo.Get(context.Background(), want.ID)
			if err != tc.wantErr {
				t.Fatalf(`entryRepo.Get(context.Background(), %v) returned error: %v, want %v`, want.ID, err, tc.wantErr)
			}

			if tc.wantErr != nil {
				return
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf(`entryRepo.Get(context.Background(), %v) returned unexpected difference (-want +got):\n%s`, want.ID, diff)
			}
		})
	}
}

func TestList(t *testing.T) {
	tx := integrationtest.SetupTX(t)
	account := test.SeedAccountWith1000Balance(t, tx)
	other := test.SeedAccountWith1000Balance(t, tx)

	seeded := test.SeedEntries(t, tx, account.ID, 5)
	test.SeedEntries(t, tx, other.ID, 3)

	entryRepo := entryrepo.NewRepoPGS(tx)

	testCases := []struct {
		name          string
		limit, offset int32
		want          []domain.Entry
	}{
		{name: "NewestFirst", limit: 3, offset: 0, want: []domain.Entry{seeded[4], seeded[3], seeded[2]}},
		{name: "Offset", limit: 3, offset: 3, want: []domain.Entry{seeded[1], seeded[0]}},
		{name: "Empty", limit: 3, offset: 10, want: []domain.Entry{}},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := entryRepo.List(context.Background(), account.ID, tc.limit, tc.offset)
			if err != nil {
				t.Fatalf(`entryRepo.List(context.Background(), %q, %d, %d) returned error: %v`,
					account.ID, tc.limit, tc.offset, err)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf(`entryRepo.List(context.Background(), %q, %d, %d) returned unexpected difference (-want +got):\n%s`,
					account.ID, tc.limit, tc.offset, diff)
			}
		})
	}
}
