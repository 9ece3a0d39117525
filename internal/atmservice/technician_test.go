package atmservice

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/inventory"
	"github.com/go-petr/pet-atm/internal/ledger"
	"github.com/go-petr/pet-atm/internal/ledger/memory"
	"github.com/stretchr/testify/require"
)

func TestBanknotesRoundTrip(t *testing.T) {
	// Scenario D on an empty cassette.
	svc, mem := newTestService(t, nil)
	setDevice(t, mem, func(d *domain.DeviceState) {
		d.Notes = domain.Banknotes{}
		d.Cash = d.Notes.Total()
	})

	ctx := context.Background()

	d, err := svc.AddBanknotes(ctx, domain.Banknotes{Notes20: 10})
	require.NoError(t, err)
	require.Equal(t, int32(10), d.Notes.Notes20)
	require.True(t, d.Cash.Equal(dec("200")))

	d, err = svc.CollectBanknotes(ctx, domain.Banknotes{Notes20: 5})
	require.NoError(t, err)
	require.Equal(t, int32(5), d.Notes.Notes20)
	require.True(t, d.Cash.Equal(dec("100")))
	require.True(t, inventory.Balanced(&d))
	require.Equal(t, testClock, d.UpdatedAt)
}

func TestBanknotesRejections(t *testing.T) {
	testCases := []struct {
		name    string
		run     func(svc *Service) error
		wantErr error
	}{
		{
			name: "AddNegative",
			run: func(svc *Service) error {
				_, err := svc.AddBanknotes(context.Background(), domain.Banknotes{Notes20: 1, Notes100: -1})
				return err
			},
			wantErr: domain.ErrNegativeBanknotes,
		},
		{
			name: "AddNothing",
			run: func(svc *Service) error {
				_, err := svc.AddBanknotes(context.Background(), domain.Banknotes{})
				return err
			},
			wantErr: domain.ErrNoBanknotes,
		},
		{
			name: "CollectNegative",
			run: func(svc *Service) error {
				_, err := svc.CollectBanknotes(context.Background(), domain.Banknotes{Notes50: -1})
				return err
			},
			wantErr: domain.ErrNegativeBanknotes,
		},
		{
			name: "CollectTooMany",
			run: func(svc *Service) error {
				_, err := svc.CollectBanknotes(context.Background(), domain.Banknotes{Notes20: 1, Notes50: 1, Notes100: 61})
				return err
			},
			wantErr: domain.ErrInsufficientBanknotes,
		},
		{
			name: "NegativePaper",
			run: func(svc *Service) error {
				_, err := svc.RefillPaper(context.Background(), -1)
				return err
			},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name: "NegativeInk",
			run: func(svc *Service) error {
				_, err := svc.RefillInk(context.Background(), -3)
				return err
			},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name: "PaperOverflow",
			run: func(svc *Service) error {
				_, err := svc.RefillPaper(context.Background(), math.MaxInt32)
				return err
			},
			wantErr: domain.ErrCapacityExceeded,
		},
		{
			name: "InkOverflow",
			run: func(svc *Service) error {
				_, err := svc.RefillInk(context.Background(), math.MaxInt32-19)
				return err
			},
			wantErr: domain.ErrCapacityExceeded,
		},
		{
			name: "AddNotesOverflow",
			run: func(svc *Service) error {
				_, err := svc.AddBanknotes(context.Background(), domain.Banknotes{Notes20: math.MaxInt32})
				return err
			},
			wantErr: domain.ErrCapacityExceeded,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(t, nil)

			require.ErrorIs(t, tc.run(svc), tc.wantErr)

			d, err := svc.DeviceStatus(context.Background())
			require.NoError(t, err)
			require.Equal(t, ledger.DemoDevice(testClock), d)
		})
	}
}

func TestCollectShortageNamesDenomination(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.CollectBanknotes(context.Background(), domain.Banknotes{Notes50: 57})

	var shortage *domain.BanknoteShortageError
	require.True(t, errors.As(err, &shortage))
	require.Equal(t, domain.Note50, shortage.Denomination)
	require.Equal(t, int32(56), shortage.Available)
}

func TestRefillAndFirmware(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	d, err := svc.RefillPaper(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, int32(20), d.Paper)

	d, err = svc.RefillPaper(ctx, 30)
	require.NoError(t, err)
	require.Equal(t, int32(50), d.Paper)

	d, err = svc.RefillInk(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, int32(25), d.Ink)

	d, err = svc.UpdateFirmware(ctx, "v2.1.0-rc1")
	require.NoError(t, err)
	require.Equal(t, "v2.1.0-rc1", d.FirmwareVersion)

	d, err = svc.DeviceStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(50), d.Paper)
	require.Equal(t, int32(25), d.Ink)
	require.Equal(t, "v2.1.0-rc1", d.FirmwareVersion)
	require.True(t, inventory.Balanced(&d))
}

func TestCashInvariantAcrossTechnicianOperations(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	steps := []domain.Banknotes{
		{Notes20: 3, Notes50: 2, Notes100: 1},
		{Notes100: 7},
		{Notes20: 63, Notes50: 58},
	}

	for _, notes := range steps {
		d, err := svc.AddBanknotes(ctx, notes)
		require.NoError(t, err)
		require.True(t, inventory.Balanced(&d))

		d, err = svc.CollectBanknotes(ctx, notes)
		require.NoError(t, err)
		require.True(t, inventory.Balanced(&d))
	}

	d, err := svc.CollectBanknotes(ctx, domain.Banknotes{Notes20: 60, Notes50: 56, Notes100: 60})
	require.NoError(t, err)
	require.True(t, d.Cash.IsZero())
	require.True(t, inventory.Balanced(&d))
}

func TestDeviceNotProvisioned(t *testing.T) {
	svc := New(memory.New())

	_, err := svc.DeviceStatus(context.Background())
	require.ErrorIs(t, err, domain.ErrDeviceNotFound)
}
