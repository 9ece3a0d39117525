package atmservice

import (
	"context"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/inventory"
	"github.com/go-petr/pet-atm/internal/ledger"
	"github.com/rs/zerolog"
)

// DeviceStatus returns a snapshot of the device state.
func (s *Service) DeviceStatus(ctx context.Context) (domain.DeviceState, error) {
	var state domain.DeviceState

	err := s.store.ExecTx(ctx, func(q ledger.Queries) error {
		var err error
		state, err = q.GetDevice(ctx)

		return err
	})
	if err != nil {
		return domain.DeviceState{}, s.fail(ctx, "device status", err)
	}

	return state, nil
}

// RefillPaper adds n sheets of receipt paper.
func (s *Service) RefillPaper(ctx context.Context, n int32) (domain.DeviceState, error) {
	return s.updateDevice(ctx, "refill paper", func(d *domain.DeviceState) error {
		return inventory.RefillPaper(d, n)
	})
}

// RefillInk adds n units of ink.
func (s *Service) RefillInk(ctx context.Context, n int32) (domain.DeviceState, error) {
	return s.updateDevice(ctx, "refill ink", func(d *domain.DeviceState) error {
		return inventory.RefillInk(d, n)
	})
}

// AddBanknotes loads notes into the device.
func (s *Service) AddBanknotes(ctx context.Context, notes domain.Banknotes) (domain.DeviceState, error) {
	return s.updateDevice(ctx, "add banknotes", func(d *domain.DeviceState) error {
		return inventory.AddBanknotes(d, notes)
	})
}

// CollectBanknotes takes notes out of the device.
func (s *Service) CollectBanknotes(ctx context.Context, notes domain.Banknotes) (domain.DeviceState, error) {
	return s.updateDevice(ctx, "collect banknotes", func(d *domain.DeviceState) error {
		return inventory.RemoveBanknotes(d, notes)
	})
}

// UpdateFirmware overwrites the firmware version.
func (s *Service) UpdateFirmware(ctx context.Context, version string) (domain.DeviceState, error) {
	return s.updateDevice(ctx, "update firmware", func(d *domain.DeviceState) error {
		inventory.SetFirmware(d, version)
		return nil
	})
}

// updateDevice applies mutate to the device state in its own transaction.
func (s *Service) updateDevice(ctx context.Context, op string, mutate func(d *domain.DeviceState) error) (domain.DeviceState, error) {
	unlock := s.locks.lock(true)
	defer unlock()

	var state domain.DeviceState

	err := s.store.ExecTx(ctx, func(q ledger.Queries) error {
		d, err := q.GetDevice(ctx)
		if err != nil {
			return err
		}

		if err := mutate(&d); err != nil {
			return err
		}

		d.UpdatedAt = s.now()

		state, err = q.UpdateDevice(ctx, d)

		return err
	})
	if err != nil {
		return domain.DeviceState{}, s.fail(ctx, op, err)
	}

	zerolog.Ctx(ctx).Info().
		Str("op", op).
		Str("cash", state.Cash.StringFixed(2)).
		Int32("paper", state.Paper).
		Int32("ink", state.Ink).
		Msg("device updated")

	return state, nil
}
