// Package atmservice runs the ATM transaction engine.
//
// Every operation is one atomic ledger transaction. Business rejections are
// returned as domain errors, storage faults as errorspkg.ErrOperationFailed.
package atmservice

import (
	"context"
	"errors"
	"time"

	"github.com/go-petr/pet-atm/internal/accountservice"
	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/inventory"
	"github.com/go-petr/pet-atm/internal/ledger"
	"github.com/go-petr/pet-atm/pkg/errorspkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service facilitates the transaction engine logic.
type Service struct {
	store ledger.Store
	locks *lockTable
	now   func() time.Time
}

// New returns the transaction engine running on store.
func New(store ledger.Store) *Service {
	return &Service{
		store: store,
		locks: newLockTable(),
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Withdraw takes amount from the account and the device cash.
func (s *Service) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (domain.Receipt, error) {
	const op = "withdraw"

	if err := validateAmount(amount); err != nil {
		return domain.Receipt{}, s.fail(ctx, op, err)
	}

	unlock := s.locks.lock(true, accountID)
	defer unlock()

	var receipt domain.Receipt

	err := s.store.ExecTx(ctx, func(q ledger.Queries) error {
		account, err := q.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}

		device, err := q.GetDevice(ctx)
		if err != nil {
			return err
		}

		if !accountservice.HasFunds(account, amount) {
			return domain.ErrInsufficientFunds
		}

		if !inventory.HasSufficientCash(&device, amount) {
			return domain.ErrInsufficientATMCash
		}

		supplies := inventory.CheckSupplies(&device)
		if !supplies.Paper {
			return domain.ErrOutOfPaper
		}

		if !supplies.Ink {
			return domain.ErrOutOfInk
		}

		now := s.now()

		if err := accountservice.Debit(&account, amount); err != nil {
			return err
		}

		if err := inventory.DebitCash(&device, amount); err != nil {
			return err
		}

		device.UpdatedAt = now

		if account, err = q.UpdateAccountBalance(ctx, account.ID, account.Balance, now); err != nil {
			return err
		}

		if _, err = q.UpdateDevice(ctx, device); err != nil {
			return err
		}

		entry, err := q.CreateEntry(ctx, domain.CreateEntryParams{
			AccountID: account.ID,
			Amount:    amount.Neg(),
			Type:      domain.EntryWithdraw,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		receipt = newReceipt(domain.ReceiptWithdraw, account, amount, now, entry)

		return nil
	})
	if err != nil {
		return domain.Receipt{}, s.fail(ctx, op, err)
	}

	s.committed(ctx, op, receipt)

	return receipt, nil
}

// Deposit adds amount to the account and the device cash.
func (s *Service) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (domain.Receipt, error) {
	const op = "deposit"

	if err := validateAmount(amount); err != nil {
		return domain.Receipt{}, s.fail(ctx, op, err)
	}

	unlock := s.locks.lock(true, accountID)
	defer unlock()

	var receipt domain.Receipt

	err := s.store.ExecTx(ctx, func(q ledger.Queries) error {
		account, err := q.GetAccount(ctx, accountID)
		if err != nil {
			return err
		}

		device, err := q.GetDevice(ctx)
		if err != nil {
			return err
		}

		now := s.now()

		accountservice.Credit(&account, amount)
		inventory.CreditCash(&device, amount)
		device.UpdatedAt = now

		if account, err = q.UpdateAccountBalance(ctx, account.ID, account.Balance, now); err != nil {
			return err
		}

		if _, err = q.UpdateDevice(ctx, device); err != nil {
			return err
		}

		entry, err := q.CreateEntry(ctx, domain.CreateEntryParams{
			AccountID: account.ID,
			Amount:    amount,
			Type:      domain.EntryDeposit,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		receipt = newReceipt(domain.ReceiptDeposit, account, amount, now, entry)

		return nil
	})
	if err != nil {
		return domain.Receipt{}, s.fail(ctx, op, err)
	}

	s.committed(ctx, op, receipt)

	return receipt, nil
}

// Transfer moves amount from the account to the account holding toCard.
// The device is not touched.
func (s *Service) Transfer(ctx context.Context, fromAccountID, toCard string, amount decimal.Decimal) (domain.Receipt, error) {
	const op = "transfer"

	if err := validateAmount(amount); err != nil {
		return domain.Receipt{}, s.fail(ctx, op, err)
	}

	receiverID, err := s.resolveReceiver(ctx, toCard)
	if err != nil {
		return domain.Receipt{}, s.fail(ctx, op, err)
	}

	if receiverID == fromAccountID {
		return domain.Receipt{}, s.fail(ctx, op, domain.ErrSameAccount)
	}

	unlock := s.locks.lock(false, fromAccountID, receiverID)
	defer unlock()

	var receipt domain.Receipt

	err = s.store.ExecTx(ctx, func(q ledger.Queries) error {
		sender, err := q.GetAccount(ctx, fromAccountID)
		if err != nil {
			return err
		}

		receiver, err := q.GetAccount(ctx, receiverID)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return domain.ErrReceiverNotFound
			}

			return err
		}

		if err := accountservice.Debit(&sender, amount); err != nil {
			return err
		}

		accountservice.Credit(&receiver, amount)

		now := s.now()

		// Balances are written in account id order.
		first, second := &sender, &receiver
		if receiver.ID < sender.ID {
			first, second = second, first
		}

		if *first, err = q.UpdateAccountBalance(ctx, first.ID, first.Balance, now); err != nil {
			return err
		}

		if *second, err = q.UpdateAccountBalance(ctx, second.ID, second.Balance, now); err != nil {
			return err
		}

		out, err := q.CreateEntry(ctx, domain.CreateEntryParams{
			AccountID: sender.ID,
			Amount:    amount.Neg(),
			Type:      domain.EntryTransferOut,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		in, err := q.CreateEntry(ctx, domain.CreateEntryParams{
			AccountID: receiver.ID,
			Amount:    amount,
			Type:      domain.EntryTransferIn,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		receipt = newReceipt(domain.ReceiptTransfer, sender, amount, now, out, in)

		return nil
	})
	if err != nil {
		return domain.Receipt{}, s.fail(ctx, op, err)
	}

	s.committed(ctx, op, receipt)

	return receipt, nil
}

func (s *Service) resolveReceiver(ctx context.Context, card string) (string, error) {
	var id string

	err := s.store.ExecTx(ctx, func(q ledger.Queries) error {
		receiver, err := q.GetAccountByCard(ctx, card)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return domain.ErrReceiverNotFound
			}

			return err
		}

		id = receiver.ID

		return nil
	})

	return id, err
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !amount.Equal(amount.Truncate(2)) {
		return domain.ErrInvalidAmount
	}

	return nil
}

func newReceipt(t domain.ReceiptType, a domain.Account, amount decimal.Decimal, at time.Time, entries ...domain.Entry) domain.Receipt {
	return domain.Receipt{
		Type:      t,
		AccountID: a.ID,
		Amount:    amount,
		Balance:   a.Balance,
		Entries:   entries,
		CreatedAt: at,
	}
}

// fail logs err and returns it as the caller should see it:
// business rejections unchanged, everything else as an operation failure.
func (s *Service) fail(ctx context.Context, op string, err error) error {
	l := zerolog.Ctx(ctx)

	if domain.IsFailure(err) {
		l.Info().Str("op", op).Err(err).Msg("operation rejected")
		return err
	}

	l.Error().Stack().Str("op", op).Err(err).Msg("operation aborted")

	return errorspkg.OperationFailed(op, err)
}

func (s *Service) committed(ctx context.Context, op string, r domain.Receipt) {
	zerolog.Ctx(ctx).Info().
		Str("op", op).
		Str("account_id", r.AccountID).
		Str("amount", r.Amount.StringFixed(2)).
		Str("balance", r.Balance.StringFixed(2)).
		Msg("operation committed")
}
