// Package memory provides an in-process ledger store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/ledger"
	"github.com/shopspring/decimal"
)

// Store keeps accounts, device state and entries in memory.
// Transactions are serialized and applied all at once on success.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
	cards    map[string]string // card number -> account id
	device   *domain.DeviceState
	entries  []domain.Entry
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		accounts: make(map[string]domain.Account),
		cards:    make(map[string]string),
	}
}

var _ ledger.Store = (*Store)(nil)

// ExecTx runs fn against a private overlay of the store and merges it when fn succeeds.
func (s *Store) ExecTx(ctx context.Context, fn func(q ledger.Queries) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txQueries{
		s:        s,
		accounts: make(map[string]domain.Account),
		nextID:   int64(len(s.entries)) + 1,
	}

	if err := fn(tx); err != nil {
		return err
	}

	for id, a := range tx.accounts {
		s.accounts[id] = a
	}

	if tx.device != nil {
		d := *tx.device
		s.device = &d
	}

	s.entries = append(s.entries, tx.entries...)

	return nil
}

// Provision stores the given accounts and device state unless an account already exists.
// It reports whether anything was stored.
func (s *Store) Provision(_ context.Context, accounts []domain.CreateAccountParams, device domain.DeviceState) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.accounts) > 0 {
		return false, nil
	}

	for _, arg := range accounts {
		if _, ok := s.accounts[arg.ID]; ok {
			return false, domain.ErrAccountAlreadyExists
		}

		if _, ok := s.cards[arg.CardNumber]; ok {
			return false, domain.ErrCardAlreadyExists
		}

		s.accounts[arg.ID] = domain.Account{
			ID:         arg.ID,
			CardNumber: arg.CardNumber,
			PIN:        arg.PIN,
			Balance:    arg.Balance,
			CreatedAt:  arg.CreatedAt,
			UpdatedAt:  arg.CreatedAt,
		}
		s.cards[arg.CardNumber] = arg.ID
	}

	d := device
	s.device = &d

	return true, nil
}

// Accounts returns the account repository view of the store.
func (s *Store) Accounts() *AccountRepo {
	return &AccountRepo{s: s}
}

// Entries returns the entry repository view of the store.
func (s *Store) Entries() *EntryRepo {
	return &EntryRepo{s: s}
}

type txQueries struct {
	s        *Store
	accounts map[string]domain.Account
	device   *domain.DeviceState
	entries  []domain.Entry
	nextID   int64
}

func (tx *txQueries) GetAccount(_ context.Context, id string) (domain.Account, error) {
	if a, ok := tx.accounts[id]; ok {
		return a, nil
	}

	a, ok := tx.s.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return a, nil
}

func (tx *txQueries) GetAccountByCard(ctx context.Context, cardNumber string) (domain.Account, error) {
	id, ok := tx.s.cards[cardNumber]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return tx.GetAccount(ctx, id)
}

func (tx *txQueries) UpdateAccountBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) (domain.Account, error) {
	a, err := tx.GetAccount(ctx, id)
	if err != nil {
		return a, err
	}

	if balance.IsNegative() {
		return domain.Account{}, domain.ErrInsufficientFunds
	}

	a.Balance = balance
	a.UpdatedAt = updatedAt
	tx.accounts[id] = a

	return a, nil
}

func (tx *txQueries) GetDevice(_ context.Context) (domain.DeviceState, error) {
	switch {
	case tx.device != nil:
		return *tx.device, nil
	case tx.s.device != nil:
		return *tx.s.device, nil
	}

	return domain.DeviceState{}, domain.ErrDeviceNotFound
}

func (tx *txQueries) UpdateDevice(_ context.Context, d domain.DeviceState) (domain.DeviceState, error) {
	if tx.s.device == nil {
		return domain.DeviceState{}, domain.ErrDeviceNotFound
	}

	tx.device = &d

	return d, nil
}

func (tx *txQueries) CreateEntry(_ context.Context, arg domain.CreateEntryParams) (domain.Entry, error) {
	if _, ok := tx.s.accounts[arg.AccountID]; !ok {
		return domain.Entry{}, domain.ErrAccountNotFound
	}

	e := domain.Entry{
		ID:        tx.nextID,
		AccountID: arg.AccountID,
		Amount:    arg.Amount,
		Type:      arg.Type,
		CreatedAt: arg.CreatedAt,
	}
	tx.nextID++
	tx.entries = append(tx.entries, e)

	return e, nil
}

// AccountRepo serves account reads and the login counter reset outside engine transactions.
type AccountRepo struct {
	s *Store
}

// Get returns the account with the given id.
func (r *AccountRepo) Get(_ context.Context, id string) (domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return a, nil
}

// GetByCredentials returns the account holding the card with the given PIN.
func (r *AccountRepo) GetByCredentials(_ context.Context, cardNumber, pin string) (domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.accounts[r.s.cards[cardNumber]]
	if !ok || a.PIN != pin {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return a, nil
}

// ResetFailedAttempts zeroes the failed login counter of the account.
func (r *AccountRepo) ResetFailedAttempts(_ context.Context, id string, updatedAt time.Time) (domain.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	a.FailedAttempts = 0
	a.UpdatedAt = updatedAt
	r.s.accounts[id] = a

	return a, nil
}

// EntryRepo serves audit entry reads.
type EntryRepo struct {
	s *Store
}

// List returns entries of the account, newest first.
func (r *EntryRepo) List(_ context.Context, accountID string, limit, offset int32) ([]domain.Entry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := []domain.Entry{}

	for _, e := range r.s.entries {
		if e.AccountID == accountID {
			items = append(items, e)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })

	if limit <= 0 || offset < 0 || int(offset) >= len(items) {
		return []domain.Entry{}, nil
	}

	items = items[offset:]
	if int(limit) < len(items) {
		items = items[:limit]
	}

	return items, nil
}
